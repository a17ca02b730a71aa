// Package wordstore keeps a shared dictionary of accepted word forms in a
// Redis set, so several injector processes can validate against the same
// words.
package wordstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/cours-de-latin/generrate"
)

// DefaultKey is the Redis key of the set when none is given.
const DefaultKey = "generrate:dictionary"

// Store wraps a Redis client holding the dictionary as a set of lowercase
// words.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store over client using key. An empty key selects
// DefaultKey.
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// Add inserts words into the dictionary.
func (s *Store) Add(ctx context.Context, words ...string) error {
	members := normalize(words)
	if len(members) == 0 {
		return nil
	}
	if err := s.client.SAdd(ctx, s.key, members...).Err(); err != nil {
		return fmt.Errorf("wordstore: add: %w", err)
	}
	return nil
}

// Remove deletes words from the dictionary.
func (s *Store) Remove(ctx context.Context, words ...string) error {
	members := normalize(words)
	if len(members) == 0 {
		return nil
	}
	if err := s.client.SRem(ctx, s.key, members...).Err(); err != nil {
		return fmt.Errorf("wordstore: remove: %w", err)
	}
	return nil
}

// Contains reports whether the lowercase form of word is in the dictionary.
func (s *Store) Contains(ctx context.Context, word string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, strings.ToLower(word)).Result()
	if err != nil {
		return false, fmt.Errorf("wordstore: contains: %w", err)
	}
	return ok, nil
}

// All returns every word in the dictionary, in no particular order.
func (s *Store) All(ctx context.Context) ([]string, error) {
	words, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("wordstore: all: %w", err)
	}
	return words, nil
}

// Len returns the number of words in the dictionary.
func (s *Store) Len(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("wordstore: len: %w", err)
	}
	return n, nil
}

// Snapshot copies the dictionary into an in-memory set for an Injector.
func (s *Store) Snapshot(ctx context.Context) (generrate.WordSet, error) {
	words, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return generrate.NewWordSet(words...), nil
}

func normalize(words []string) []any {
	out := make([]any, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
