// Package app wires configuration, logging and the word lists into a
// ready-to-use injector for the commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/cours-de-latin/generrate"
	"github.com/cours-de-latin/generrate/internal/config"
	"github.com/cours-de-latin/generrate/internal/wordstore"
)

// BuildInjector loads the tag set and word lists named by cfg. Explicit
// paths win over files found in the data directory. When Redis is enabled
// its dictionary set is merged into the file dictionary.
func BuildInjector(ctx context.Context, cfg config.LexiconConfig, rcfg config.RedisConfig, logger *slog.Logger) (*generrate.Injector, error) {
	ts, err := generrate.TagSetByName(cfg.TagSet)
	if err != nil {
		return nil, err
	}

	dictPath, dictOptional := lexiconFile(cfg.DictionaryPath, cfg.DataDir, generrate.DictionaryFile)
	vocabPath, vocabOptional := lexiconFile(cfg.VocabularyPath, cfg.DataDir, generrate.VocabularyFile)

	var dict generrate.WordSet
	if dictPath != "" {
		dict, err = generrate.LoadWordSet(dictPath)
		switch {
		case err == nil:
			logger.Info("dictionary loaded", slog.String("path", dictPath), slog.Int("words", dict.Len()))
		case dictOptional && errors.Is(err, fs.ErrNotExist):
			logger.Debug("no dictionary in data dir", slog.String("path", dictPath))
		default:
			return nil, err
		}
	}

	if rcfg.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     rcfg.Addr,
			Password: rcfg.Password,
			DB:       rcfg.DB,
		})
		defer client.Close()

		shared, err := wordstore.New(client, rcfg.Key).Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("redis dictionary: %w", err)
		}
		logger.Info("redis dictionary loaded", slog.String("key", rcfg.Key), slog.Int("words", shared.Len()))
		dict = dict.Merge(shared)
	}

	var vocab *generrate.Vocabulary
	if vocabPath != "" {
		vocab, err = generrate.LoadVocabulary(vocabPath)
		if err != nil && !(vocabOptional && errors.Is(err, fs.ErrNotExist)) {
			return nil, err
		}
		if vocab.Skipped() > 0 {
			logger.Warn("malformed extra-word entries skipped",
				slog.String("path", vocabPath), slog.Int("skipped", vocab.Skipped()))
		}
	}

	return generrate.New(ts,
		generrate.WithDictionary(dict),
		generrate.WithVocabulary(vocab),
	), nil
}

// lexiconFile returns the explicit path if set, else name inside dataDir.
// A file found through dataDir is optional.
func lexiconFile(explicit, dataDir, name string) (path string, optional bool) {
	if explicit != "" {
		return explicit, false
	}
	if dataDir != "" {
		return filepath.Join(dataDir, name), true
	}
	return "", false
}
