package generrate

import "strings"

// WordSet is a set of lowercase word forms used to reject replacements
// that are not real words. An empty or nil set accepts everything.
type WordSet map[string]struct{}

// NewWordSet builds a set holding the lowercase forms of words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.add(w)
	}
	return s
}

func (s WordSet) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		s[w] = struct{}{}
	}
}

// Contains reports whether the lowercase form of w is in the set.
func (s WordSet) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int { return len(s) }

// Merge returns a new set holding the words of s and other.
func (s WordSet) Merge(other WordSet) WordSet {
	out := make(WordSet, len(s)+len(other))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range other {
		out[w] = struct{}{}
	}
	return out
}

// Vocabulary holds extra words used when no rule covers a tag pair. Each
// entry is "token tag"; entries are grouped by tag in input order.
type Vocabulary struct {
	byTag   map[string][]string
	size    int
	skipped int
}

// NewVocabulary indexes entries of the form "token tag". Entries that do
// not have exactly two fields are skipped.
func NewVocabulary(entries []string) *Vocabulary {
	v := &Vocabulary{byTag: make(map[string][]string)}
	for _, e := range entries {
		v.add(e)
	}
	return v
}

func (v *Vocabulary) add(entry string) {
	f := strings.Fields(entry)
	if len(f) != 2 {
		if len(f) > 0 {
			v.skipped++
		}
		return
	}
	v.byTag[f[1]] = append(v.byTag[f[1]], f[0])
	v.size++
}

// Tokens returns the tokens tagged tag, in the order they were given.
func (v *Vocabulary) Tokens(tag string) []string {
	if v == nil {
		return nil
	}
	return v.byTag[tag]
}

// Len returns the number of indexed entries.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Skipped returns the number of malformed entries that were ignored.
func (v *Vocabulary) Skipped() int {
	if v == nil {
		return 0
	}
	return v.skipped
}
