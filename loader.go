package generrate

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Default file names looked up by NewFromDir.
const (
	DictionaryFile = "dictionary.txt"
	VocabularyFile = "extra_words.txt"
)

// LoadWordSet reads a dictionary file with one word per line. Only the
// first field of a line is used, so "word<TAB>frequency" lists load as
// well. Lines starting with '#' are comments. The file is memory-mapped;
// dictionaries run to millions of lines.
func LoadWordSet(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if fi.Size() == 0 {
		return WordSet{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary: %w", err)
	}
	defer m.Unmap()

	s := make(WordSet)
	err = scanLines(bytes.NewReader(m), func(line string) {
		if fields := strings.Fields(line); len(fields) > 0 {
			s.add(fields[0])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return s, nil
}

// LoadVocabulary reads extra-word entries ("token tag"), one per line.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	v := &Vocabulary{byTag: make(map[string][]string)}
	if err := scanLines(f, v.add); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return v, nil
}

// LoadSentences reads one sentence per line from path. Blank lines and
// lines starting with '#' are skipped.
func LoadSentences(path string, tagged bool) ([]*Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentences: %w", err)
	}
	defer f.Close()
	return ReadSentences(f, tagged)
}

// ReadSentences is LoadSentences over an io.Reader.
func ReadSentences(r io.Reader, tagged bool) ([]*Sentence, error) {
	var (
		out    []*Sentence
		lineNo int
		perr   error
	)
	err := scanLines(r, func(line string) {
		lineNo++
		if perr != nil {
			return
		}
		s, err := ParseSentence(line, tagged)
		if err != nil {
			perr = fmt.Errorf("line %d: %w", lineNo, err)
			return
		}
		out = append(out, s)
	})
	if err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

// scanLines calls fn for every non-blank, non-comment line of r.
func scanLines(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return sc.Err()
}

// NewFromDir builds an Injector for ts using the dictionary and extra-word
// files in dataDir. Either file may be missing; a missing dictionary
// disables validation and a missing vocabulary disables the fallback.
func NewFromDir(ts *TagSet, dataDir string) (*Injector, error) {
	var opts []Option

	dict, err := LoadWordSet(filepath.Join(dataDir, DictionaryFile))
	switch {
	case err == nil:
		opts = append(opts, WithDictionary(dict))
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	vocab, err := LoadVocabulary(filepath.Join(dataDir, VocabularyFile))
	switch {
	case err == nil:
		opts = append(opts, WithVocabulary(vocab))
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	return New(ts, opts...), nil
}
