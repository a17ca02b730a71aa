package generrate

import (
	"fmt"
	"slices"
	"strings"
)

// Sentence is an ordered sequence of words. Positions stay contiguous
// (0..Len()-1) across Insert and Remove.
type Sentence struct {
	words []Word

	// TagsIncluded is true when every word carries a tag.
	TagsIncluded bool

	// ErrorDescription and Descriptor are set on sentences produced by
	// Injector.Inject.
	ErrorDescription string
	Descriptor       *Descriptor
}

// ParseSentence reads text as whitespace-separated tokens. When tagged is
// true the tokens alternate word and tag ("the DT dogs NNS").
func ParseSentence(text string, tagged bool) (*Sentence, error) {
	fields := strings.Fields(text)
	s := &Sentence{TagsIncluded: tagged}
	if !tagged {
		for _, f := range fields {
			s.words = append(s.words, NewWord(f, ""))
		}
		return s, nil
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("parse sentence: odd number of fields (%d) in tagged text", len(fields))
	}
	for i := 0; i < len(fields); i += 2 {
		s.words = append(s.words, NewWord(fields[i], fields[i+1]))
	}
	return s, nil
}

// NewSentence builds a sentence from words.
func NewSentence(words []Word, tagged bool) *Sentence {
	return &Sentence{words: slices.Clone(words), TagsIncluded: tagged}
}

// Len returns the number of words.
func (s *Sentence) Len() int { return len(s.words) }

// Word returns the word at i.
func (s *Sentence) Word(i int) (Word, bool) {
	if i < 0 || i >= len(s.words) {
		return Word{}, false
	}
	return s.words[i], true
}

// Words returns a copy of the words.
func (s *Sentence) Words() []Word { return slices.Clone(s.words) }

// Insert places w at position i, shifting later words right. i may equal Len.
func (s *Sentence) Insert(i int, w Word) error {
	if i < 0 || i > len(s.words) {
		return fmt.Errorf("insert at %d: index out of range [0,%d]", i, len(s.words))
	}
	s.words = slices.Insert(s.words, i, w)
	return nil
}

// Remove deletes and returns the word at i.
func (s *Sentence) Remove(i int) (Word, error) {
	if i < 0 || i >= len(s.words) {
		return Word{}, fmt.Errorf("remove at %d: index out of range [0,%d)", i, len(s.words))
	}
	w := s.words[i]
	s.words = slices.Delete(s.words, i, i+1)
	return w, nil
}

// Clone returns an independent copy of the words and the tag flag. Error
// annotations are not copied.
func (s *Sentence) Clone() *Sentence {
	return &Sentence{words: slices.Clone(s.words), TagsIncluded: s.TagsIncluded}
}

// String renders the sentence as "tok TAG tok TAG ..." when tagged and as
// "tok tok ..." otherwise.
func (s *Sentence) String() string {
	var b strings.Builder
	for i, w := range s.words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Token)
		if s.TagsIncluded {
			b.WriteByte(' ')
			b.WriteString(w.Tag)
		}
	}
	return b.String()
}
