package generrate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word is a token with its part-of-speech tag. Original holds the token a
// transformation replaced; for words read from a sentence it equals Token.
type Word struct {
	Token    string
	Tag      string
	Original string
}

// NewWord returns a word read from input text.
func NewWord(token, tag string) Word {
	return Word{Token: token, Tag: tag, Original: token}
}

// substitute builds the word that replaces original, carrying over the
// original's case pattern.
func substitute(replacement, tag, original string) Word {
	return Word{Token: matchCase(replacement, original), Tag: tag, Original: original}
}

// normalized returns the lowercase, trimmed token, or false when it is empty.
func (w Word) normalized() (string, bool) {
	t := strings.ToLower(strings.TrimSpace(w.Token))
	return t, t != ""
}

func (w Word) String() string {
	if w.Tag == "" {
		return w.Token
	}
	return w.Token + " " + w.Tag
}

// matchCase applies the case pattern of model (UPPER, Capitalised or
// anything else) to s.
func matchCase(s, model string) string {
	switch {
	case isUpper(model):
		return strings.ToUpper(s)
	case isCapitalized(model):
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return s
		}
		return string(unicode.ToUpper(r)) + s[n:]
	}
	return s
}

// isUpper reports whether model has at least two letters, all uppercase.
func isUpper(model string) bool {
	letters := 0
	for _, r := range model {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 1
}

func isCapitalized(model string) bool {
	r, _ := utf8.DecodeRuneInString(model)
	return unicode.IsUpper(r)
}
