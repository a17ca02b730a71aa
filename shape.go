package generrate

import (
	"regexp"
	"strings"
)

const (
	vowels      = "aeiou"
	consonants  = "bcdfghjklmnpqrstvwxyz"
	punctuation = "!\"#$%&'()*+,./:;<=>?@[]^_`{|}~"
)

// Whole-token shape patterns. Go's regexp has no backreferences, so the two
// doubled-consonant shapes are checked by endsWithDoubledConsonant instead.
var (
	reVowelVowelM             = regexp.MustCompile(`(?i)^.*[aeiou][aeiou]m$`)
	reVowelConsonant          = regexp.MustCompile(`(?i)^(.*[aeiou])([bcdfghjklmnpqrstvwxyz])$`)
	reConsonantE              = regexp.MustCompile(`(?i)^.*[bcdfghjklmnpqrstvwxyz]e$`)
	reVowelVowelConsonant     = regexp.MustCompile(`(?i)^.*[aeiou][aeiou][bcdfghjklmnpqrstvwxyz]$`)
	reConsonantVowelConsonant = regexp.MustCompile(`(?i)^(.*[bcdfghjklmnpqrstvwxyz][aeiou])([bcdfghjklmnpqrstvwxyz])$`)
)

// IsVowel reports whether c is one of a, e, i, o, u in either case.
func IsVowel(c byte) bool {
	return strings.IndexByte(vowels, lowerByte(c)) >= 0
}

// IsConsonant reports whether c is an ASCII letter that is not a vowel.
// 'y' and 'w' count as consonants.
func IsConsonant(c byte) bool {
	return strings.IndexByte(consonants, lowerByte(c)) >= 0
}

// ContainsPunctuation reports whether token contains any ASCII punctuation
// character other than the hyphen.
func ContainsPunctuation(token string) bool {
	return strings.ContainsAny(token, punctuation)
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// DoubledConsonantBeforeING reports whether token ends in a doubled
// consonant followed by "ing" (e.g. "running", "stopping").
func DoubledConsonantBeforeING(token string) bool {
	return endsWithDoubledConsonant(token, "ing")
}

// DoubledConsonantBeforeED reports whether token ends in a doubled
// consonant followed by "ed" (e.g. "stopped", "planned").
func DoubledConsonantBeforeED(token string) bool {
	return endsWithDoubledConsonant(token, "ed")
}

func endsWithDoubledConsonant(token, suffix string) bool {
	t := strings.ToLower(token)
	if !strings.HasSuffix(t, suffix) {
		return false
	}
	n := len(t) - len(suffix)
	if n < 2 {
		return false
	}
	return t[n-1] == t[n-2] && IsConsonant(t[n-1])
}

// VowelVowelM reports whether token ends in two vowels and an "m" ("foam").
func VowelVowelM(token string) bool {
	return reVowelVowelM.MatchString(token)
}

// VowelConsonant splits a token ending in a vowel followed by a consonant
// into the part up to the vowel and the final consonant.
func VowelConsonant(token string) (stem, last string, ok bool) {
	m := reVowelConsonant.FindStringSubmatch(token)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ConsonantE reports whether token ends in a consonant followed by "e".
func ConsonantE(token string) bool {
	return reConsonantE.MatchString(token)
}

// VowelVowelConsonant reports whether token ends in two vowels and a consonant.
func VowelVowelConsonant(token string) bool {
	return reVowelVowelConsonant.MatchString(token)
}

// ConsonantVowelConsonant splits a token ending in consonant-vowel-consonant
// into the part up to and including the vowel and the final consonant. The
// two groups are what a doubling rule needs: stem + last + last + "ing".
func ConsonantVowelConsonant(token string) (stem, last string, ok bool) {
	m := reConsonantVowelConsonant.FindStringSubmatch(token)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
