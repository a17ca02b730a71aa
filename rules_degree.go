package generrate

import "strings"

// Comparative turns a positive adjective into the comparative.
func (in *Inflector) Comparative(w Word) (Word, bool) {
	return in.apply(w, AdjectiveComparative, comparative)
}

// Superlative turns a positive adjective into the superlative.
func (in *Inflector) Superlative(w Word) (Word, bool) {
	return in.apply(w, AdjectiveSuperlative, superlative)
}

// ComparativeToSuperlative turns a comparative into the superlative
// ("bigger" -> "biggest").
func (in *Inflector) ComparativeToSuperlative(w Word) (Word, bool) {
	return in.apply(w, AdjectiveSuperlative, comparativeToSuperlative)
}

// SuperlativeToComparative turns a superlative into the comparative
// ("biggest" -> "bigger").
func (in *Inflector) SuperlativeToComparative(w Word) (Word, bool) {
	return in.apply(w, AdjectiveComparative, superlativeToComparative)
}

// ComparativeToPositive turns a comparative into the positive adjective
// ("fatter" -> "fat").
func (in *Inflector) ComparativeToPositive(w Word) (Word, bool) {
	return in.apply(w, Adjective, comparativeToPositive)
}

// SuperlativeToPositive turns a superlative into the positive adjective
// ("fattest" -> "fat").
func (in *Inflector) SuperlativeToPositive(w Word) (Word, bool) {
	return in.apply(w, Adjective, superlativeToPositive)
}

// AdverbToAdjective turns an "-ly" adverb into its adjective
// ("happily" -> "happy", "probably" -> "probable").
func (in *Inflector) AdverbToAdjective(w Word) (Word, bool) {
	return in.apply(w, Adjective, adverbToAdjective)
}

func endsInVowelT(t string) bool {
	n := len(t)
	return strings.HasSuffix(t, "t") && n > 1 && IsVowel(t[n-2])
}

func comparative(t string) (string, bool) {
	switch {
	case t == "good":
		return "better", true
	case strings.HasSuffix(t, "y"):
		return t[:len(t)-1] + "ier", true
	case endsInVowelT(t):
		return t + "ter", true
	case strings.HasSuffix(t, "e"):
		return t + "r", true
	}
	return t + "er", true
}

func superlative(t string) (string, bool) {
	switch {
	case t == "good":
		return "best", true
	case strings.HasSuffix(t, "y"):
		return t[:len(t)-1] + "iest", true
	case endsInVowelT(t):
		return t + "test", true
	case strings.HasSuffix(t, "e"):
		return t + "st", true
	}
	return t + "est", true
}

func comparativeToSuperlative(t string) (string, bool) {
	if t == "better" {
		return "best", true
	}
	return t[:len(t)-1] + "st", true
}

func superlativeToComparative(t string) (string, bool) {
	switch {
	case t == "best":
		return "better", true
	case len(t) > 1:
		return t[:len(t)-2] + "r", true
	}
	return "", false
}

func comparativeToPositive(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "better":
		return "good", true
	case strings.HasSuffix(t, "ier"):
		return t[:n-3] + "y", true
	case strings.HasSuffix(t, "tter"):
		return t[:n-3], true
	case strings.HasSuffix(t, "er"):
		return t[:n-2], true
	}
	return "", false
}

func superlativeToPositive(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "best":
		return "good", true
	case strings.HasSuffix(t, "iest"):
		return t[:n-4] + "y", true
	case strings.HasSuffix(t, "ttest"):
		return t[:n-4], true
	case n > 2:
		return t[:n-3], true
	}
	return "", false
}

// icallyKeepsAl reports whether an "-ically" adverb keeps "-ical" in its
// adjective ("typically" -> "typical" but "basically" -> "basic").
func icallyKeepsAl(t string) bool {
	switch {
	case strings.HasSuffix(t, "typically"):
		return !strings.HasPrefix(t, "phenotyp")
	case strings.HasSuffix(t, "radically"):
		return !strings.HasPrefix(t, "spor")
	}
	return hasAnySuffix(t, icallyKeep...)
}

func adverbToAdjective(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "angrily":
		return "angry", true
	case strings.HasSuffix(t, "ically"):
		if icallyKeepsAl(t) {
			return t[:n-2], true
		}
		return t[:n-4], true
	case hasAnySuffix(t, "ably", "ibly"):
		return t[:n-1] + "e", true
	case strings.HasSuffix(t, "ily"):
		if t == "eerily" {
			return "eerie", true
		}
		return t[:n-3] + "y", true
	case hasAnySuffix(t, "bly", "btly", "mply"):
		return t[:n-1] + "e", true
	case strings.HasSuffix(t, "uly"):
		return t[:n-2] + "e", true
	case strings.HasSuffix(t, "ully"):
		if t == "fully" {
			return t[:n-1], true
		}
		return t[:n-2], true
	case strings.HasSuffix(t, "olly"):
		return t[:n-2] + "e", true
	case n > 1:
		return t[:n-2], true
	}
	return "", false
}
