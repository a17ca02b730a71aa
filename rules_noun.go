package generrate

import "strings"

// Pluralize turns a singular noun into its plural ("box" -> "boxes").
func (in *Inflector) Pluralize(w Word) (Word, bool) {
	return in.apply(w, PluralNoun, pluralize)
}

// Singularize turns a plural noun into its singular ("cats" -> "cat").
func (in *Inflector) Singularize(w Word) (Word, bool) {
	return in.apply(w, SingularNoun, singularize)
}

func pluralize(t string) (string, bool) {
	n := len(t)
	switch {
	case strings.HasSuffix(t, "man"):
		return t[:n-3] + "men", true
	case hasAnySuffix(t, "ch", "s", "z", "sh", "x"):
		return t + "es", true
	case strings.HasSuffix(t, "y") && n > 1 && !IsVowel(t[n-2]):
		return t[:n-1] + "ies", true
	case strings.HasSuffix(t, "um"):
		return t[:n-2] + "a", true
	}
	return t + "s", true
}

func singularize(t string) (string, bool) {
	n := len(t)
	switch {
	case strings.HasSuffix(t, "ies"):
		if t == "movies" {
			return t[:n-1], true
		}
		return t[:n-3] + "y", true
	case strings.HasSuffix(t, "men"):
		return t[:n-3] + "man", true
	case strings.HasSuffix(t, "a"):
		return t[:n-1] + "um", true
	case hasAnySuffix(t, "ches", "sses", "zes", "shes", "xes"):
		return t[:n-2], true
	}
	return t[:n-1], true
}
