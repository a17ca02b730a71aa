package generrate

import "strings"

// PresentToPast turns a present participle into the past participle
// ("taking" -> "taken", "carrying" -> "carried").
func (in *Inflector) PresentToPast(w Word) (Word, bool) {
	return in.apply(w, VerbPastPart, presentToPast)
}

// PresentToThird turns a present participle into the third person singular
// by way of the infinitive.
func (in *Inflector) PresentToThird(w Word) (Word, bool) {
	return in.apply(w, VerbThirdSing, presentToThird)
}

// PresentToNonThird turns a present participle into the non-third-person
// present.
func (in *Inflector) PresentToNonThird(w Word) (Word, bool) {
	return in.apply(w, VerbNonThirdSing, presentToNonThird)
}

// PresentToBase turns a present participle into the infinitive form
// ("making" -> "make", "running" -> "run").
func (in *Inflector) PresentToBase(w Word) (Word, bool) {
	return in.apply(w, VerbBase, presentToBase)
}

// PastToBase turns a past participle into the base form. Irregular forms
// are resolved before any "-ed" stripping.
func (in *Inflector) PastToBase(w Word) (Word, bool) {
	return in.apply(w, VerbBase, pastToBase)
}

// PastToThird turns a past participle into the third person singular.
func (in *Inflector) PastToThird(w Word) (Word, bool) {
	return in.apply(w, VerbThirdSing, pastToThird)
}

// PastToPresent turns a past participle into the present participle.
func (in *Inflector) PastToPresent(w Word) (Word, bool) {
	return in.apply(w, VerbPresPart, pastToPresent)
}

var presentToPastIrregular = map[string]string{
	"being":    "been",
	"having":   "had",
	"going":    "gone",
	"doing":    "done",
	"leaving":  "left",
	"taking":   "taken",
	"seeing":   "seen",
	"making":   "made",
	"bringing": "brought",
	"teaching": "taught",
	"reading":  "read",
	"letting":  "let",
}

func presentToPast(t string) (string, bool) {
	n := len(t)
	if strings.HasSuffix(t, "coming") {
		return t[:n-3] + "e", true
	}
	if past, ok := presentToPastIrregular[t]; ok {
		return past, true
	}
	switch {
	case strings.HasSuffix(t, "wing") && n > 4 && (t[n-5] == 'a' || t[n-5] == 'o'):
		return t[:n-3] + "n", true
	case strings.HasSuffix(t, "ying") && n > 4 && !IsVowel(t[n-5]):
		return t[:n-4] + "ied", true
	case strings.HasSuffix(t, "ing"):
		return t[:n-3] + "ed", true
	}
	return "", false
}

func presentToThird(t string) (string, bool) {
	base, ok := presentToBase(t)
	if !ok || base == "" {
		return base, ok
	}
	return baseToThird(base)
}

func presentToNonThird(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "being":
		return "are", true
	case t == "having":
		return "have", true
	case hasAnySuffix(t, "ching", "ssing", "oing", "dging", "oting"):
		return t[:n-3] + "e", true
	case strings.HasSuffix(t, "ing"):
		return t[:n-3], true
	}
	return "", false
}

func presentToBase(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "being":
		return "be", true
	case hasAnySuffix(t, "panicking", "mimicking", "picnicking"):
		return t[:n-4], true
	case t == "lying":
		return "lie", true
	case infEndsWithEWords[t] || hasAnySuffix(t, infEndsWithESuffixes...):
		return t[:n-3] + "e", true
	case DoubledConsonantBeforeING(t):
		if t == "rolling" || hasAnySuffix(t, ingKeepDoubled...) {
			return t[:n-3], true
		}
		return t[:n-4], true
	case strings.HasSuffix(t, "xying"):
		return t[:n-4] + "i", true
	case strings.HasSuffix(t, "ing"):
		return t[:n-3], true
	}
	return "", false
}

// pastStrong maps endings of strong past participles to the number of
// bytes to drop and the replacement, checked in order.
var pastStrong = []struct {
	suffix string
	drop   int
	add    string
}{
	{"lit", 2, "ight"},
	{"paid", 2, "y"},
	{"felt", 3, "eel"},
	{"dealt", 4, "eal"},
	{"built", 1, "d"},
	{"spelt", 1, "l"},
	{"spilt", 1, "l"},
	{"held", 3, "old"},
	{"rose", 3, "ise"},
	{"shrunk", 3, "ink"},
	{"stood", 3, "and"},
	{"slid", 0, "e"},
	{"broken", 4, "eak"},
	{"frozen", 4, "eeze"},
	{"chosen", 4, "oose"},
	{"woven", 4, "eave"},
	{"hidden", 3, "e"},
	{"bidden", 3, ""},
	{"ridden", 3, "e"},
}

var pastStrongLate = []struct {
	suffix string
	drop   int
	add    string
}{
	{"given", 1, ""},
	{"riven", 1, ""},
	{"written", 3, "e"},
	{"bitten", 3, "e"},
	{"smitten", 3, "e"},
	{"beaten", 2, ""},
	{"shot", 2, "oot"},
	{"thought", 5, "ink"},
	{"fought", 5, "ight"},
	{"taught", 5, "each"},
	{"caught", 5, "atch"},
	{"flung", 3, "ing"},
	{"stung", 3, "ing"},
	{"sent", 3, "end"},
	{"lent", 3, "end"},
	{"spent", 3, "end"},
	{"panicked", 3, ""},
	{"mimicked", 3, ""},
	{"afficked", 3, ""},
	{"lain", 3, "ay"},
	{"laid", 3, "ay"},
	{"said", 3, "ay"},
	{"rung", 3, "ing"},
	{"sang", 3, "ing"},
	{"sung", 3, "ing"},
	{"hung", 3, "ang"},
	{"sunk", 3, "ink"},
	{"borne", 4, "ear"},
	{"drawn", 1, ""},
	{"grown", 1, ""},
	{"seen", 1, ""},
	{"thrown", 1, ""},
	{"blown", 1, ""},
	{"flown", 3, "y"},
	{"sworn", 3, "ear"},
	{"heard", 4, "ear"},
	{"lost", 1, "e"},
	{"slept", 2, "ep"},
	{"swept", 2, "ep"},
	{"kept", 2, "ep"},
	{"bound", 4, "ind"},
	{"stuck", 4, "tick"},
	{"struck", 3, "ike"},
	{"stricken", 5, "ike"},
	{"spun", 4, "spin"},
	{"woken", 4, "ake"},
}

func isBlacklistedPast(t string) bool {
	return pastBlacklist[t] || strings.HasSuffix(t, "wrought") || ContainsPunctuation(t)
}

func pastUnchanged(t string) bool {
	return pastNoChangeWords[t] || hasAnySuffix(t, pastNoChangeSuffixes...)
}

func dropsFinalD(t string) bool {
	return removeDWords[t] || hasAnySuffix(t, removeDSuffixes...)
}

func dropsDoubledConsonant(t string) bool {
	return DoubledConsonantBeforeED(t) && !edKeepDoubledWords[t] && !hasAnySuffix(t, edKeepDoubled...)
}

func pastToBase(t string) (string, bool) {
	n := len(t)
	if isBlacklistedPast(t) {
		return "", false
	}
	switch {
	case pastUnchanged(t):
		return t, true
	case t == "been":
		return "be", true
	case t == "had":
		return "have", true
	case t == "used":
		return "use", true
	case hasAnySuffix(t, "done", "gone"):
		return t[:n-2], true
	case t == "taken":
		return "take", true
	case t == "left":
		return "leave", true
	case t == "went":
		return "go", true
	case t == "got" || strings.HasSuffix(t, "forgot"):
		return t[:n-3] + "get", true
	case strings.HasSuffix(t, "gotten"):
		return t[:n-5] + "et", true
	case hasAnySuffix(t, "told", "sold"):
		return t[:n-3] + "ell", true
	case t == "took":
		return "take", true
	case strings.HasSuffix(t, "sat"):
		return t[:n-2] + "it", true
	case strings.HasSuffix(t, "saw"):
		return t[:n-2] + "ee", true
	case hasAnySuffix(t, "sewn", "hewn", "strewn"):
		return t[:n-1], true
	case isAnyOf(t, "fed", "overfed", "bred", "overbred", "sped"):
		return t[:n-1] + "ed", true
	case strings.HasSuffix(t, "torn"):
		return "tear", true
	case isAnyOf(t, "led", "misled", "co-led"):
		return t[:n-1] + "ad", true
	}
	for _, r := range pastStrong {
		if strings.HasSuffix(t, r.suffix) {
			return t[:n-r.drop] + r.add, true
		}
	}
	if t == "risen" || t == "arisen" {
		return t[:n-1], true
	}
	for _, r := range pastStrongLate {
		if strings.HasSuffix(t, r.suffix) {
			return t[:n-r.drop] + r.add, true
		}
	}
	switch {
	case t == "wound":
		return "wind", true
	case t == "dug":
		return "dig", true
	case t == "fled":
		return "flee", true
	case dropsFinalD(t):
		return t[:n-1], true
	case dropsDoubledConsonant(t):
		return t[:n-3], true
	case strings.HasSuffix(t, "ied"):
		return t[:n-3] + "y", true
	case strings.HasSuffix(t, "ed"):
		return t[:n-2], true
	}
	return "", false
}

func pastToThird(t string) (string, bool) {
	base, ok := pastToBase(t)
	if !ok || base == "" {
		return base, ok
	}
	n := len(base)
	switch {
	case base == "be":
		return "is", true
	case base == "have":
		return "has", true
	case hasAnySuffix(base, "do", "go"):
		return base + "es", true
	case base == "take":
		return "takes", true
	case base == "leave":
		return "leaves", true
	case strings.HasSuffix(base, "y") && !hasAnySuffix(base, "oy", "ay", "ey"):
		return base[:n-1] + "ies", true
	case hasAnySuffix(base, "ch", "sh", "ss", "es", "cus", "zz", "to", "ucco"):
		return base + "es", true
	case base == "bus":
		return "busses", true
	case base == "quiz":
		return "quizzes", true
	}
	return base + "s", true
}

var pastToPresentIrregular = map[string]string{
	"been":  "being",
	"had":   "having",
	"done":  "doing",
	"gone":  "going",
	"taken": "taking",
	"left":  "leaving",
}

func pastToPresent(t string) (string, bool) {
	n := len(t)
	if p, ok := pastToPresentIrregular[t]; ok {
		return p, true
	}
	switch {
	case strings.HasSuffix(t, "ied"):
		return t[:n-3] + "ying", true
	case n > 2:
		return t[:n-2] + "ing", true
	}
	return "", false
}
