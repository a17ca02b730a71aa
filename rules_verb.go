package generrate

import "strings"

// NonThirdToThird turns a non-third-person present verb into the third
// person singular ("are" -> "is", "watch" -> "watches").
func (in *Inflector) NonThirdToThird(w Word) (Word, bool) {
	return in.apply(w, VerbThirdSing, nonThirdToThird)
}

// ThirdToNonThird turns a third person singular verb into the
// non-third-person present ("is" -> "are", "tries" -> "try").
func (in *Inflector) ThirdToNonThird(w Word) (Word, bool) {
	return in.apply(w, VerbNonThirdSing, thirdToNonThird)
}

// ThirdToBase turns a third person singular verb into its base form.
func (in *Inflector) ThirdToBase(w Word) (Word, bool) {
	return in.apply(w, VerbBase, thirdToBase)
}

// ThirdToPresent turns a third person singular verb into the present
// participle, going through the base form.
func (in *Inflector) ThirdToPresent(w Word) (Word, bool) {
	return in.apply(w, VerbPresPart, thirdToPresent)
}

// NonThirdToPresent turns a non-third-person present verb into the present
// participle.
func (in *Inflector) NonThirdToPresent(w Word) (Word, bool) {
	return in.apply(w, VerbPresPart, nonThirdToPresent)
}

// BaseToPresent turns a base verb into the present participle.
func (in *Inflector) BaseToPresent(w Word) (Word, bool) {
	return in.apply(w, VerbPresPart, baseToPresent)
}

// BaseToThird turns a base verb into the third person singular.
func (in *Inflector) BaseToThird(w Word) (Word, bool) {
	return in.apply(w, VerbThirdSing, baseToThird)
}

func nonThirdToThird(t string) (string, bool) {
	n := len(t)
	switch {
	case isAnyOf(t, "are", "'re", "'m", "am"):
		return "is", true
	case t == "have":
		return "has", true
	case t == "do":
		return "does", true
	case t == "go":
		return "goes", true
	case t == "shall":
		return "shall", true
	case strings.HasSuffix(t, "y") && n > 1 && IsConsonant(t[n-2]):
		return t[:n-1] + "ies", true
	case hasAnySuffix(t, "ch", "x", "s", "z", "sh"):
		return t + "es", true
	}
	return t + "s", true
}

func thirdToNonThird(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "is" || t == "'s":
		return "are", true
	case t == "has":
		return "have", true
	case t == "does":
		return "do", true
	case t == "goes":
		return "go", true
	case t == "shall":
		return "shall", true
	case strings.HasSuffix(t, "iases"):
		return t[:n-2], true
	case isAnyOf(t, "ties", "unties", "lies", "dies"):
		return t[:n-1], true
	case strings.HasSuffix(t, "ies"):
		return t[:n-3] + "y", true
	case strings.HasSuffix(t, "oes"):
		return t[:n-2], true
	case strings.HasPrefix(t, "focus"):
		return "focus", true
	case hasAnySuffix(t, "sses", "ches", "xes", "zzes", "shes"):
		if strings.HasSuffix(t, "uizzes") {
			return "quiz", true
		}
		return t[:n-2], true
	}
	return t[:n-1], true
}

func thirdToBase(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "is":
		return "be", true
	case hasAnySuffix(t, "does", "goes"):
		return t[:n-2], true
	case t == "has":
		return "have", true
	case strings.HasSuffix(t, "ies"):
		return t[:n-3] + "y", true
	case t == "begat":
		return "beget", true
	case hasAnySuffix(t, "yes", "ys"):
		return t[:n-1], true
	case hasAnySuffix(t, "sses", "shes", "tches", "xes", "zzes"):
		return t[:n-2], true
	}
	return t[:n-1], true
}

// thirdToPresent builds the participle from the base form; doubling of the
// final consonant follows the consonant-vowel-consonant shape minus
// cvcNoDouble.
func thirdToPresent(t string) (string, bool) {
	base, _ := thirdToBase(t)
	if base == "" {
		return "", true
	}
	n := len(base)
	switch {
	case base == "be":
		return "being", true
	case base == "have":
		return "having", true
	case strings.HasSuffix(base, "ue"):
		return base[:n-1] + "ing", true
	case base == "beget":
		return "begetting", true
	case hasAnySuffix(base, "ye", "y"):
		return base + "ing", true
	case hasAnySuffix(base, "anic", "imic"):
		return base + "king", true
	case ConsonantE(base):
		return base[:n-1] + "ing", true
	}
	if stem, last, ok := ConsonantVowelConsonant(base); ok && doublesFinalConsonant(base) {
		return stem + last + last + "ing", true
	}
	if hasAnySuffix(base, "quit", "quat", "qual", "quip") {
		return base + base[n-1:] + "ing", true
	}
	return base + "ing", true
}

// doublesFinalConsonant reports whether a consonant-vowel-consonant base
// doubles its final consonant before "ing".
func doublesFinalConsonant(base string) bool {
	if hasAnySuffix(base, "h", "w", "x", "y") {
		return false
	}
	if len(base) == 3 {
		return true
	}
	return !hasAnySuffix(base, cvcNoDouble...)
}

func nonThirdToPresent(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "are":
		return "being", true
	case strings.HasSuffix(t, "e") && !strings.HasSuffix(t, "ee"):
		return t[:n-1] + "ing", true
	case strings.HasSuffix(t, "t") && n > 2 && t[n-3:n-1] != "ea" && IsVowel(t[n-2]):
		return t + "ting", true
	}
	return t + "ing", true
}

func baseToPresent(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "be":
		return "being", true
	case strings.HasSuffix(t, "saw"):
		return t[:n-2] + "eeing", true
	case VowelVowelConsonant(t):
		if strings.HasSuffix(t, "quit") {
			return t + "ting", true
		}
		return t + "ing", true
	case strings.HasSuffix(t, "an"):
		return t + "ning", true
	case strings.HasSuffix(t, "e") && !strings.HasSuffix(t, "ee"):
		switch {
		case hasAnySuffix(t, "hoe", "noe"):
			return t + "ing", true
		case strings.HasSuffix(t, "ie"):
			return t[:n-2] + "ying", true
		}
		return t[:n-1] + "ing", true
	case hasAnySuffix(t, "am", "um"):
		if VowelVowelM(t) {
			return t + "ing", true
		}
		return t + "ming", true
	case strings.HasSuffix(t, "er"):
		if hasAnySuffix(t, "efer", "nfer", "sfer", "deter") {
			return t + "ring", true
		}
		return t + "ing", true
	case hasAnySuffix(t, "eed", "eem"):
		return t + "ing", true
	case hasAnySuffix(t, "id", "ed", "ud"):
		return t + "ding", true
	case hasAnySuffix(t, "ab", "ob", "ub"):
		return t + "bing", true
	case hasAnySuffix(t, "ag", "eg", "ig", "og", "ug"):
		return t + "ging", true
	case hasAnySuffix(t, "ek", "ic"):
		return t + "king", true
	case hasAnySuffix(t, "el", "ul"):
		if hasAnySuffix(t, "del", "llel") {
			return t + "ing", true
		}
		return t + "ling", true
	case hasAnySuffix(t, "em", "im"):
		return t + "ming", true
	case hasAnySuffix(t, "in", "on", "un"):
		if strings.HasSuffix(t, "ammon") {
			return t + "ing", true
		}
		return t + "ning", true
	case hasAnySuffix(t, "ap", "ep", "ip", "op", "up"):
		if strings.HasSuffix(t, "velop") {
			return t + "ing", true
		}
		return t + "ping", true
	case strings.HasSuffix(t, "ol"):
		return t + "ling", true
	case hasAnySuffix(t, "ir", "or", "ur"):
		if strings.HasSuffix(t, "our") {
			return t + "ing", true
		}
		return t + "ring", true
	case hasAnySuffix(t, "at", "et", "it", "ot", "ut"):
		if t == "debut" || hasAnySuffix(t, baseTNoDouble...) {
			return t + "ing", true
		}
		return t + "ting", true
	}
	return t + "ing", true
}

func baseToThird(t string) (string, bool) {
	n := len(t)
	switch {
	case t == "be":
		return "is", true
	case hasAnySuffix(t, "do", "go"):
		return t + "es", true
	case t == "have":
		return "has", true
	case strings.HasSuffix(t, "y") && n > 1:
		if !IsVowel(t[n-2]) {
			return t[:n-1] + "ies", true
		}
		return t + "s", true
	case hasAnySuffix(t, "sh", "ch", "ss", "sso", "xi", "x"):
		return t + "es", true
	}
	return t + "s", true
}
