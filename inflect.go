package generrate

import "strings"

// Inflector converts words between inflectional forms. The rule methods
// (Pluralize, PastToBase, ...) tag their output with the tags of the
// inflector's TagSet.
type Inflector struct {
	tags *TagSet
}

// NewInflector returns an inflector tagging its output with ts.
func NewInflector(ts *TagSet) *Inflector {
	return &Inflector{tags: ts}
}

// TagSet returns the tag set the inflector was built with.
func (in *Inflector) TagSet() *TagSet { return in.tags }

// apply runs rule on the lowercase token of w and builds the replacement,
// re-cased after w and tagged with the tag for to.
func (in *Inflector) apply(w Word, to Category, rule func(string) (string, bool)) (Word, bool) {
	t, ok := w.normalized()
	if !ok {
		return Word{}, false
	}
	out, ok := rule(t)
	if !ok {
		return Word{}, false
	}
	return substitute(out, in.tags.Tag(to), w.Token), true
}

// ruleShape is the number of tokens a rule consumes and produces.
type ruleShape int

const (
	oneToOne ruleShape = iota
	// oneToTwo puts the infinitive marker in front of the converted verb.
	oneToTwo
	// twoToOne consumes the infinitive marker and the base verb after it.
	twoToOne
)

type rule struct {
	from, to Category
	shape    ruleShape
	apply    func(*Inflector, Word) (Word, bool)
	applies  func(Word) bool
}

// rules is scanned in order; the first entry whose tags match the requested
// pair is used. Under CLAWS, VV0 stands for both the base and the
// non-third-person present, so the order decides which rule a VV0 pair gets.
var rules = []rule{
	{from: SingularNoun, to: PluralNoun, apply: (*Inflector).Pluralize},
	{from: PluralNoun, to: SingularNoun, apply: (*Inflector).Singularize},
	{from: VerbThirdSing, to: VerbNonThirdSing, apply: (*Inflector).ThirdToNonThird},
	{from: VerbNonThirdSing, to: VerbThirdSing, apply: (*Inflector).NonThirdToThird},
	{from: VerbThirdSing, to: VerbPresPart, apply: (*Inflector).ThirdToPresent},
	{from: VerbPresPart, to: VerbPastPart, apply: (*Inflector).PresentToPast},
	{from: VerbPresPart, to: VerbThirdSing, apply: (*Inflector).PresentToThird},
	{from: VerbPresPart, to: VerbNonThirdSing, apply: (*Inflector).PresentToNonThird},
	// The verb after the inserted "to" is tagged as a base form, not as a
	// non-third-person present.
	{from: VerbPresPart, to: Infinitive, shape: oneToTwo, apply: (*Inflector).PresentToBase},
	{from: Infinitive, to: VerbPresPart, shape: twoToOne, apply: (*Inflector).BaseToPresent},
	{from: VerbBase, to: VerbPresPart, apply: (*Inflector).BaseToPresent},
	{from: VerbNonThirdSing, to: VerbPresPart, apply: (*Inflector).NonThirdToPresent},
	{from: VerbPastPart, to: VerbThirdSing, apply: (*Inflector).PastToThird},
	{from: VerbPastPart, to: VerbPresPart, apply: (*Inflector).PastToPresent},
	{from: VerbBase, to: VerbThirdSing, apply: (*Inflector).BaseToThird},
	{from: Adjective, to: AdjectiveComparative, apply: (*Inflector).Comparative},
	{from: Adjective, to: AdjectiveSuperlative, apply: (*Inflector).Superlative},
	{from: AdjectiveComparative, to: AdjectiveSuperlative, apply: (*Inflector).ComparativeToSuperlative},
	{from: AdjectiveComparative, to: Adjective, apply: (*Inflector).ComparativeToPositive},
	{from: AdjectiveSuperlative, to: Adjective, apply: (*Inflector).SuperlativeToPositive},
	{from: AdjectiveSuperlative, to: AdjectiveComparative, apply: (*Inflector).SuperlativeToComparative},
	{from: Adverb, to: Adjective, apply: (*Inflector).AdverbToAdjective, applies: endsInLy},
	{from: VerbThirdSing, to: VerbBase, apply: (*Inflector).ThirdToBase},
	{from: VerbPastPart, to: VerbBase, apply: (*Inflector).PastToBase},
	{from: VerbPresPart, to: VerbBase, apply: (*Inflector).PresentToBase},
}

func endsInLy(w Word) bool {
	t, _ := w.normalized()
	return strings.HasSuffix(t, "ly")
}

// lookup returns the first rule whose concrete tags are source and target.
// A rule with a guard only matches words the guard accepts.
func (in *Inflector) lookup(source, target string, w Word) (rule, bool) {
	for _, r := range rules {
		if in.tags.Tag(r.from) != source || in.tags.Tag(r.to) != target {
			continue
		}
		if r.applies != nil && !r.applies(w) {
			continue
		}
		return r, true
	}
	return rule{}, false
}

// HasRule reports whether some rule converts words tagged source into
// words tagged target.
func (in *Inflector) HasRule(source, target string) bool {
	for _, r := range rules {
		if in.tags.Tag(r.from) == source && in.tags.Tag(r.to) == target {
			return true
		}
	}
	return false
}

// Transform converts w, tagged source, into a word tagged target using the
// first matching rule. For the infinitive rules w is the verb itself: a
// present participle converts to its base form, and for the reverse
// direction w is the base verb that follows the marker.
func (in *Inflector) Transform(w Word, source, target string) (Word, bool) {
	r, ok := in.lookup(source, target, w)
	if !ok {
		return Word{}, false
	}
	return r.apply(in, w)
}

// Inflect converts w from one category to another under ts. It returns
// false when no rule covers the pair or the rule declines the word.
func Inflect(ts *TagSet, w Word, from, to Category) (Word, bool) {
	in := NewInflector(ts)
	for _, r := range rules {
		if r.from != from || r.to != to {
			continue
		}
		if r.applies != nil && !r.applies(w) {
			continue
		}
		return r.apply(in, w)
	}
	return Word{}, false
}
