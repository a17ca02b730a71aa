package generrate

import (
	"fmt"
	"strings"
)

// Category is an abstract grammatical category. Rules are written against
// categories; a TagSet supplies the concrete tag strings.
type Category int

const (
	SingularNoun Category = iota
	PluralNoun
	VerbBase
	VerbThirdSing
	VerbNonThirdSing
	VerbPresPart
	VerbPastPart
	Infinitive
	Adjective
	AdjectiveComparative
	AdjectiveSuperlative
	Adverb
	numCategories
)

var categoryNames = [numCategories]string{
	SingularNoun:         "singular_noun",
	PluralNoun:           "plural_noun",
	VerbBase:             "verb_base",
	VerbThirdSing:        "verb_third_sing",
	VerbNonThirdSing:     "verb_non_third_sing",
	VerbPresPart:         "verb_pres_part",
	VerbPastPart:         "verb_past_part",
	Infinitive:           "infinitive",
	Adjective:            "adjective",
	AdjectiveComparative: "adjective_comparative",
	AdjectiveSuperlative: "adjective_superlative",
	Adverb:               "adverb",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// TagSet maps every Category to the tag a particular tagger emits for it.
// A TagSet is immutable once built.
type TagSet struct {
	Name string
	tags [numCategories]string
}

// Penn is the Penn Treebank (WSJ) tag set.
var Penn = &TagSet{
	Name: "penn",
	tags: [numCategories]string{
		SingularNoun:         "NN",
		PluralNoun:           "NNS",
		VerbBase:             "VB",
		VerbThirdSing:        "VBZ",
		VerbNonThirdSing:     "VBP",
		VerbPresPart:         "VBG",
		VerbPastPart:         "VBN",
		Infinitive:           "TO",
		Adjective:            "JJ",
		AdjectiveComparative: "JJR",
		AdjectiveSuperlative: "JJS",
		Adverb:               "RB",
	},
}

// CLAWS is the CLAWS7 tag set. It uses VV0 for both the base form and the
// non-third-person present.
var CLAWS = &TagSet{
	Name: "claws",
	tags: [numCategories]string{
		SingularNoun:         "NN1",
		PluralNoun:           "NN2",
		VerbBase:             "VV0",
		VerbThirdSing:        "VVZ",
		VerbNonThirdSing:     "VV0",
		VerbPresPart:         "VVG",
		VerbPastPart:         "VVN",
		Infinitive:           "TO",
		Adjective:            "JJ",
		AdjectiveComparative: "JJR",
		AdjectiveSuperlative: "JJT",
		Adverb:               "RR",
	},
}

// NewTagSet builds a tag set from a complete category mapping.
func NewTagSet(name string, tags map[Category]string) (*TagSet, error) {
	ts := &TagSet{Name: name}
	for c := Category(0); c < numCategories; c++ {
		tag, ok := tags[c]
		if !ok || strings.TrimSpace(tag) == "" {
			return nil, fmt.Errorf("tag set %s: no tag for %s", name, c)
		}
		ts.tags[c] = tag
	}
	return ts, nil
}

// TagSetByName returns the built-in tag set called name ("penn", "wsj",
// "claws" or "claws7", case-insensitive).
func TagSetByName(name string) (*TagSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "penn", "wsj", "":
		return Penn, nil
	case "claws", "claws7":
		return CLAWS, nil
	}
	return nil, fmt.Errorf("unknown tag set %q", name)
}

// Tag returns the concrete tag for c.
func (ts *TagSet) Tag(c Category) string {
	if c < 0 || c >= numCategories {
		return ""
	}
	return ts.tags[c]
}

// Categories returns every category whose tag is tag, in category order.
func (ts *TagSet) Categories(tag string) []Category {
	var out []Category
	for c := Category(0); c < numCategories; c++ {
		if ts.tags[c] == tag {
			out = append(out, c)
		}
	}
	return out
}

// Tags returns the category name to tag mapping.
func (ts *TagSet) Tags() map[string]string {
	m := make(map[string]string, numCategories)
	for c := Category(0); c < numCategories; c++ {
		m[c.String()] = ts.tags[c]
	}
	return m
}
