package generrate

import (
	"fmt"
	"strings"
)

// edit is a pending replacement of remove words starting at at.
type edit struct {
	at      int
	remove  int
	old     Word
	replace Word
	insert  []Word
	ok      bool // false when the rule declined the word
}

// Inject replaces one word tagged source in s with a form tagged target and
// returns the new sentence. s is never modified. When no error can be
// produced the returned error is a *CannotCreateError wrapping one of the
// Err* sentinels.
func (inj *Injector) Inject(s *Sentence, source, target string) (*Sentence, error) {
	kind := ErrorKind(source, target)
	if s == nil || s.Len() == 0 {
		return nil, cannotCreate(ErrEmptySentence,
			"the sentence is empty, cannot substitute one word for another")
	}
	if !s.TagsIncluded {
		return nil, cannotCreate(ErrUntaggedSentence,
			fmt.Sprintf("cannot substitute a word tagged %s: the sentence is not tagged", source))
	}

	out := s.Clone()
	candidates := inj.Candidates(out, source)
	if len(candidates) == 0 {
		return nil, cannotCreate(ErrNoCandidate,
			fmt.Sprintf("cannot substitute a word tagged %s: there is none in the sentence", source))
	}

	rng := newTextRandom(out.String())
	where := candidates[rng.Intn(len(candidates))]

	e, err := inj.transform(out, where, source, target, kind, rng)
	if err != nil {
		return nil, err
	}
	if err := inj.validate(e, kind); err != nil {
		return nil, err
	}

	for n := 0; n < e.remove; n++ {
		if _, err := out.Remove(e.at); err != nil {
			return nil, fmt.Errorf("commit %s: %w", kind, err)
		}
	}
	for i, w := range e.insert {
		if err := out.Insert(e.at+i, w); err != nil {
			return nil, fmt.Errorf("commit %s: %w", kind, err)
		}
	}

	d := &Descriptor{
		Kind:      kind,
		Old:       e.old.Token,
		New:       e.replace.Token,
		Position:  where + 1,
		SourceTag: source,
		TargetTag: target,
	}
	out.Descriptor = d
	out.ErrorDescription = d.String()
	return out, nil
}

// Candidates returns the positions of words tagged source. When source is
// the infinitive marker, the word after it must be a base-form verb.
func (inj *Injector) Candidates(s *Sentence, source string) []int {
	inf := inj.tags.Tag(Infinitive)
	base := inj.tags.Tag(VerbBase)

	var out []int
	for i, w := range s.words {
		if w.Tag != source {
			continue
		}
		if source == inf {
			next, ok := s.Word(i + 1)
			if !ok || next.Tag != base {
				continue
			}
		}
		out = append(out, i)
	}
	return out
}

func (inj *Injector) transform(s *Sentence, where int, source, target, kind string, rng *seededRandom) (edit, error) {
	old, _ := s.Word(where)

	r, ok := inj.inflector.lookup(source, target, old)
	if !ok {
		return inj.fallback(old, where, target, kind, rng)
	}

	switch r.shape {
	case oneToTwo:
		verb, ok := r.apply(inj.inflector, old)
		to := substitute("to", inj.tags.Tag(Infinitive), old.Token)
		if ok && isCapitalized(old.Token) && !isUpper(old.Token) {
			verb.Token = strings.ToLower(verb.Token)
		}
		return edit{at: where, remove: 1, old: old, replace: verb, insert: []Word{to, verb}, ok: ok}, nil
	case twoToOne:
		verb, _ := s.Word(where + 1)
		pres, ok := r.apply(inj.inflector, verb)
		return edit{at: where, remove: 2, old: verb, replace: pres, insert: []Word{pres}, ok: ok}, nil
	}
	w, ok := r.apply(inj.inflector, old)
	return edit{at: where, remove: 1, old: old, replace: w, insert: []Word{w}, ok: ok}, nil
}

// fallback picks a replacement among the extra words tagged target, using
// the same generator that chose the position.
func (inj *Injector) fallback(old Word, where int, target, kind string, rng *seededRandom) (edit, error) {
	tokens := inj.vocabulary.Tokens(target)
	if len(tokens) == 0 {
		return edit{}, cannotCreate(ErrNoRuleAndNoFallback,
			fmt.Sprintf("no word tagged %s in the extra word list, cannot create %s", target, kind))
	}
	w := substitute(tokens[rng.Intn(len(tokens))], target, old.Token)
	return edit{at: where, remove: 1, old: old, replace: w, insert: []Word{w}, ok: true}, nil
}

func (inj *Injector) validate(e edit, kind string) error {
	if !e.ok {
		return cannotCreate(ErrNoRule,
			fmt.Sprintf("no rule turns %q into a word for %s", e.old.Token, kind))
	}
	if strings.TrimSpace(e.replace.Token) == "" {
		return cannotCreate(ErrMalformedReplacement,
			fmt.Sprintf("problem inserting %s: empty replacement for %q", kind, e.old.Token))
	}
	if inj.dictionary.Len() > 0 && !inj.dictionary.Contains(e.replace.Token) {
		return cannotCreate(ErrDictionaryRejected,
			fmt.Sprintf("the replacement made by %s is not in the dictionary: '%s/%s' => '%s/%s'",
				kind, strings.ToLower(e.old.Token), e.old.Tag,
				strings.ToLower(e.replace.Token), e.replace.Tag))
	}
	return nil
}
