package generrate

import (
	"errors"
	"slices"
	"testing"
)

func mustParse(t *testing.T, text string) *Sentence {
	t.Helper()
	s, err := ParseSentence(text, true)
	if err != nil {
		t.Fatalf("ParseSentence(%q): %v", text, err)
	}
	return s
}

func TestInjectDictionaryGate(t *testing.T) {
	inj := New(Penn, WithDictionary(NewWordSet("dogs")))

	out, err := inj.Inject(mustParse(t, "the DT dog NN barks VBZ"), "NN", "NNS")
	if err != nil {
		t.Fatalf("Inject(dog): %v", err)
	}
	if got, want := out.String(), "the DT dogs NNS barks VBZ"; got != want {
		t.Errorf("Inject(dog) = %q, want %q", got, want)
	}
	want := `errortype="SubstWrongFormNNNNSError" details="dog/dogs at 2"`
	if out.ErrorDescription != want {
		t.Errorf("ErrorDescription = %q, want %q", out.ErrorDescription, want)
	}
	d := out.Descriptor
	if d == nil || d.Old != "dog" || d.New != "dogs" || d.Position != 2 || d.SourceTag != "NN" || d.TargetTag != "NNS" {
		t.Errorf("Descriptor = %+v", d)
	}

	_, err = inj.Inject(mustParse(t, "the DT goose NN honks VBZ"), "NN", "NNS")
	if !errors.Is(err, ErrDictionaryRejected) {
		t.Fatalf("Inject(goose) error = %v, want ErrDictionaryRejected", err)
	}
	if !IsCannotCreate(err) {
		t.Errorf("IsCannotCreate(%v) = false", err)
	}
	if got := FailureKind(err); got != "dictionary_rejected" {
		t.Errorf("FailureKind = %q", got)
	}
}

func TestInjectFailures(t *testing.T) {
	inj := New(Penn)
	untagged, _ := ParseSentence("the dog barks", false)
	empty, _ := ParseSentence("", true)

	tests := []struct {
		name           string
		s              *Sentence
		source, target string
		want           error
	}{
		{"empty", empty, "NN", "NNS", ErrEmptySentence},
		{"nil", nil, "NN", "NNS", ErrEmptySentence},
		{"untagged", untagged, "NN", "NNS", ErrUntaggedSentence},
		{"no adjective", mustParse(t, "the DT dog NN barks VBZ"), "JJ", "JJR", ErrNoCandidate},
		{"to without verb", mustParse(t, "i PRP went VBD to TO school NN"), "TO", "VBG", ErrNoCandidate},
		{"blacklisted participle", mustParse(t, "they PRP need VBN"), "VBN", "VBZ", ErrNoRule},
		{"empty replacement", mustParse(t, "s NNS"), "NNS", "NN", ErrMalformedReplacement},
		{"adverb without ly", mustParse(t, "run VB fast RB"), "RB", "JJ", ErrNoRuleAndNoFallback},
		{"no rule no vocabulary", mustParse(t, "sat VBD in IN chairs NNS"), "IN", "IN", ErrNoRuleAndNoFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := inj.Inject(tt.s, tt.source, tt.target)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Inject error = %v, want %v", err, tt.want)
			}
			if out != nil {
				t.Errorf("Inject returned a sentence with an error: %q", out)
			}
			var cc *CannotCreateError
			if !errors.As(err, &cc) || cc.Reason == "" {
				t.Errorf("error %v is not a *CannotCreateError with a reason", err)
			}
		})
	}
}

func TestInjectDoesNotMutateInput(t *testing.T) {
	inj := New(Penn)
	s := mustParse(t, "the DT dogs NNS and CC cats NNS sleep VBP")
	before := s.String()

	if _, err := inj.Inject(s, "NNS", "NN"); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if s.String() != before {
		t.Errorf("input changed: %q, want %q", s.String(), before)
	}
	if s.Descriptor != nil || s.ErrorDescription != "" {
		t.Error("input sentence got an error annotation")
	}
}

func TestInjectFailureDoesNotMutateInput(t *testing.T) {
	tests := []struct {
		name           string
		inj            *Injector
		text           string
		source, target string
		want           error
	}{
		{"dictionary rejected", New(Penn, WithDictionary(NewWordSet("dogs"))),
			"a DT goose NN honks VBZ", "NN", "NNS", ErrDictionaryRejected},
		{"rule declined", New(Penn), "they PRP need VBN it PRP", "VBN", "VBZ", ErrNoRule},
		{"two-word replacement rejected", New(Penn, WithDictionary(NewWordSet("dogs"))),
			"i PRP want VBP to TO swim VB", "TO", "VBG", ErrDictionaryRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, tt.text)
			before, n := s.String(), s.Len()
			if _, err := tt.inj.Inject(s, tt.source, tt.target); !errors.Is(err, tt.want) {
				t.Fatalf("Inject error = %v, want %v", err, tt.want)
			}
			if s.String() != before || s.Len() != n {
				t.Errorf("input changed: %q, want %q", s.String(), before)
			}
			if s.Descriptor != nil || s.ErrorDescription != "" {
				t.Error("input sentence got an error annotation")
			}
		})
	}
}

func TestInjectDeterministic(t *testing.T) {
	inj := New(Penn)
	s := mustParse(t, "the DT dogs NNS and CC cats NNS chase VBP birds NNS")

	first, err := inj.Inject(s, "NNS", "NN")
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	for n := 0; n < 5; n++ {
		again, err := inj.Inject(s, "NNS", "NN")
		if err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if again.String() != first.String() || again.ErrorDescription != first.ErrorDescription {
			t.Fatalf("Inject not deterministic: %q vs %q", again, first)
		}
	}
	if got, want := first.String(), "the DT dogs NNS and CC cats NNS chase VBP bird NN"; got != want {
		t.Errorf("Inject = %q, want %q", got, want)
	}
	if first.Descriptor.Position != 6 {
		t.Errorf("Position = %d, want 6", first.Descriptor.Position)
	}
}

func TestCandidatesIdempotent(t *testing.T) {
	inj := New(Penn)
	s := mustParse(t, "the DT dogs NNS and CC cats NNS")
	a := inj.Candidates(s, "NNS")
	b := inj.Candidates(s, "NNS")
	if !slices.Equal(a, b) || !slices.Equal(a, []int{1, 3}) {
		t.Errorf("Candidates = %v then %v, want [1 3]", a, b)
	}
}

func TestInjectVocabularyFallback(t *testing.T) {
	inj := New(Penn, WithVocabulary(NewVocabulary([]string{"on IN"})))
	s := mustParse(t, "he PRP sat VBD in IN the DT chair NN")

	for n := 0; n < 3; n++ {
		out, err := inj.Inject(s, "IN", "IN")
		if err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if got, want := out.String(), "he PRP sat VBD on IN the DT chair NN"; got != want {
			t.Errorf("Inject = %q, want %q", got, want)
		}
	}
}

func TestInjectPresentToInfinitive(t *testing.T) {
	inj := New(Penn)
	out, err := inj.Inject(mustParse(t, "Running VBG fast RB is VBZ fun JJ"), "VBG", "TO")
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if got, want := out.String(), "To TO run VB fast RB is VBZ fun JJ"; got != want {
		t.Errorf("Inject = %q, want %q", got, want)
	}
	if d := out.Descriptor; d.Old != "Running" || d.New != "run" || d.Position != 1 {
		t.Errorf("Descriptor = %+v", d)
	}
}

func TestInjectInfinitiveToPresent(t *testing.T) {
	inj := New(Penn)
	out, err := inj.Inject(mustParse(t, "i PRP want VBP to TO swim VB"), "TO", "VBG")
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if got, want := out.String(), "i PRP want VBP swimming VBG"; got != want {
		t.Errorf("Inject = %q, want %q", got, want)
	}
	if d := out.Descriptor; d.Old != "swim" || d.New != "swimming" || d.Position != 3 {
		t.Errorf("Descriptor = %+v", d)
	}
}

func TestInjectCLAWS(t *testing.T) {
	inj := New(CLAWS)
	out, err := inj.Inject(mustParse(t, "the AT dog NN1 barks VVZ"), "NN1", "NN2")
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if got, want := out.String(), "the AT dogs NN2 barks VVZ"; got != want {
		t.Errorf("Inject = %q, want %q", got, want)
	}
}
