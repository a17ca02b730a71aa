package generrate

import "testing"

func TestParseSentence(t *testing.T) {
	s, err := ParseSentence("  the DT  dog NN ", true)
	if err != nil {
		t.Fatalf("ParseSentence: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if w, _ := s.Word(1); w.Token != "dog" || w.Tag != "NN" || w.Original != "dog" {
		t.Errorf("Word(1) = %+v", w)
	}
	if got, want := s.String(), "the DT dog NN"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := ParseSentence("the DT dog", true); err == nil {
		t.Error("ParseSentence with odd field count: want error")
	}

	u, err := ParseSentence("the dog", false)
	if err != nil {
		t.Fatalf("ParseSentence untagged: %v", err)
	}
	if u.TagsIncluded || u.String() != "the dog" {
		t.Errorf("untagged sentence = %q (tagged=%v)", u.String(), u.TagsIncluded)
	}
}

func TestSentenceInsertRemove(t *testing.T) {
	s, _ := ParseSentence("a DT b NN c NN", true)

	if err := s.Insert(3, NewWord("d", "NN")); err != nil {
		t.Fatalf("Insert at end: %v", err)
	}
	if err := s.Insert(0, NewWord("z", "NN")); err != nil {
		t.Fatalf("Insert at start: %v", err)
	}
	if got, want := s.String(), "z NN a DT b NN c NN d NN"; got != want {
		t.Errorf("after Insert = %q, want %q", got, want)
	}
	if err := s.Insert(9, NewWord("x", "NN")); err == nil {
		t.Error("Insert out of range: want error")
	}

	w, err := s.Remove(2)
	if err != nil || w.Token != "b" {
		t.Fatalf("Remove(2) = %+v, %v", w, err)
	}
	if got, want := s.String(), "z NN a DT c NN d NN"; got != want {
		t.Errorf("after Remove = %q, want %q", got, want)
	}
	if _, err := s.Remove(4); err == nil {
		t.Error("Remove out of range: want error")
	}
	if _, ok := s.Word(-1); ok {
		t.Error("Word(-1) ok")
	}
}

func TestSentenceClone(t *testing.T) {
	s, _ := ParseSentence("a DT b NN", true)
	s.ErrorDescription = "x"
	c := s.Clone()
	if _, err := c.Remove(0); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("Clone shares words with the original")
	}
	if c.ErrorDescription != "" || !c.TagsIncluded {
		t.Errorf("Clone = %+v", c)
	}
}

func TestNewSentence(t *testing.T) {
	words := []Word{NewWord("the", "DT"), NewWord("dogs", "NNS")}
	s := NewSentence(words, true)
	words[1] = NewWord("cats", "NNS")

	if got, want := s.String(), "the DT dogs NNS"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !s.TagsIncluded || s.Len() != 2 {
		t.Errorf("NewSentence = %+v", s)
	}

	inj := New(Penn)
	out, err := inj.Inject(s, "NNS", "NN")
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if got, want := out.String(), "the DT dog NN"; got != want {
		t.Errorf("Inject = %q, want %q", got, want)
	}
}

func TestMatchCase(t *testing.T) {
	tests := []struct{ s, model, want string }{
		{"dogs", "dog", "dogs"},
		{"dogs", "Dog", "Dogs"},
		{"dogs", "DOG", "DOGS"},
		{"is", "I", "Is"},
		{"men", "mAN", "men"},
	}
	for _, tt := range tests {
		if got := matchCase(tt.s, tt.model); got != tt.want {
			t.Errorf("matchCase(%q, %q) = %q, want %q", tt.s, tt.model, got, tt.want)
		}
	}
}
