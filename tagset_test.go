package generrate

import (
	"slices"
	"testing"
)

func TestTagSetByName(t *testing.T) {
	tests := map[string]*TagSet{
		"penn":   Penn,
		"WSJ":    Penn,
		"claws7": CLAWS,
		"CLAWS":  CLAWS,
	}
	for name, want := range tests {
		got, err := TagSetByName(name)
		if err != nil || got != want {
			t.Errorf("TagSetByName(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := TagSetByName("brown"); err == nil {
		t.Error("TagSetByName(brown): want error")
	}
}

func TestTagSetCategories(t *testing.T) {
	if got := Penn.Categories("VB"); !slices.Equal(got, []Category{VerbBase}) {
		t.Errorf("Penn.Categories(VB) = %v", got)
	}
	if got := CLAWS.Categories("VV0"); !slices.Equal(got, []Category{VerbBase, VerbNonThirdSing}) {
		t.Errorf("CLAWS.Categories(VV0) = %v", got)
	}
	if got := CLAWS.Tag(AdjectiveSuperlative); got != "JJT" {
		t.Errorf("CLAWS.Tag(superlative) = %q", got)
	}
	if got := Penn.Tags()["plural_noun"]; got != "NNS" {
		t.Errorf("Penn.Tags()[plural_noun] = %q", got)
	}
}

func TestNewTagSet(t *testing.T) {
	if _, err := NewTagSet("partial", map[Category]string{SingularNoun: "N"}); err == nil {
		t.Error("NewTagSet with missing categories: want error")
	}
	full := make(map[Category]string)
	for c := Category(0); c < numCategories; c++ {
		full[c] = "T" + c.String()
	}
	ts, err := NewTagSet("custom", full)
	if err != nil {
		t.Fatalf("NewTagSet: %v", err)
	}
	if ts.Tag(Adverb) != "Tadverb" {
		t.Errorf("Tag(Adverb) = %q", ts.Tag(Adverb))
	}
}

func TestDescriptorString(t *testing.T) {
	d := &Descriptor{Kind: ErrorKind("NNS", "NN"), Old: "dogs", New: "dog", Position: 3}
	want := `errortype="SubstWrongFormNNSNNError" details="dogs/dog at 3"`
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
