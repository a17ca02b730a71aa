package generrate

import "testing"

func TestLetterClasses(t *testing.T) {
	for _, c := range []byte("aeiouAEIOU") {
		if !IsVowel(c) || IsConsonant(c) {
			t.Errorf("%q: want vowel", c)
		}
	}
	for _, c := range []byte("bwyzBWYZ") {
		if IsVowel(c) || !IsConsonant(c) {
			t.Errorf("%q: want consonant", c)
		}
	}
	for _, c := range []byte("1-' ") {
		if IsVowel(c) || IsConsonant(c) {
			t.Errorf("%q: want neither", c)
		}
	}
}

func TestContainsPunctuation(t *testing.T) {
	tests := map[string]bool{
		"don't":  true,
		"end.":   true,
		"co-led": false,
		"walked": false,
	}
	for in, want := range tests {
		if got := ContainsPunctuation(in); got != want {
			t.Errorf("ContainsPunctuation(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestShapeMatchers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"DoubledConsonantBeforeING", DoubledConsonantBeforeING, "running", true},
		{"DoubledConsonantBeforeING", DoubledConsonantBeforeING, "RUNNING", true},
		{"DoubledConsonantBeforeING", DoubledConsonantBeforeING, "seeing", false},
		{"DoubledConsonantBeforeING", DoubledConsonantBeforeING, "ing", false},
		{"DoubledConsonantBeforeED", DoubledConsonantBeforeED, "stopped", true},
		{"DoubledConsonantBeforeED", DoubledConsonantBeforeED, "seed", false},
		{"VowelVowelM", VowelVowelM, "foam", true},
		{"VowelVowelM", VowelVowelM, "dam", false},
		{"ConsonantE", ConsonantE, "hope", true},
		{"ConsonantE", ConsonantE, "see", false},
		{"VowelVowelConsonant", VowelVowelConsonant, "read", true},
		{"VowelVowelConsonant", VowelVowelConsonant, "red", false},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("%s(%q) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestShapeSplitters(t *testing.T) {
	stem, last, ok := ConsonantVowelConsonant("stop")
	if !ok || stem != "sto" || last != "p" {
		t.Errorf("ConsonantVowelConsonant(stop) = %q, %q, %v", stem, last, ok)
	}
	if _, _, ok := ConsonantVowelConsonant("seat"); ok {
		t.Error("ConsonantVowelConsonant(seat) matched")
	}
	stem, last, ok = VowelConsonant("cat")
	if !ok || stem != "ca" || last != "t" {
		t.Errorf("VowelConsonant(cat) = %q, %q, %v", stem, last, ok)
	}
}
