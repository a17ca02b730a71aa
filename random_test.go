package generrate

import "testing"

func TestTextHash(t *testing.T) {
	tests := map[string]int32{
		"":      0,
		"a":     97,
		"hello": 99162322,
	}
	for in, want := range tests {
		if got := textHash(in); got != want {
			t.Errorf("textHash(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestSeededRandomSequence(t *testing.T) {
	if got := newRandom(42).next(32); got != -1170105035 {
		t.Errorf("newRandom(42).next(32) = %d, want -1170105035", got)
	}
	if got := newRandom(42).Intn(10); got != 0 {
		t.Errorf("newRandom(42).Intn(10) = %d, want 0", got)
	}
	if got := newRandom(7).Intn(1); got != 0 {
		t.Errorf("Intn(1) = %d, want 0", got)
	}
}

func TestSeededRandomReproducible(t *testing.T) {
	a := newTextRandom("the DT dogs NNS")
	b := newTextRandom("the DT dogs NNS")
	for i := 0; i < 20; i++ {
		x, y := a.Intn(7), b.Intn(7)
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
		if x < 0 || x >= 7 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}
