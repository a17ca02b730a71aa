package generrate

import "unicode/utf16"

// seededRandom is the 48-bit linear congruential generator of
// java.util.Random. Selections seeded from the same sentence text pick the
// same positions as other implementations of the tool.
type seededRandom struct {
	seed int64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

func newRandom(seed int64) *seededRandom {
	return &seededRandom{seed: (seed ^ lcgMultiplier) & lcgMask}
}

// newTextRandom seeds a generator from the hash of text.
func newTextRandom(text string) *seededRandom {
	return newRandom(int64(textHash(text)))
}

func (r *seededRandom) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(uint64(r.seed) >> (48 - bits))
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *seededRandom) Intn(n int) int {
	if n <= 0 {
		panic("generrate: Intn with non-positive bound")
	}
	bound := int32(n)
	if bound&-bound == bound {
		return int((int64(bound) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % bound
		// int32 overflow marks the biased tail of the range.
		if bits-val+(bound-1) >= 0 {
			return int(val)
		}
	}
}

// textHash is the 31-multiplier polynomial hash over UTF-16 code units,
// wrapping at 32 bits.
func textHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}
