package gear64

import "math/bits"

// minMaskBits and maxMaskBits bound the domain of Masks: below minMaskBits
// or above maxMaskBits there is no spread-bit entry to use.
const (
	minMaskBits = 5
	maxMaskBits = 25
)

// Log2 returns round(log2(n)) for n > 0, matching spec's "bits = round(log2(A))"
// mask-derivation rule rather than requiring avgSize to be an exact power of two.
func Log2(n uint32) int {
	if n == 0 {
		return 0
	}

	l := bits.Len32(n) - 1 // floor(log2(n))
	// round to nearest: compare n against the midpoint between 2^l and 2^(l+1)
	lower := uint32(1) << uint(l)
	upper := lower << 1

	if upper != 0 && n-lower > upper-n {
		l++
	}

	return l
}

// MaskFor returns the Table-II spread-bit mask for the given bit width,
// clamping to the table's valid [minMaskBits, maxMaskBits] domain.
func MaskFor(maskBits int) uint64 {
	if maskBits < minMaskBits {
		maskBits = minMaskBits
	}

	if maskBits > maxMaskBits {
		maskBits = maxMaskBits
	}

	return Masks[maskBits]
}

// Seeded returns a copy of Table XOR-mixed with seed, and the matching
// Shifted-style table derived from it. A zero seed returns Table/Shifted
// unmodified (no per-instance allocation needed by the caller in that case).
func Seeded(seed uint64) (table, shifted [256]uint64) {
	if seed == 0 {
		return Table, Shifted
	}

	shiftedSeed := seed << 1

	for i := range Table {
		table[i] = Table[i] ^ seed
		shifted[i] = Shifted[i] ^ shiftedSeed
	}

	return table, shifted
}
