package v2020

import "github.com/content-cdc/fastcdc/internal/gear64"

// DefaultLevel is the normalization level used when none is specified.
const DefaultLevel = 2

// Engine holds the per-instance gear tables and masks derived from a
// chunker's (avg_size, level, seed) configuration. It is stateless across
// calls to Cut: the rolling fingerprint always restarts at zero, so a
// single Engine can be reused for every chunk boundary in a stream.
type Engine struct {
	table   [256]uint64
	shifted [256]uint64

	maskStrict        uint64
	maskEager         uint64
	maskStrictShifted uint64
	maskEagerShifted  uint64
}

// NewEngine derives an Engine for the given average size, normalization
// level, and optional seed (zero means unseeded).
func NewEngine(avgSize uint32, level uint8, seed uint64) Engine {
	table, shifted := gear64.Seeded(seed)
	strict, eager, strictShifted, eagerShifted := masks(avgSize, level)

	return Engine{
		table:             table,
		shifted:           shifted,
		maskStrict:        strict,
		maskEager:         eager,
		maskStrictShifted: strictShifted,
		maskEagerShifted:  eagerShifted,
	}
}

// Cut implements the v2020 two-bytes-per-step cut-point contract: it
// advances the GEAR recurrence fp = (fp << 1) + T[b] by processing pairs
// of bytes in one loop step, testing the cut condition once after each of
// the two byte updates (against the shifted mask after the first byte,
// the plain mask after the second). Processing stops scanning a lone
// trailing byte when the scan span is odd; as in the reference this
// implementation is grounded on, that byte is still included in the
// fallback chunk length, it simply never participates in a mask test.
func (e *Engine) Cut(data []byte, minSize, avgSize, maxSize uint32) (hash uint64, length int) {
	n := uint32(len(data))
	if n <= minSize {
		return 0, int(n)
	}

	end := n
	if end > maxSize {
		end = maxSize
	}

	normEnd := avgSize
	if normEnd > end {
		normEnd = end
	}

	scanStart := minSize &^ 1
	normalizeAt := normEnd &^ 1
	scanEnd := end &^ 1

	var fp uint64

	i := scanStart

	for ; i < normalizeAt; i += 2 {
		fp = (fp << 2) + e.shifted[data[i]]
		if fp&e.maskStrictShifted == 0 {
			return fp, int(i)
		}

		fp += e.table[data[i+1]]
		if fp&e.maskStrict == 0 {
			return fp, int(i) + 1
		}
	}

	for ; i < scanEnd; i += 2 {
		fp = (fp << 2) + e.shifted[data[i]]
		if fp&e.maskEagerShifted == 0 {
			return fp, int(i)
		}

		fp += e.table[data[i+1]]
		if fp&e.maskEager == 0 {
			return fp, int(i) + 1
		}
	}

	return fp, int(end)
}
