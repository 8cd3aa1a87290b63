package v2016

import "github.com/content-cdc/fastcdc/internal/gear64"

// masks returns the strict (below avg_size) and eager (at or above avg_size)
// masks for the given average chunk size and normalization level, per
// spec §4.1: bits = round(log2(avg)), strict uses bits+level, eager uses
// bits-level. Level 0 makes the two masks identical, disabling bias.
func masks(avgSize uint32, level uint8) (strict, eager uint64) {
	bits := gear64.Log2(avgSize)

	strict = gear64.MaskFor(bits + int(level))
	eager = gear64.MaskFor(bits - int(level))

	return strict, eager
}
