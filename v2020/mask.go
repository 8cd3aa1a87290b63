package v2020

import "github.com/content-cdc/fastcdc/internal/gear64"

// masks returns the strict and eager masks for the given average chunk
// size and normalization level, per spec §4.1, along with their
// left-shifted counterparts used to test the cut condition after the
// first byte of a two-byte step (see Engine.Cut).
func masks(avgSize uint32, level uint8) (strict, eager, strictShifted, eagerShifted uint64) {
	bits := gear64.Log2(avgSize)

	strict = gear64.MaskFor(bits + int(level))
	eager = gear64.MaskFor(bits - int(level))

	return strict, eager, strict << 1, eager << 1
}
