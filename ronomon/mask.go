package ronomon

import "math/bits"

// normLevel is fixed at one bit for the ronomon variant: there is no
// runtime-selectable normalization level, unlike v2016/v2020.
const normLevel = 1

// masks computes the strict (width bits+1) and eager (width bits-1) masks
// for an average size, where bits = round(log2(avgSize)).
func masks(avgSize uint32) (strict, eager uint32) {
	l := log2(avgSize)

	strict = widthMask(l + normLevel)
	eager = widthMask(l - normLevel)

	return strict, eager
}

func log2(n uint32) int {
	if n == 0 {
		return 0
	}

	l := bits.Len32(n) - 1
	lower := uint32(1) << uint(l)
	upper := lower << 1

	if upper != 0 && n-lower > upper-n {
		l++
	}

	return l
}

// widthMask returns (1<<width)-1, clamped to width >= 0 and width < 32.
func widthMask(width int) uint32 {
	if width <= 0 {
		return 0
	}

	if width >= 32 {
		width = 31
	}

	return (uint32(1) << uint(width)) - 1
}
