package v2016

import "github.com/content-cdc/fastcdc/internal/gear64"

// DefaultLevel is the normalization level used by New. A level of 2
// matches the canonical 2016 paper's presentation.
const DefaultLevel = 2

// Cut implements the v2016 single-shot cut-point contract over the 64-bit
// GEAR recurrence fp = (fp << 1) + T[b], with the normalization level
// widening or narrowing the mask on either side of avg_size.
func Cut(data []byte, minSize, avgSize, maxSize uint32, level uint8) (hash uint64, length int) {
	n := uint32(len(data))
	if n <= minSize {
		return 0, int(n)
	}

	end := n
	if end > maxSize {
		end = maxSize
	}

	strictMask, eagerMask := masks(avgSize, level)

	var fp uint64

	i := minSize

	normEnd := avgSize
	if normEnd > end {
		normEnd = end
	}

	for ; i < normEnd; i++ {
		fp = (fp << 1) + gear64.Table[data[i]]
		if fp&strictMask == 0 {
			return fp, int(i)
		}
	}

	for ; i < end; i++ {
		fp = (fp << 1) + gear64.Table[data[i]]
		if fp&eagerMask == 0 {
			return fp, int(i)
		}
	}

	return fp, int(end)
}
