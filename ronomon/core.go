package ronomon

// Cut implements the ronomon single-shot cut-point contract: given a
// window of data starting at some stream offset, it returns the
// fingerprint at the cut point and the length of the chunk ending there.
//
// The scan always restarts with fp = 0 at i = minSize: FastCDC's rolling
// hash is intentionally memoryless across chunk boundaries, unlike
// classical Rabin chunking, so callers never need to carry fingerprint
// state between chunks.
func Cut(data []byte, minSize, avgSize, maxSize uint32) (hash uint32, length int) {
	n := uint32(len(data))
	if n <= minSize {
		return 0, int(n)
	}

	end := n
	if end > maxSize {
		end = maxSize
	}

	strictMask, eagerMask := masks(avgSize)

	var fp uint32

	i := minSize

	normEnd := avgSize
	if normEnd > end {
		normEnd = end
	}

	for ; i < normEnd; i++ {
		fp = (fp >> 1) + Table[data[i]]
		if fp&strictMask == 0 {
			return fp, int(i) + 1
		}
	}

	for ; i < end; i++ {
		fp = (fp >> 1) + Table[data[i]]
		if fp&eagerMask == 0 {
			return fp, int(i) + 1
		}
	}

	return fp, int(end)
}
