package fastcdc

// Size bounds shared by every variant (spec §3). ronomon, v2016 and v2020
// all use the same literal limits.
const (
	MinMinimum = 64
	MaxMinimum = 67108864

	MinAverage = 256
	MaxAverage = 268435456

	MinMaximum = 1024
	MaxMaximum = 1073741824
)

// ValidateSizes checks the construction-time constraints common to every
// variant: the per-bound absolute ranges and min <= avg <= max. Variant
// packages call this before applying any variant-specific checks (e.g.
// normalization level, seed).
func ValidateSizes(minSize, avgSize, maxSize uint32) error {
	if minSize < MinMinimum {
		return NewConfigError("min_size", uint64(minSize), MinMinimum)
	}

	if minSize > MaxMinimum {
		return NewConfigError("min_size", uint64(minSize), MaxMinimum)
	}

	if avgSize < MinAverage {
		return NewConfigError("avg_size", uint64(avgSize), MinAverage)
	}

	if avgSize > MaxAverage {
		return NewConfigError("avg_size", uint64(avgSize), MaxAverage)
	}

	if maxSize < MinMaximum {
		return NewConfigError("max_size", uint64(maxSize), MinMaximum)
	}

	if maxSize > MaxMaximum {
		return NewConfigError("max_size", uint64(maxSize), MaxMaximum)
	}

	if minSize > avgSize {
		return NewConfigError("min_size<=avg_size", uint64(minSize), uint64(avgSize))
	}

	if avgSize > maxSize {
		return NewConfigError("avg_size<=max_size", uint64(avgSize), uint64(maxSize))
	}

	return nil
}
