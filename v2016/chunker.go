package v2016

import (
	"io"

	fastcdc "github.com/content-cdc/fastcdc"
)

// Chunker yields the boundaries of a single in-memory buffer using the
// v2016 cut-point algorithm. It borrows the caller's slice; it never
// copies it.
type Chunker struct {
	data    []byte
	minSize uint32
	avgSize uint32
	maxSize uint32
	level   uint8

	offset uint64
}

// New constructs a Chunker using DefaultLevel normalization.
func New(data []byte, minSize, avgSize, maxSize uint32) (*Chunker, error) {
	return WithLevel(data, minSize, avgSize, maxSize, DefaultLevel)
}

// WithLevel constructs a Chunker with an explicit normalization level
// (0-3). It returns a *fastcdc.ConfigError if the size bounds are violated.
func WithLevel(data []byte, minSize, avgSize, maxSize uint32, level uint8) (*Chunker, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	return &Chunker{
		data:    data,
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		level:   level,
	}, nil
}

// Next returns the next chunk, or io.EOF once the buffer is exhausted.
func (c *Chunker) Next() (fastcdc.Chunk, error) {
	if uint64(len(c.data)) == c.offset {
		return fastcdc.Chunk{}, io.EOF
	}

	remaining := c.data[c.offset:]

	hash, length := Cut(remaining, c.minSize, c.avgSize, c.maxSize, c.level)

	chunk := fastcdc.Chunk{
		Offset: c.offset,
		Length: uint32(length), //nolint:gosec
		Hash:   hash,
	}

	c.offset += uint64(length)

	return chunk, nil
}

// SizeHint returns (lower, upper) bounds on the number of chunks
// remaining, per fastcdc.SizeHint.
func (c *Chunker) SizeHint() (lower, upper uint64) {
	remaining := uint64(len(c.data)) - c.offset

	return fastcdc.SizeHint(remaining, c.minSize, c.maxSize)
}
