package ronomon

import (
	"io"

	fastcdc "github.com/content-cdc/fastcdc"
)

// Chunker yields the boundaries of a single in-memory buffer using the
// ronomon cut-point algorithm. It borrows the caller's slice; it never
// copies it.
type Chunker struct {
	data    []byte
	minSize uint32
	avgSize uint32
	maxSize uint32

	offset uint64
}

// New constructs a Chunker over data. It returns a *fastcdc.ConfigError if
// minSize, avgSize, maxSize violate the bounds in fastcdc's shared limits.
func New(data []byte, minSize, avgSize, maxSize uint32) (*Chunker, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	return &Chunker{
		data:    data,
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
	}, nil
}

// Next returns the next chunk, or io.EOF once the buffer is exhausted.
func (c *Chunker) Next() (fastcdc.Chunk, error) {
	if uint64(len(c.data)) == c.offset {
		return fastcdc.Chunk{}, io.EOF
	}

	remaining := c.data[c.offset:]

	hash, length := Cut(remaining, c.minSize, c.avgSize, c.maxSize)

	chunk := fastcdc.Chunk{
		Offset: c.offset,
		Length: uint32(length), //nolint:gosec
		Hash:   uint64(hash),
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
