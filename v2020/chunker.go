package v2020

import (
	"io"

	fastcdc "github.com/content-cdc/fastcdc"
)

// Chunker yields the boundaries of a single in-memory buffer using the
// v2020 two-bytes-per-step cut-point algorithm. It borrows the caller's
// slice; it never copies it.
type Chunker struct {
	data    []byte
	minSize uint32
	avgSize uint32
	maxSize uint32
	engine  Engine

	offset uint64
}

// New constructs a Chunker with DefaultLevel normalization and no seed.
func New(data []byte, minSize, avgSize, maxSize uint32) (*Chunker, error) {
	return WithLevelAndSeed(data, minSize, avgSize, maxSize, DefaultLevel, 0)
}

// WithLevel constructs a Chunker with an explicit normalization level and
// no seed.
func WithLevel(data []byte, minSize, avgSize, maxSize uint32, level uint8) (*Chunker, error) {
	return WithLevelAndSeed(data, minSize, avgSize, maxSize, level, 0)
}

// WithLevelAndSeed constructs a Chunker with an explicit normalization
// level and gear-table seed. A non-zero seed XOR-mixes the gear table, so
// the same input chunked with different seeds yields a distinguishable
// cut-point sequence (tested property).
func WithLevelAndSeed(data []byte, minSize, avgSize, maxSize uint32, level uint8, seed uint64) (*Chunker, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	return &Chunker{
		data:    data,
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		engine:  NewEngine(avgSize, level, seed),
	}, nil
}

// Next returns the next chunk, or io.EOF once the buffer is exhausted.
func (c *Chunker) Next() (fastcdc.Chunk, error) {
	if uint64(len(c.data)) == c.offset {
		return fastcdc.Chunk{}, io.EOF
	}

	remaining := c.data[c.offset:]

	hash, length := c.engine.Cut(remaining, c.minSize, c.avgSize, c.maxSize)

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
