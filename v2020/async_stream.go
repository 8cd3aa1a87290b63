package v2020

import (
	"context"
	"io"

	fastcdc "github.com/content-cdc/fastcdc"
)

// ReadFuncContext is a cooperative byte source: a read step that may
// suspend, observing ctx for cancellation. It follows the same contract
// as io.Reader's Read otherwise (may return a short read with no error).
type ReadFuncContext func(ctx context.Context, p []byte) (int, error)

// AsyncStream drives the v2020 cut-point algorithm over a cooperative
// byte source, suspending only inside its buffer-refill step. No
// suspension occurs inside the cut-scanning loop. If ctx is canceled
// during a refill, Next returns ctx.Err() immediately and emits no
// partial chunk; the Stream is left done and every later call also
// returns ctx.Err().
type AsyncStream struct {
	read    ReadFuncContext
	minSize uint32
	avgSize uint32
	maxSize uint32
	engine  Engine

	buf    []byte
	filled int
	eof    bool
	done   bool
	offset uint64
	endErr error
}

// NewAsyncStream constructs an AsyncStream with DefaultLevel normalization
// and no seed.
func NewAsyncStream(read ReadFuncContext, minSize, avgSize, maxSize uint32, opts ...StreamOption) (*AsyncStream, error) {
	return NewAsyncStreamWithLevelAndSeed(read, minSize, avgSize, maxSize, DefaultLevel, 0, opts...)
}

// NewAsyncStreamWithLevelAndSeed constructs an AsyncStream with an
// explicit normalization level and gear-table seed.
func NewAsyncStreamWithLevelAndSeed(read ReadFuncContext, minSize, avgSize, maxSize uint32, level uint8, seed uint64, opts ...StreamOption) (*AsyncStream, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	cfg := resolveStreamConfig(maxSize, opts)

	return &AsyncStream{
		read:    read,
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		engine:  NewEngine(avgSize, level, seed),
		buf:     make([]byte, cfg.bufferSize),
	}, nil
}

func (s *AsyncStream) fillBuffer(ctx context.Context) error {
	for s.filled < int(s.maxSize) && !s.eof {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := s.read(ctx, s.buf[s.filled:])
		s.filled += n

		switch {
		case err == io.EOF: //nolint:errorlint
			s.eof = true
		case err != nil:
			return err
		case n == 0:
			s.eof = true
		}
	}

	return nil
}

// Next returns the next chunk. Semantics mirror Stream.Next, with ctx
// cancellation surfaced as ctx.Err() instead of a read error.
func (s *AsyncStream) Next(ctx context.Context) (fastcdc.Chunk, error) {
	if s.done {
		return fastcdc.Chunk{}, s.terminalError()
	}

	if err := ctx.Err(); err != nil {
		return fastcdc.Chunk{}, err
	}

	if err := s.fillBuffer(ctx); err != nil {
		s.done = true

		if ctx.Err() != nil {
			s.endErr = err

			return fastcdc.Chunk{}, err
		}

		s.endErr = io.EOF

		return fastcdc.Chunk{}, fastcdc.NewIOError(err)
	}

	if s.filled == 0 {
		s.done = true
		s.endErr = io.EOF

		if s.offset == 0 {
			return fastcdc.Chunk{}, fastcdc.ErrEmpty
		}

		return fastcdc.Chunk{}, io.EOF
	}

	hash, length := s.engine.Cut(s.buf[:s.filled], s.minSize, s.avgSize, s.maxSize)

	chunk := fastcdc.Chunk{
		Offset: s.offset,
		Length: uint32(length), //nolint:gosec
		Hash:   hash,
		Data:   s.buf[:length],
	}

	copy(s.buf, s.buf[length:s.filled])
	s.filled -= length
	s.offset += uint64(length)

	return chunk, nil
}

func (s *AsyncStream) terminalError() error {
	if s.endErr != nil {
		return s.endErr
	}

	return io.EOF
}
