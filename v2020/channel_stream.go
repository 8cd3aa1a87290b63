package v2020

import (
	"context"
	"errors"
	"io"

	fastcdc "github.com/content-cdc/fastcdc"
)

// Fill is one read result pushed by a producer goroutine feeding a
// ChannelStream. Err set to io.EOF (with or without trailing Data) marks
// the end of the source; any other non-nil Err aborts the sequence.
type Fill struct {
	Data []byte
	Err  error
}

// errFillTooLarge is returned when a producer pushes more bytes than the
// stream's buffer has remaining capacity for.
var errFillTooLarge = errors.New("fastcdc: fill exceeds remaining buffer capacity")

// ChannelStream drives the v2020 cut-point algorithm from a channel of
// Fill values instead of a callback, for callers who already structure
// their I/O as channel producers. It shares AsyncStream's state machine:
// suspension is confined to the refill step, selecting between the fill
// channel and ctx.Done().
type ChannelStream struct {
	fills   <-chan Fill
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

// NewChannelStream constructs a ChannelStream with DefaultLevel
// normalization and no seed.
func NewChannelStream(fills <-chan Fill, minSize, avgSize, maxSize uint32, opts ...StreamOption) (*ChannelStream, error) {
	return NewChannelStreamWithLevelAndSeed(fills, minSize, avgSize, maxSize, DefaultLevel, 0, opts...)
}

// NewChannelStreamWithLevelAndSeed constructs a ChannelStream with an
// explicit normalization level and gear-table seed.
func NewChannelStreamWithLevelAndSeed(fills <-chan Fill, minSize, avgSize, maxSize uint32, level uint8, seed uint64, opts ...StreamOption) (*ChannelStream, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	cfg := resolveStreamConfig(maxSize, opts)

	return &ChannelStream{
		fills:   fills,
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		engine:  NewEngine(avgSize, level, seed),
		buf:     make([]byte, cfg.bufferSize),
	}, nil
}

func (s *ChannelStream) fillBuffer(ctx context.Context) error {
	for s.filled < int(s.maxSize) && !s.eof {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-s.fills:
			if !ok {
				s.eof = true

				return nil
			}

			if len(f.Data) > len(s.buf)-s.filled {
				return errFillTooLarge
			}

			s.filled += copy(s.buf[s.filled:], f.Data)

			if f.Err == nil {
				continue
			}

			if errors.Is(f.Err, io.EOF) {
				s.eof = true

				return nil
			}

			return f.Err
		}
	}

	return nil
}

// Next returns the next chunk. Semantics mirror AsyncStream.Next.
func (s *ChannelStream) Next(ctx context.Context) (fastcdc.Chunk, error) {
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

func (s *ChannelStream) terminalError() error {
	if s.endErr != nil {
		return s.endErr
	}

	return io.EOF
}
