package ronomon

import (
	"io"

	fastcdc "github.com/content-cdc/fastcdc"
)

// defaultBufferSizeMultiplier mirrors the teacher package's convention of sizing the
// internal read buffer at twice the largest chunk the caller can ask for.
const defaultBufferSizeMultiplier = 2

// StreamOption configures a Stream at construction.
type StreamOption func(*streamConfig)

type streamConfig struct {
	bufferSize int
}

// WithBufferSize overrides the internal buffer size. It must be at least
// maxSize; smaller values are raised to maxSize automatically.
func WithBufferSize(size int) StreamOption {
	return func(c *streamConfig) { c.bufferSize = size }
}

// Stream drives the ronomon cut-point algorithm over an io.Reader,
// refilling a fixed-capacity buffer as chunks are consumed. It never
// suspends except inside the blocking Read call.
type Stream struct {
	r       io.Reader
	minSize uint32
	avgSize uint32
	maxSize uint32

	buf     []byte
	filled  int
	eof     bool
	done    bool
	offset  uint64
}

// NewStream constructs a Stream reading from r.
func NewStream(r io.Reader, minSize, avgSize, maxSize uint32, opts ...StreamOption) (*Stream, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	cfg := streamConfig{bufferSize: int(maxSize) * defaultBufferSizeMultiplier}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.bufferSize < int(maxSize) {
		cfg.bufferSize = int(maxSize)
	}

	return &Stream{
		r:       r,
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		buf:     make([]byte, cfg.bufferSize),
	}, nil
}

// Reset reconfigures the Stream to read from r, clearing all internal
// state so the Stream can be reused from a Pool without reallocating its
// buffer.
func (s *Stream) Reset(r io.Reader) {
	s.r = r
	s.filled = 0
	s.eof = false
	s.done = false
	s.offset = 0
}

func (s *Stream) fillBuffer() error {
	if s.filled >= int(s.maxSize) || s.eof {
		return nil
	}

	n, err := io.ReadFull(s.r, s.buf[s.filled:])
	s.filled += n

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF: //nolint:errorlint
		s.eof = true
	case err != nil:
		return err
	}

	return nil
}

// Next returns the next chunk. It returns io.EOF once the source is
// exhausted, fastcdc.ErrEmpty if the source never produced any bytes, or a
// *fastcdc.IOError wrapping a read failure (after which every subsequent
// call also returns io.EOF; the sequence is never retried).
//
// The returned Chunk's Data slice is only valid until the next call to
// Next.
func (s *Stream) Next() (fastcdc.Chunk, error) {
	if s.done {
		return fastcdc.Chunk{}, io.EOF
	}

	if err := s.fillBuffer(); err != nil {
		s.done = true

		return fastcdc.Chunk{}, fastcdc.NewIOError(err)
	}

	if s.filled == 0 {
		s.done = true

		if s.offset == 0 {
			return fastcdc.Chunk{}, fastcdc.ErrEmpty
		}

		return fastcdc.Chunk{}, io.EOF
	}

	hash, length := Cut(s.buf[:s.filled], s.minSize, s.avgSize, s.maxSize)

	chunk := fastcdc.Chunk{
		Offset: s.offset,
		Length: uint32(length), //nolint:gosec
		Hash:   uint64(hash),
		Data:   s.buf[:length],
	}

	copy(s.buf, s.buf[length:s.filled])
	s.filled -= length
	s.offset += uint64(length)

	return chunk, nil
}
