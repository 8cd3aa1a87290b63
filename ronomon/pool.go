package ronomon

import (
	"io"
	"sync"

	fastcdc "github.com/content-cdc/fastcdc"
)

// StreamPool recycles Streams sharing one (min, avg, max) configuration,
// avoiding a buffer allocation per source in high-throughput scenarios
// that chunk many short-lived readers back to back.
type StreamPool struct {
	pool    sync.Pool
	minSize uint32
	avgSize uint32
	maxSize uint32
	opts    []StreamOption
}

// NewStreamPool validates the shared configuration once and returns a
// pool of Streams using it.
func NewStreamPool(minSize, avgSize, maxSize uint32, opts ...StreamOption) (*StreamPool, error) {
	if err := fastcdc.ValidateSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}

	return &StreamPool{
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		opts:    opts,
	}, nil
}

// Get retrieves a Stream from the pool bound to r, or constructs a new
// one if the pool is empty.
func (p *StreamPool) Get(r io.Reader) (*Stream, error) {
	if v := p.pool.Get(); v != nil {
		s := v.(*Stream) //nolint:forcetypeassert

		s.Reset(r)

		return s, nil
	}

	return NewStream(r, p.minSize, p.avgSize, p.maxSize, p.opts...)
}

// Put returns a Stream to the pool. The Stream must not be used again by
// the caller afterward.
func (p *StreamPool) Put(s *Stream) {
	s.Reset(nil)
	p.pool.Put(s)
}
