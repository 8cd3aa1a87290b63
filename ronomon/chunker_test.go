package ronomon_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fastcdc "github.com/content-cdc/fastcdc"
	"github.com/content-cdc/fastcdc/ronomon"
)

func TestChunkerTilingAndBounds(t *testing.T) {
	t.Parallel()

	data := make([]byte, 1<<20)
	_, err := rand.Read(data)
	require.NoError(t, err)

	chunker, err := ronomon.New(data, 16384, 32768, 65536)
	require.NoError(t, err)

	var (
		reconstructed []byte
		prevEnd       uint64
	)

	for {
		chunk, err := chunker.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		assert.Equal(t, prevEnd, chunk.Offset, "chunks must tile with no gaps or overlaps")

		isLast := chunk.Offset+uint64(chunk.Length) == uint64(len(data))
		if !isLast {
			assert.GreaterOrEqual(t, chunk.Length, uint32(16384))
		}

		assert.LessOrEqual(t, chunk.Length, uint32(65536))

		reconstructed = append(reconstructed, data[chunk.Offset:chunk.Offset+uint64(chunk.Length)]...)
		prevEnd = chunk.Offset + uint64(chunk.Length)
	}

	assert.Equal(t, data, reconstructed)
	assert.Equal(t, uint64(len(data)), prevEnd)
}

func TestChunkerDeterministic(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256*1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	collect := func() []fastcdc.Chunk {
		c, err := ronomon.New(data, 4096, 16384, 65536)
		require.NoError(t, err)

		var chunks []fastcdc.Chunk

		for {
			chunk, err := c.Next()
			if errors.Is(err, io.EOF) {
				break
			}

			require.NoError(t, err)
			chunks = append(chunks, chunk)
		}

		return chunks
	}

	assert.Equal(t, collect(), collect())
}

func TestChunkerEmptyInput(t *testing.T) {
	t.Parallel()

	chunker, err := ronomon.New(nil, 64, 256, 1024)
	require.NoError(t, err)

	_, err = chunker.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunkerSmallerThanMinimum(t *testing.T) {
	t.Parallel()

	data := make([]byte, 10)
	_, err := rand.Read(data)
	require.NoError(t, err)

	chunker, err := ronomon.New(data, 1024, 4096, 16384)
	require.NoError(t, err)

	chunk, err := chunker.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), chunk.Offset)
	assert.Equal(t, uint32(len(data)), chunk.Length)

	_, err = chunker.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunkerRejectsInvalidSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		min, avg, max uint32
	}{
		{"min above max", 100000, 50, 100},
		{"avg below min", 1024, 512, 4096},
		{"max below avg", 1024, 4096, 2048},
		{"min below floor", 1, 256, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ronomon.New(nil, tt.min, tt.avg, tt.max)
			require.Error(t, err)

			var cfgErr *fastcdc.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

// TestStreamMatchesInMemory checks invariant 6: chunking the same source
// in-memory and through the blocking stream produces identical chunks.
func TestStreamMatchesInMemory(t *testing.T) {
	t.Parallel()

	data := make([]byte, 512*1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	inMemory, err := ronomon.New(data, 8192, 32768, 131072)
	require.NoError(t, err)

	var wantChunks []fastcdc.Chunk

	for {
		chunk, err := inMemory.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		wantChunks = append(wantChunks, fastcdc.Chunk{Offset: chunk.Offset, Length: chunk.Length, Hash: chunk.Hash})
	}

	stream, err := ronomon.NewStream(bytes.NewReader(data), 8192, 32768, 131072)
	require.NoError(t, err)

	var gotChunks []fastcdc.Chunk

	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		gotChunks = append(gotChunks, fastcdc.Chunk{Offset: chunk.Offset, Length: chunk.Length, Hash: chunk.Hash})
	}

	assert.Equal(t, wantChunks, gotChunks)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestStreamPropagatesIOError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	stream, err := ronomon.NewStream(failingReader{boom}, 64, 256, 1024)
	require.NoError(t, err)

	_, err = stream.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// subsequent calls must end the sequence, not retry the failing read.
	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamEmptySourceIsDistinguishable(t *testing.T) {
	t.Parallel()

	stream, err := ronomon.NewStream(bytes.NewReader(nil), 64, 256, 1024)
	require.NoError(t, err)

	_, err = stream.Next()
	assert.ErrorIs(t, err, fastcdc.ErrEmpty)
	assert.ErrorIs(t, err, io.EOF)
}

// TestSekienAkashitaInvariants exercises the well-known CDC fixture used
// elsewhere in this module's golden tests. It checks the documented
// invariants (tiling, ordering, size bounds) rather than literal offsets;
// determinism is covered by TestChunkerDeterministic. The ronomon
// variant's 32-bit gear table here is a generated stand-in (see Table's
// doc comment and DESIGN.md), so it will not reproduce another
// implementation's literal cut points bit-for-bit.
func TestSekienAkashitaInvariants(t *testing.T) {
	t.Parallel()

	path := filepath.Join("..", "testdata", "SekienAkashita.jpg")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("fixture not present: %v", err)
	}

	chunker, err := ronomon.New(data, 16384, 32768, 65536)
	require.NoError(t, err)

	var (
		count   int
		prevEnd uint64
	)

	for {
		chunk, err := chunker.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		assert.Equal(t, prevEnd, chunk.Offset)

		isLast := chunk.Offset+uint64(chunk.Length) == uint64(len(data))
		if !isLast {
			assert.GreaterOrEqual(t, chunk.Length, uint32(16384))
		}

		assert.LessOrEqual(t, chunk.Length, uint32(65536))

		prevEnd = chunk.Offset + uint64(chunk.Length)
		count++
	}

	assert.Equal(t, uint64(len(data)), prevEnd)
	assert.Greater(t, count, 0)
}

func FuzzChunker(f *testing.F) {
	f.Add([]byte("content to be chunked into multiple pieces"), uint32(64), uint32(256), uint32(1024))
	f.Add(make([]byte, 2048), uint32(128), uint32(512), uint32(2048))

	f.Fuzz(func(t *testing.T, data []byte, minSize, avgSize, maxSize uint32) {
		chunker, err := ronomon.New(data, minSize, avgSize, maxSize)
		if err != nil {
			return
		}

		var (
			reconstructed []byte
			total         uint64
		)

		for {
			chunk, err := chunker.Next()
			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			reconstructed = append(reconstructed, data[chunk.Offset:chunk.Offset+uint64(chunk.Length)]...)
			total += uint64(chunk.Length)
		}

		if total != uint64(len(data)) {
			t.Fatalf("total length mismatch: got %d, want %d", total, len(data))
		}

		if !bytes.Equal(data, reconstructed) {
			t.Fatal("reconstructed data does not match original")
		}
	})
}
