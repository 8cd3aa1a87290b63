package benchmarks

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/content-cdc/fastcdc/ronomon"
	"github.com/content-cdc/fastcdc/v2016"
	"github.com/content-cdc/fastcdc/v2020"
)

const (
	minChunkSize = 16 * 1024
	avgChunkSize = 64 * 1024
	maxChunkSize = 256 * 1024
)

// BenchmarkVariants benchmarks the streaming driver of each variant over a
// range of input sizes.
func BenchmarkVariants(b *testing.B) {
	sizes := []int{
		1 * 1024 * 1024,
		10 * 1024 * 1024,
		100 * 1024 * 1024,
	}

	for _, size := range sizes {
		data := make([]byte, size)
		if _, err := rand.Read(data); err != nil {
			b.Fatal(err)
		}

		b.Run(formatSize(size)+"/ronomon", func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for range b.N {
				stream, _ := ronomon.NewStream(bytes.NewReader(data), minChunkSize, avgChunkSize, maxChunkSize)
				drainRonomon(b, stream)
			}
		})

		b.Run(formatSize(size)+"/v2016", func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for range b.N {
				stream, _ := v2016.NewStream(bytes.NewReader(data), minChunkSize, avgChunkSize, maxChunkSize)
				drainV2016(b, stream)
			}
		})

		b.Run(formatSize(size)+"/v2020", func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for range b.N {
				stream, _ := v2020.NewStream(bytes.NewReader(data), minChunkSize, avgChunkSize, maxChunkSize)
				drainV2020(b, stream)
			}
		})
	}
}

// BenchmarkEngineCut benchmarks the allocation-free v2020 Engine.Cut API
// directly, outside the Stream/Chunker bookkeeping.
func BenchmarkEngineCut(b *testing.B) {
	data := make([]byte, 10*1024*1024)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	engine := v2020.NewEngine(avgChunkSize, v2020.DefaultLevel, 0)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		offset := 0
		for offset < len(data) {
			_, length := engine.Cut(data[offset:], minChunkSize, avgChunkSize, maxChunkSize)
			offset += length
		}
	}
}

// BenchmarkStreamPool benchmarks pool reuse against allocating a fresh
// Stream per source.
func BenchmarkStreamPool(b *testing.B) {
	data := make([]byte, 10*1024*1024)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	pool, err := v2020.NewStreamPool(minChunkSize, avgChunkSize, maxChunkSize)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		stream, _ := pool.Get(bytes.NewReader(data))
		drainV2020(b, stream)
		pool.Put(stream)
	}
}

// BenchmarkNormalizationLevels benchmarks v2016 across its four
// normalization levels.
func BenchmarkNormalizationLevels(b *testing.B) {
	data := make([]byte, 10*1024*1024)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	levels := []uint8{0, 1, 2, 3}

	for _, level := range levels {
		b.Run(formatUint8(level), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for range b.N {
				stream, _ := v2016.NewStreamWithLevel(bytes.NewReader(data), minChunkSize, avgChunkSize, maxChunkSize, level)
				drainV2016(b, stream)
			}
		})
	}
}

func drainRonomon(b *testing.B, s *ronomon.Stream) {
	b.Helper()

	for {
		_, err := s.Next()
		if err == io.EOF { //nolint:errorlint
			return
		}

		if err != nil {
			b.Fatal(err)
		}
	}
}

func drainV2016(b *testing.B, s *v2016.Stream) {
	b.Helper()

	for {
		_, err := s.Next()
		if err == io.EOF { //nolint:errorlint
			return
		}

		if err != nil {
			b.Fatal(err)
		}
	}
}

func drainV2020(b *testing.B, s *v2020.Stream) {
	b.Helper()

	for {
		_, err := s.Next()
		if err == io.EOF { //nolint:errorlint
			return
		}

		if err != nil {
			b.Fatal(err)
		}
	}
}

func formatSize(size int) string {
	const (
		KiB = 1024
		MiB = 1024 * KiB
	)

	if size >= MiB {
		return itoa(size/MiB) + "MiB"
	}

	return itoa(size/KiB) + "KiB"
}

func formatUint8(n uint8) string {
	return "Level" + itoa(int(n))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var buf [20]byte

	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte('0' + n%10)
		n /= 10
		i--
	}

	return string(buf[i+1:])
}
