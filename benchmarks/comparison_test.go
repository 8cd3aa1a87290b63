package benchmarks

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	jotfs "github.com/jotfs/fastcdc-go"
	restic "github.com/restic/chunker"

	"github.com/content-cdc/fastcdc/v2020"
)

const benchmarkSize = 10 * 1024 * 1024 // 10 MiB

// BenchmarkComparison_V2020 benchmarks this module's v2020 variant.
func BenchmarkComparison_V2020(b *testing.B) {
	data := make([]byte, benchmarkSize)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	b.SetBytes(benchmarkSize)
	b.ResetTimer()

	for range b.N {
		stream, _ := v2020.NewStream(bytes.NewReader(data), minChunkSize, avgChunkSize, maxChunkSize)
		drainV2020(b, stream)
	}
}

// BenchmarkComparison_Jotfs benchmarks jotfs/fastcdc-go, an independent
// FastCDC 2020 implementation, against the same configuration.
func BenchmarkComparison_Jotfs(b *testing.B) {
	data := make([]byte, benchmarkSize)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	b.SetBytes(benchmarkSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		chunker, _ := jotfs.NewChunker(
			bytes.NewReader(data),
			jotfs.Options{
				MinSize:     minChunkSize,
				AverageSize: avgChunkSize,
				MaxSize:     maxChunkSize,
			},
		)

		for {
			_, err := chunker.Next()
			if err == io.EOF { //nolint:errorlint
				break
			}

			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkComparison_Restic benchmarks restic/chunker, a Rabin
// fingerprint implementation, as a point of comparison against GEAR-based
// chunking.
func BenchmarkComparison_Restic(b *testing.B) {
	data := make([]byte, benchmarkSize)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	pol := restic.Pol(0x3DA3358B4DC173)

	b.SetBytes(benchmarkSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		chunker := restic.New(bytes.NewReader(data), pol)
		buf := make([]byte, maxChunkSize)

		for {
			_, err := chunker.Next(buf)
			if err == io.EOF { //nolint:errorlint
				break
			}

			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
