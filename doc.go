// Package fastcdc provides the shared pieces of a content-defined chunking
// (CDC) library: the Chunk record, the error taxonomy, and the remaining-
// chunk size-hint math. The chunking engines themselves live in the
// sibling packages ronomon, v2016, and v2020 — one per FastCDC variant.
//
// Each variant package exposes the same three access modes:
//
//   - in-memory: New(data, min, avg, max) returns a Chunker that yields
//     boundaries into the caller's own slice.
//   - streaming: NewStream(reader, min, avg, max) returns a Stream that
//     reads from an io.Reader in fixed-size refill increments.
//   - (v2020 only) cooperative streaming: NewAsyncStream and
//     NewChannelStream, for callers structuring I/O around a
//     context.Context or a channel instead of a blocking io.Reader.
//
// Variants deliberately produce different, non-interchangeable cut-point
// sequences for the same input: pick one per embedding system and keep it,
// the library does not attempt to auto-select.
package fastcdc
