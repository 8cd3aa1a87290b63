package fastcdc

// Chunk is a single content-defined chunk produced by any of the variant
// packages (ronomon, v2016, v2020).
//
// Hash is the terminal rolling-hash fingerprint at the cut point, not a
// content hash: it is useful for reproducibility checks, not integrity.
// Data is populated by the streaming drivers and left nil by the
// in-memory iterators, which only describe offsets into the caller's own
// slice.
type Chunk struct {
	Offset uint64
	Length uint32
	Hash   uint64
	Data   []byte
}
