// Package v2016 implements the canonical FastCDC algorithm from the 2016
// paper: a 64-bit GEAR fingerprint advanced with fp = (fp << 1) + T[b],
// tested against a normalization window whose width is controlled by a
// runtime-selectable level (0-3).
//
//	chunker, _ := v2016.New(data, 16384, 32768, 65536)
//	for {
//	    chunk, err := chunker.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // use chunk.Offset, chunk.Length, chunk.Hash
//	}
//
// WithLevel selects an explicit normalization level; New uses
// DefaultLevel. Stream drives the same algorithm over an io.Reader
// instead of a resident buffer.
package v2016
