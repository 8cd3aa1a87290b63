// Package ronomon implements the original ronomon/FastCDC variation: a
// 32-bit GEAR fingerprint advanced with fp = (fp >> 1) + Table[b], tested
// against a fixed one-bit-wide normalization window (no runtime-selectable
// level, unlike v2016/v2020).
//
//	chunker, _ := ronomon.New(data, 16384, 32768, 65536)
//	for {
//	    chunk, err := chunker.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // use chunk.Offset, chunk.Length, chunk.Hash
//	}
//
// Stream drives the same algorithm over an io.Reader instead of a
// resident buffer.
package ronomon
