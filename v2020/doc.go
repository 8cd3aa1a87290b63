// Package v2020 implements the FastCDC algorithm from the 2020 paper: it
// rolls the GEAR fingerprint two bytes per iteration using a precomputed
// squared gear table, with a runtime-selectable normalization level (0-3)
// and an optional gear-table seed.
//
//	chunker, _ := v2020.New(data, 16384, 32768, 65536)
//	for {
//	    chunk, err := chunker.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // use chunk.Offset, chunk.Length, chunk.Hash
//	}
//
// Three access modes are provided: Chunker (in-memory), Stream (blocking
// io.Reader), and two cooperative-IO conventions sharing one state
// machine — AsyncStream (driven by a context-aware read function) and
// ChannelStream (driven by a channel of Fill values). Seeding
// (WithLevelAndSeed / NewStreamWithLevelAndSeed / ...) XOR-mixes the gear
// table so that chunk boundaries for the same input differ across seeds.
package v2020
