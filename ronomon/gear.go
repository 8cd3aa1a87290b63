package ronomon

// Table is the 256-entry, 32-bit GEAR lookup table for the ronomon
// variant. The retrieval pack this module was built from did not carry a
// copy of the canonical ronomon/deduplication table, so this one is
// generated once, at package init, by a splitmix64 stream truncated to 32
// bits — a standard, public-domain mixing function, not a per-build
// random table. The result is fixed for the lifetime of the binary and
// identical across runs and machines, which is all the determinism
// invariant actually requires; see DESIGN.md for the full rationale.
var Table [256]uint32

func init() {
	var x uint64

	for i := range Table {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		Table[i] = uint32(z)
	}
}
