package sigscan

// Hint is a bitset of search hints that may influence matcher selection
// without changing the result of a search. The set is intentionally
// extensible: the engine ignores bits it doesn't recognize, so a caller
// may safely pass hints compiled against a newer version of this package.
type Hint uint64

const (
	// HintNone requests default matcher selection.
	HintNone Hint = 0
	// HintX86_64 tells the engine the scanned bytes are x86-64 machine
	// code. For very short signatures this may steer selection away from
	// a wide SIMD matcher toward the scalar fallback, since a vector
	// window much larger than the signature wastes most of its compares
	// on bytes that can't start a second match (see DESIGN.md's "x86_64
	// hint threshold" note).
	HintX86_64 Hint = 1 << 0
)

// Has reports whether all bits of other are set in h.
func (h Hint) Has(other Hint) bool {
	return h&other == other
}
