// Package process locates a loaded module's named section in a running
// process (or a captured image) and exposes it as a byte slice the
// sigscan engine can scan directly. It is a collaborator, not part of the
// engine itself: sigscan.Find never imports this package, and nothing
// here depends on sigscan beyond satisfying its Section interface.
package process

import "unsafe"

// Module is an opaque handle to a loaded module: its base load address.
// The zero Module is never valid.
type Module uintptr

// String renders the module's base address in hex.
func (m Module) String() string {
	const hex = "0123456789abcdef"
	if m == 0 {
		return "0x0"
	}
	u := uint64(m)
	var buf [2 + 16]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = hex[u&0xf]
		u >>= 4
	}
	i -= 2
	buf[i], buf[i+1] = '0', 'x'
	return string(buf[i:])
}

// SectionResolver locates a named section (e.g. ".text", ".rdata") within
// a module and returns its bounds as raw addresses. A section that does
// not exist returns (nil, nil, nil) — "not found" is not an error. A
// non-nil error indicates an OS-level failure (a closed handle, a denied
// access, a torn-down process) distinct from "the section isn't there".
type SectionResolver interface {
	Section(mod Module, name string) (begin, end unsafe.Pointer, err error)
}

// Region is a concrete [begin, end) address range resolved from a module,
// exposed as a byte slice view. It satisfies sigscan.Section so its
// result can be handed straight to sigscan.FindInSection.
type Region struct {
	begin unsafe.Pointer
	end   unsafe.Pointer
}

// NewRegion wraps a resolved [begin, end) range. Callers normally obtain
// begin/end from a SectionResolver rather than constructing these
// directly.
func NewRegion(begin, end unsafe.Pointer) Region {
	return Region{begin: begin, end: end}
}

// Bytes returns the region's contents as a byte slice backed directly by
// the resolved address range — no copy. Callers must not retain it past
// the lifetime of whatever memory mapping begin/end point into.
func (r Region) Bytes() []byte {
	if r.begin == nil || r.end == nil {
		return nil
	}
	n := int(uintptr(r.end) - uintptr(r.begin))
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(r.begin), n)
}

// Base returns the region's absolute start address (not Module-relative);
// subtracting the Module's base from it gives the region's RVA.
func (r Region) Base() unsafe.Pointer {
	return r.begin
}

// ResolveSection is the common "look up a named section and wrap it as a
// Region" call every platform resolver's caller wants; it turns a
// SectionResolver plus a name into a ready-to-scan Region, or reports
// not-found via ok=false.
func ResolveSection(res SectionResolver, mod Module, name string) (Region, bool, error) {
	begin, end, err := res.Section(mod, name)
	if err != nil {
		return Region{}, false, err
	}
	if begin == nil || end == nil {
		return Region{}, false, nil
	}
	return NewRegion(begin, end), true, nil
}
