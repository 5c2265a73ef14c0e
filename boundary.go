package sigscan

import "unsafe"

// nextBoundary rounds addr up to the smallest address >= addr that is a
// multiple of stride. For stride == 1 this is the identity function.
//
// This operates on the numeric representation of the address rather than
// on a typed pointer, so it stays defined for the one-past-end address a
// scan range's end may legitimately hold (a pointer one byte past the end
// of an array is valid in Go only via unsafe.Pointer arithmetic that never
// dereferences it, which is exactly how boundary math uses it here).
func nextBoundary(addr unsafe.Pointer, stride uintptr) unsafe.Pointer {
	if stride == 1 {
		return addr
	}
	u := uintptr(addr)
	if mod := u % stride; mod != 0 {
		u += stride - mod
	}
	return unsafe.Pointer(u) //nolint:govet // boundary arithmetic, never dereferenced past range
}

// prevBoundary rounds addr down to the largest address <= addr that is a
// multiple of stride. For stride == 1 this is the identity function.
func prevBoundary(addr unsafe.Pointer, stride uintptr) unsafe.Pointer {
	if stride == 1 {
		return addr
	}
	u := uintptr(addr)
	u -= u % stride
	return unsafe.Pointer(u) //nolint:govet // boundary arithmetic, never dereferenced past range
}

// baseAddr returns the address of data's first byte, or 0 for an empty
// slice. Candidate match addresses are always measured against this
// absolute address, per the X16-alignment convention fixed in
// DESIGN.md ("A mod 16 == 0 in absolute address space").
func baseAddr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// alignedIndex returns the index of the first position in [lo, hi) of a
// slice whose absolute address (base+i) is a multiple of a's stride, or
// -1 if no such index exists below hi.
func alignedIndex(base unsafe.Pointer, a Alignment, lo, hi int) int {
	stride := a.stride()
	if stride == 1 {
		if lo < hi {
			return lo
		}
		return -1
	}
	addr := unsafe.Pointer(uintptr(base) + uintptr(lo)) //nolint:govet
	aligned := nextBoundary(addr, stride)
	idx := lo + int(uintptr(aligned)-uintptr(addr))
	if idx >= hi {
		return -1
	}
	return idx
}

// alignedIndexEnd returns the largest index <= hi such that the absolute
// address base+alignedIndexEnd(...) is a multiple of a's stride (0 when
// hi <= 0; the result is negative when no such index lies in [0, hi]);
// it is the exclusive end of the aligned iteration range.
func alignedIndexEnd(base unsafe.Pointer, a Alignment, hi int) int {
	stride := a.stride()
	if stride == 1 {
		return hi
	}
	if hi <= 0 {
		return 0
	}
	addr := unsafe.Pointer(uintptr(base) + uintptr(hi)) //nolint:govet
	aligned := prevBoundary(addr, stride)
	return hi - int(uintptr(addr)-uintptr(aligned))
}
