package sigscan

import "unsafe"

// Result is an optional pointer into a scanned byte range: the outcome of
// a single Find, or one element of a FindAll sequence.
type Result struct {
	data []byte // the full scanned range this result is relative to
	pos  int    // index into data, or -1 for "no match"
}

// noResult is the empty Result returned for "not found".
var noResult = Result{pos: -1}

// Found reports whether the scan produced a match.
func (r Result) Found() bool {
	return r.pos >= 0
}

// Offset returns the match's offset into the scanned range, and true, or
// (0, false) if r is empty.
func (r Result) Offset() (int, bool) {
	if !r.Found() {
		return 0, false
	}
	return r.pos, true
}

// Bytes returns the scanned range starting at the match, or nil if r is
// empty.
func (r Result) Bytes() []byte {
	if !r.Found() {
		return nil
	}
	return r.data[r.pos:]
}

// Read interprets the bytes at result+offset as a little-endian integer
// of type T. This is inherently unsafe: the caller is asserting that
// those bytes form a valid value of T and that result+offset+sizeof(T)
// does not run past the scanned range. No bounds checking is performed
// beyond a panic on an out-of-range offset; this mirrors
// scan_result_base::read in the original, which is equally unchecked.
func Read[T Integer](r Result, offset int) T {
	var zero T
	if !r.Found() {
		return zero
	}
	size := int(unsafe.Sizeof(zero))
	b := r.data[r.pos+offset : r.pos+offset+size]
	return *(*T)(unsafe.Pointer(&b[0]))
}

// Index interprets the bytes at result+offset as an integer of type Int
// and returns it divided by the size of Elem, i.e. as an index into an
// array of Elem starting at some other known base. Mirrors
// scan_result_base::index.
func Index[Int Integer, Elem any](r Result, offset int) int {
	var e Elem
	return int(Read[Int](r, offset)) / int(unsafe.Sizeof(e))
}

// Rel resolves an x86-style RIP-relative reference: it reads a signed
// 32-bit displacement at result+offset and returns a new Result pointing
// at result + displacement + offset + 4, the convention used by x86-64
// instructions that encode a relative operand immediately followed by the
// next instruction. Returns the empty Result if r itself is empty.
func (r Result) Rel(offset int) Result {
	if !r.Found() {
		return noResult
	}
	disp := Read[int32](r, offset)
	pos := r.pos + int(disp) + offset + 4
	if pos < 0 || pos > len(r.data) {
		return noResult
	}
	return Result{data: r.data, pos: pos}
}

// Integer constrains the types Read/Index may reinterpret raw bytes as.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}
