package sigscan

import "github.com/coregx/sigscan/simd"

// scanContext bundles everything a single scan needs once: the truncated
// signature view, its original leading-wildcard offset, the alignment
// constraint and the resolved matcher. Building it once lets FindAll reuse
// the same dispatch decision across every match in a loop instead of
// re-resolving per call.
type scanContext struct {
	sig    View // truncated: concrete first element, or empty
	offset int  // number of leading wildcards truncate() removed
	align  Alignment
	kernel *simd.Kernel // nil selects the scalar matcher
}

// newScanContext truncates sig and resolves the matcher to use for it,
// honoring hints. Leaves ctx.sig empty if sig is entirely wildcards (or
// empty), signaling the caller to treat every position as a match.
func newScanContext(sig Signature, align Alignment, hint Hint) scanContext {
	offset, view := truncate(sig)
	ctx := scanContext{sig: view, offset: offset, align: align}
	if len(view) == 0 {
		return ctx
	}
	ctx.kernel = resolveKernel(view, hint)
	return ctx
}

// resolveKernel picks the SIMD kernel to use for sig, or nil for the
// scalar fallback. Mirrors Scanner.hpp's detail::scan_context matcher
// selection: prefer the widest available kernel, unless HintX86_64 and the
// kernel's window is disproportionately wide for such a short pattern (see
// DESIGN.md's "x86_64 hint threshold" note), in which case fall back to
// scalar rather than waste most of a wide vector compare on bytes that
// can't start a second match.
func resolveKernel(sig View, hint Hint) *simd.Kernel {
	k := simd.Resolve()
	if k == nil {
		return nil
	}
	if hint.Has(HintX86_64) && k.Width > 4*len(sig) {
		return nil
	}
	return k
}

// findFirst runs ctx against data, returning the first match at or after
// searching from the start of data.
func (ctx scanContext) findFirst(data []byte) Result {
	if len(ctx.sig) == 0 {
		return ctx.wildcardResult(data)
	}
	// The truncated view is searched from data[ctx.offset:], so every
	// candidate leaves room for the stripped leading wildcards before it.
	if len(data) < ctx.offset {
		return noResult
	}
	rest := data[ctx.offset:]
	var r Result
	switch {
	case ctx.kernel != nil:
		r = fastFirstSIMD(rest, ctx.sig, ctx.align, ctx.kernel)
	case ctx.align == X16:
		r = fastFirstX16(rest, ctx.sig)
	default:
		r = fastFirstX1(rest, ctx.sig)
	}
	if !r.Found() {
		return noResult
	}
	return ctx.rebase(Result{data: data, pos: ctx.offset + r.pos})
}

// findFrom runs ctx against data[from:], rebasing the result back onto
// data as a whole. Used by FindAll's iteration.
func (ctx scanContext) findFrom(data []byte, from int) Result {
	if from >= len(data) {
		return noResult
	}
	r := ctx.findFirst(data[from:])
	if !r.Found() {
		return noResult
	}
	return Result{data: data, pos: from + r.pos}
}

// wildcardResult handles the degenerate all-wildcard signature: every
// position honoring align is a match, so the first one is simply the
// first aligned position that leaves room for the original signature's
// full length (ctx.offset wildcard bytes, since the truncated view is
// empty).
func (ctx scanContext) wildcardResult(data []byte) Result {
	total := ctx.offset
	if len(data) < total {
		return noResult
	}
	if ctx.align == X1 {
		return Result{data: data, pos: 0}
	}
	base := baseAddr(data)
	begin := alignedIndex(base, ctx.align, 0, len(data)-total+1)
	if begin < 0 {
		return noResult
	}
	return Result{data: data, pos: begin}
}

// rebase shifts a match found against the truncated view back to the
// original (possibly wildcard-prefixed) signature's first element, per
// spec §4.1's truncation contract: the reported position is always where
// the *original* signature would begin.
func (ctx scanContext) rebase(r Result) Result {
	if !r.Found() || ctx.offset == 0 {
		return r
	}
	pos := r.pos - ctx.offset
	if pos < 0 {
		return noResult
	}
	return Result{data: r.data, pos: pos}
}
