package sigscan

// Find searches data for the first occurrence of sig, honoring align and
// hint. It returns the empty Result if sig does not occur in data; a
// match counts only where the whole of sig, wildcards included, fits
// inside data, so a partial match at the end of data is not reported.
//
// Find is stateless and safe for concurrent use by multiple goroutines
// against disjoint or shared data, as is every other function in this
// package: nothing here mutates sig or data.
func Find(data []byte, sig Signature, align Alignment, hint Hint) Result {
	if len(sig) == 0 {
		return noResult
	}
	ctx := newScanContext(sig, align, hint)
	return ctx.findFirst(data)
}

// FindAllFunc calls fn once for every occurrence of sig in data, in
// ascending order of position, stopping early if fn returns false.
// Consecutive matches differ by at least align's stride: the scan resumes
// at pos + stride, not pos + len(sig), so self-overlapping patterns (e.g.
// "90 90" over "90 90 90 90") are not skipped, matching Scanner.hpp's
// find_all_pattern iteration (i = addr + alignment_stride<alignment>).
//
// fn receives a Result each time; because Result carries a reference to
// data rather than copying it, the byte slice is never duplicated no
// matter how many matches are found.
func FindAllFunc(data []byte, sig Signature, align Alignment, hint Hint, fn func(Result) bool) {
	if len(sig) == 0 {
		return
	}
	ctx := newScanContext(sig, align, hint)

	from := 0
	for {
		r := ctx.findFrom(data, from)
		if !r.Found() {
			return
		}
		if !fn(r) {
			return
		}
		from = r.pos + int(align.stride())
	}
}

// FindAll collects every occurrence of sig in data into a slice, in
// ascending order of position, overlapping occurrences included (see
// FindAllFunc). It is FindAllFunc with a
// collecting callback, provided for callers that want the whole result
// set rather than a streaming one.
func FindAll(data []byte, sig Signature, align Alignment, hint Hint) []Result {
	var out []Result
	FindAllFunc(data, sig, align, hint, func(r Result) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Section is the minimal "named byte range inside a loaded module"
// interface FindInSection scans against, satisfied by the process.Region
// that process.ResolveSection builds, without this package importing
// the process package (which would otherwise need cgo/OS-specific code on
// every platform just to resolve a signature).
type Section interface {
	// Bytes returns the section's raw contents, read from the live
	// process or a captured image.
	Bytes() []byte
}

// FindInSection is a convenience wrapper for the common case of scanning
// a module's section for a signature: it is exactly Find(sec.Bytes(),
// sig, align, hint), named for call-site readability at the
// process-integration layer.
func FindInSection(sec Section, sig Signature, align Alignment, hint Hint) Result {
	return Find(sec.Bytes(), sig, align, hint)
}
