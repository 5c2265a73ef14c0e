package sigscan

import "bytes"

// fastFirstX1 is the portable scalar matcher for byte-granular alignment:
// find the truncated signature's first byte via bytes.IndexByte, verify
// the remaining (possibly wildcarded) bytes, and advance past a false
// positive by one byte. Mirrors Scanner.hpp's
// find_pattern<FastFirst, X1> (std::find + std::equal).
func fastFirstX1(data []byte, sig View) Result {
	return fastFirstX1Range(data, sig, 0, len(data)-len(sig)+1)
}

// fastFirstX1Range is fastFirstX1 restricted to candidate start positions
// in [lo, scanEnd); it is the scalar half of the head/tail split around a
// SIMD-scanned body window.
func fastFirstX1Range(data []byte, sig View, lo, scanEnd int) Result {
	first, _ := sig[0].Value()
	if lo < 0 {
		lo = 0
	}
	if scanEnd > len(data)-len(sig)+1 {
		scanEnd = len(data) - len(sig) + 1
	}
	if scanEnd <= lo {
		return noResult
	}

	i := lo
	for {
		rel := bytes.IndexByte(data[i:scanEnd], first)
		if rel < 0 {
			return noResult
		}
		i += rel
		if matchTail(sig, data[i+1:]) {
			return Result{data: data, pos: i}
		}
		i++
	}
}

// fastFirstX16 is the scalar matcher for 16-byte-aligned signatures: it
// only considers candidate addresses on a 16-byte boundary of the
// underlying array, stepping by 16 rather than scanning for the first
// byte. Mirrors Scanner.hpp's find_pattern<FastFirst, X16>.
func fastFirstX16(data []byte, sig View) Result {
	return fastFirstX16Range(data, sig, 0, len(data))
}

// fastFirstX16Range is fastFirstX16 restricted to absolute-address window
// [lo, hi) of data.
func fastFirstX16Range(data []byte, sig View, lo, hi int) Result {
	first, _ := sig[0].Value()
	if len(data) == 0 {
		return noResult
	}

	base := baseAddr(data)
	begin := alignedIndex(base, X16, lo, hi)
	end := alignedIndexEnd(base, X16, min(hi, len(data)-len(sig)+1))
	if begin < 0 || begin >= end {
		return noResult
	}

	for i := begin; i < end; i += 16 {
		if data[i] == first && matchTail(sig, data[i+1:]) {
			return Result{data: data, pos: i}
		}
	}
	return noResult
}

// fastFirstRange dispatches to the alignment-appropriate scalar matcher
// over the candidate-start range [lo, hi), used by the SIMD driver to
// cover the head before, and tail after, its full-width windows.
func fastFirstRange(data []byte, sig View, align Alignment, lo, hi int) Result {
	if align == X16 {
		return fastFirstX16Range(data, sig, lo, hi)
	}
	return fastFirstX1Range(data, sig, lo, hi)
}
