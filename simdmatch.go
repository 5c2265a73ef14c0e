package sigscan

import (
	"math/bits"
	"unsafe"

	"github.com/coregx/sigscan/simd"
)

// fastFirstSIMD scans data for sig's truncated first byte using kernel,
// honoring align, falling back to the scalar matcher for the unaligned
// head before kernel's first full window and the remainder after its
// last one.
//
// Window starts are pinned to a 16-byte absolute-address boundary
// regardless of kernel.Width, since every kernel width in this package
// (16/32/64) is itself a multiple of 16: that keeps align.laneMask(width)
// valid for the whole window using only the window's start address, with
// no dependency on the kernel's own width being the alignment unit. Every
// kernel load is unaligned (MOVOU/VMOVDQU/VMOVDQU64), so this is purely
// about keeping the candidate-lane mask constant, not about satisfying a
// hardware alignment requirement on the load itself.
func fastFirstSIMD(data []byte, sig View, align Alignment, kernel *simd.Kernel) Result {
	scanEnd := len(data) - len(sig) + 1
	if scanEnd <= 0 {
		return noResult
	}

	base := baseAddr(data)
	width := kernel.Width

	bodyBegin := alignedIndex(base, X16, 0, scanEnd)
	if bodyBegin < 0 {
		return fastFirstRange(data, sig, align, 0, scanEnd)
	}

	if r := fastFirstRange(data, sig, align, 0, bodyBegin); r.Found() {
		return r
	}

	lanes := align.laneMask(width)
	first, _ := sig[0].Value()

	winStart := bodyBegin
	for winStart+width <= len(data) {
		p := unsafe.Pointer(uintptr(base) + uintptr(winStart)) //nolint:govet // within data, never escapes the window

		mask := kernel.Mask(p, first) & lanes
		// Candidate lanes that fall at or beyond scanEnd can't start a
		// full match; the alignment mask alone doesn't know about
		// len(sig), so clip explicitly.
		if tailStart := scanEnd - winStart; tailStart < width {
			if tailStart <= 0 {
				mask = 0
			} else {
				mask &= (uint64(1) << tailStart) - 1
			}
		}

		for mask != 0 {
			lane := bits.TrailingZeros64(mask)
			mask &= mask - 1
			i := winStart + lane
			if matchTail(sig, data[i+1:]) {
				return Result{data: data, pos: i}
			}
		}

		winStart += width
	}

	return fastFirstRange(data, sig, align, winStart, scanEnd)
}
