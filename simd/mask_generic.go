package simd

import (
	"encoding/binary"
	"unsafe"
)

// maskEqualGeneric8 computes an 8-bit equality mask for an 8-byte window
// using the SWAR (SIMD Within A Register) zero-byte-detection formula:
// broadcast the needle into every byte of a uint64, XOR against the
// window (matching bytes become 0x00), then turn each zero byte into a
// 0x80 sentinel with the carry-free ^(((v & lows) + lows) | v | lows)
// form, one bit of which is extracted per byte below.
//
// The shorter ((v - ones) & ^v & highbits) form used to find the first
// zero byte is not exact for later bytes (a borrow out of a zero byte
// can flag a 0x01 byte above it), so it cannot report every matching
// byte; the carry-free form does, so the same head/body/tail walk that
// drives the amd64 SIMD kernels can drive this portable one too.
func maskEqualGeneric8(p unsafe.Pointer, b0 byte) uint64 {
	window := unsafe.Slice((*byte)(p), 8)
	word := binary.LittleEndian.Uint64(window)

	const ones = 0x0101010101010101
	const lows = 0x7F7F7F7F7F7F7F7F

	x := word ^ (uint64(b0) * ones)
	zero := ^(((x & lows) + lows) | x | lows)

	var mask uint64
	for i := 0; i < 8; i++ {
		if zero&(uint64(0x80)<<(8*i)) != 0 {
			mask |= 1 << i
		}
	}
	return mask
}

func maskEqualGeneric(p unsafe.Pointer, b0 byte) uint64 {
	return maskEqualGeneric8(p, b0)
}

func init() {
	if simdDisabled {
		return
	}
	registerKernel(Kernel{
		Name:  "generic",
		Width: 8,
		Mask:  maskEqualGeneric,
	})
}
