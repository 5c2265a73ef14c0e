//go:build amd64

package simd

import "unsafe"

// maskEqualSSE41 loads an unaligned 16-byte window at p and returns a
// 16-bit mask with bit i set iff window[i] == b0. Implemented in
// mask_amd64.s using PCMPEQB/PMOVMSKB.
//
//go:noescape
func maskEqualSSE41(p unsafe.Pointer, b0 byte) uint64

// maskEqualAVX2 is the 32-byte-window counterpart of maskEqualSSE41,
// implemented with VPCMPEQB/VPMOVMSKB over a single YMM register.
//
//go:noescape
func maskEqualAVX2(p unsafe.Pointer, b0 byte) uint64

// maskEqualAVX512 is the 64-byte-window counterpart, implemented with
// VPCMPEQB against a ZMM register producing a mask register directly
// (no PMOVMSKB-style extraction instruction exists at this width; the
// mask register is moved out with KMOVQ).
//
//go:noescape
func maskEqualAVX512(p unsafe.Pointer, b0 byte) uint64
