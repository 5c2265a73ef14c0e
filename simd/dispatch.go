// Package simd provides the SIMD-accelerated first-byte candidate search
// used by the sigscan matchers, plus the runtime CPU-capability dispatch
// that selects among SSE4.1, AVX2 and AVX-512BW kernels (amd64) and a
// portable SWAR kernel (every architecture, the narrowest rung).
//
// A kernel's job is narrow and mechanical: given a pointer to a Width-byte
// window and a needle byte, return a Width-bit mask with bit i set iff
// window[i] == needle. Everything else — alignment masking, wildcard tail
// verification, the head/body/tail walk — lives in sigscan's simdmatch.go and
// is architecture-independent Go.
package simd

import "unsafe"

// MaskFunc loads Width bytes (unaligned) from p and returns a Width-bit
// mask, held in the low Width bits of the result, with bit i set iff
// byte i of the window equals b0.
type MaskFunc func(p unsafe.Pointer, b0 byte) uint64

// Kernel is one candidate-byte matcher: a width (bytes processed per
// call) and the function that processes a window of that width.
type Kernel struct {
	Name  string
	Width int
	Mask  MaskFunc

	avail func() bool
}

// kernels lists every compiled-in kernel widest-first, regardless of
// whether the host CPU can actually execute it; Resolve filters this by
// runtime availability. Populated by dispatch_amd64.go (amd64's three
// kernels) and mask_generic.go's init (the portable SWAR kernel, every
// architecture) via registerKernel at package init, so every platform
// file only needs to know about its own kernel(s).
var kernels []Kernel

func registerKernel(k Kernel) {
	kernels = append(kernels, k)
}

func kernelAvailable(k Kernel) bool {
	return k.avail == nil || k.avail()
}

// Kernels returns every compiled-in kernel regardless of runtime CPU
// support, widest first, for use by equivalence tests that want to
// exercise a kernel the host CPU may not actually have (spec's "dispatch
// equivalence" testable property) in addition to whatever Resolve would
// actually pick.
func Kernels() []Kernel {
	out := make([]Kernel, len(kernels))
	copy(out, kernels)
	return out
}

// resolveOnce memoizes the result of Resolve across the process, per the
// spec's "process-wide, write-once... safe under racing first-time
// initialisation" dispatch cache requirement. sync.OnceValue makes the
// idempotent-compute-then-atomically-publish contract automatic.
var resolveOnce = newOnceResolver()

// Resolve returns the widest available kernel, or nil if no SIMD kernel
// is both compiled in and supported by the host CPU (and enabled by
// build-time toggles) — signaling the caller to fall back to the scalar
// matcher entirely, per spec §4.5.
func Resolve() *Kernel {
	return resolveOnce()
}
