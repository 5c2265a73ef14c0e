//go:build amd64

package simd

// init registers the three amd64 kernels widest first. x/sys/cpu's
// feature flags (behind cpuHasSSE41/cpuHasAVX2/cpuHasAVX512BW) are
// themselves derived from CPUID plus, for the AVX family, an
// XGETBV/OSXSAVE check that the OS has opted the extended register
// state into context-switch save/restore — exactly the "verify the OS
// preserves the wider register set" requirement, done once by the
// x/sys/cpu package rather than here.
func init() {
	if simdDisabled {
		return
	}

	registerKernel(Kernel{
		Name:  "avx512bw",
		Width: 64,
		Mask:  maskEqualAVX512,
		avail: func() bool {
			return !avx512Disabled && cpuHasAVX512BW()
		},
	})

	registerKernel(Kernel{
		Name:  "avx2",
		Width: 32,
		Mask:  maskEqualAVX2,
		avail: cpuHasAVX2,
	})

	registerKernel(Kernel{
		Name:  "sse41",
		Width: 16,
		Mask:  maskEqualSSE41,
		avail: func() bool {
			return !sseDisabled && cpuHasSSE41()
		},
	})
}
