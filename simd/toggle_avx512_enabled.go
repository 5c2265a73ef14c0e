//go:build !noavx512

package simd

// avx512Disabled gates eligibility of the AVX-512 kernel specifically.
// Build with -tags noavx512 to exclude it even on a CPU that supports it,
// per spec §4.5's "...or AVX-512".
const avx512Disabled = false
