//go:build noavx512

package simd

const avx512Disabled = true
