//go:build nosimd

package simd

const simdDisabled = true
