//go:build nosse41

package simd

const sseDisabled = true
