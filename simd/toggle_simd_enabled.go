//go:build !nosimd

package simd

// simdDisabled is the compile-time kill switch for every kernel in this
// package, including the portable generic one. Building with -tags nosimd
// flips this to true, which is how the "capability degradation yields
// identical results" testable property (spec §8.7) is exercised without
// needing a CPU that actually lacks every feature.
const simdDisabled = false
