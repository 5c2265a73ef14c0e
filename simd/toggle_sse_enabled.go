//go:build !nosse41

package simd

// sseDisabled gates eligibility of the SSE4.1 kernel specifically. Build
// with -tags nosse41 to exclude it from dispatch even on a CPU that
// supports it, per spec §4.5's "compile-time switches may disable SSE".
const sseDisabled = false
