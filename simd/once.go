package simd

import "sync"

// newOnceResolver builds the memoized "pick the widest available kernel"
// function backing Resolve. Kept separate from Resolve itself so tests in
// this package can construct a fresh resolver (bypassing the process-wide
// cache) to verify behavior under different availability predicates.
func newOnceResolver() func() *Kernel {
	return sync.OnceValue(func() *Kernel {
		for i := range kernels {
			if kernelAvailable(kernels[i]) {
				k := kernels[i]
				return &k
			}
		}
		return nil
	})
}
