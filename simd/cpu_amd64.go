//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func cpuHasSSE41() bool {
	return cpu.X86.HasSSE41
}

func cpuHasAVX2() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasBMI1 && cpu.X86.HasBMI2
}

func cpuHasAVX512BW() bool {
	return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasBMI1 && cpu.X86.HasBMI2
}
