//go:build amd64

package isa

import "golang.org/x/sys/cpu"

func init() {
	// The 128-bit kernels are VEX encoded.
	hasNarrow = cpu.X86.HasSSE41 && cpu.X86.HasAVX
	hasWide = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	initCapabilities()
}
