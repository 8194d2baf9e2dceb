//go:build arm64

package isa

import "golang.org/x/sys/cpu"

func init() {
	// NEON registers are 128 bits; there is no 8-lane tier.
	hasNarrow = cpu.ARM64.HasASIMD
	initCapabilities()
}
