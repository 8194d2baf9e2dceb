// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lane provides fixed-width lane registers for SIMD-shaped kernels.
// They are portable Go and serve as the fallback for the vector tiers when
// the hardware kernels are not compiled in.
//
// Each register is a small array value (F32x4, F32x8, ...) so a kernel's
// working set lives on the stack and nothing is allocated inside a hot loop.
// Comparisons produce lane masks whose lanes are all ones or all zeros, the
// same encoding hardware compares use, and every decision is applied with a
// bitwise Select instead of a per-lane branch.
//
// Views (View4, View8) reinterpret a padded []float32 as a sequence of
// registers through checked slice-to-array-pointer conversions; the padding
// contract is verified when the view is built.
package lane

import "github.com/akhenakh/nearseg/errs"

// RoundUp rounds n up to the next multiple of width.
func RoundUp(n, width int) int {
	return (n + width - 1) / width * width
}

func maskOf(b bool) uint32 {
	var m uint32
	if b {
		m = ^uint32(0)
	}
	return m
}

func byteMaskOf(b bool) uint8 {
	var m uint8
	if b {
		m = 0xff
	}
	return m
}

func unpadded(n, width int) error {
	return errs.InvalidArgument("lane view: length %d is not a multiple of %d", n, width)
}
