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

// Package vecalg provides small vectorized slice primitives.
//
// Each primitive has one implementation per isa tier, all returning
// identical results. Built with GOEXPERIMENT=simd on amd64 the Wide tier
// runs on 256-bit and the Narrow tier on 128-bit archsimd vectors. Other
// builds fall back to go-highway vectors for Wide and to 128-bit lane
// registers for Narrow. The Scalar tier is plain loops. When a slice is not
// a multiple of the window width the last window is moved back to end on
// the final element, so every element is visited and nothing is read out
// of bounds.
package vecalg

import (
	"math/bits"
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/akhenakh/nearseg/errs"
	"github.com/akhenakh/nearseg/isa"
	"github.com/akhenakh/nearseg/lane"
)

// narrowBytes is the width in bytes of a Narrow tier window.
const narrowBytes = 16

// EnsureCompliantBools writes 1 to dst for every non-zero byte of src and 0
// for every zero byte. dst may alias src. It fails with
// errs.ErrInvalidArgument when dst is shorter than src.
func EnsureCompliantBools(dst, src []byte) error {
	return EnsureCompliantBoolsTier(isa.Auto, dst, src)
}

// EnsureCompliantBoolsTier is EnsureCompliantBools at an explicit tier.
func EnsureCompliantBoolsTier(tier isa.Tier, dst, src []byte) error {
	if len(src) == 0 {
		return nil
	}
	if len(dst) < len(src) {
		return errs.InvalidArgument("ensure compliant bools: output length %d < input length %d", len(dst), len(src))
	}
	tier, err := isa.Resolve(tier)
	if err != nil {
		return err
	}
	switch tier {
	case isa.Wide:
		normalizeWide(dst, src)
	case isa.Narrow:
		normalizeNarrow(dst, src)
	default:
		normalizeScalar(dst[:len(src)], src)
	}
	return nil
}

// EnsureCompliantBoolValues rewrites bools whose byte holds something other
// than 0 or 1, as can happen when bools are decoded from raw memory.
func EnsureCompliantBoolValues(dst, src []bool) error {
	if len(src) == 0 {
		return nil
	}
	if len(dst) < len(src) {
		return errs.InvalidArgument("ensure compliant bools: output length %d < input length %d", len(dst), len(src))
	}
	return EnsureCompliantBools(boolBytes(dst), boolBytes(src))
}

// boolBytes views a non-empty bool slice as its underlying bytes.
func boolBytes(b []bool) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), len(b))
}

func normalizeScalar[T hwy.UnsignedInts](dst, src []T) {
	for i, v := range src {
		if v != 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// normalizeLane is the portable 128-bit kernel.
func normalizeLane(dst, src []byte) {
	n := len(src)
	if n < narrowBytes {
		normalizeScalar(dst[:n], src)
		return
	}
	zero := lane.SplatU8x16(0)
	one := lane.SplatU8x16(1)
	i := 0
	for ; i+narrowBytes <= n; i += narrowBytes {
		lane.LoadU8x16(src[i:]).Equal(zero).AndNot(one).Store(dst[i:])
	}
	if i < n {
		i = n - narrowBytes
		lane.LoadU8x16(src[i:]).Equal(zero).AndNot(one).Store(dst[i:])
	}
}

// IndexOf returns the smallest index k with s[k] == v, or -1 if v is absent.
func IndexOf[T uint8 | uint16 | uint32](s []T, v T) int {
	i, _ := IndexOfTier(isa.Auto, s, v)
	return i
}

// IndexOfTier is IndexOf at an explicit tier. It fails only when the tier
// cannot run on the host.
func IndexOfTier[T uint8 | uint16 | uint32](tier isa.Tier, s []T, v T) (int, error) {
	tier, err := isa.Resolve(tier)
	if err != nil {
		return -1, err
	}
	switch tier {
	case isa.Wide:
		return indexOfWide(s, v), nil
	case isa.Narrow:
		return indexOfNarrow(s, v), nil
	}
	return indexOfScalar(s, v), nil
}

func indexOfScalar[T hwy.UnsignedInts](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// indexOfLane is the portable 128-bit kernel. A window is compared byte
// by byte against the needle laid out in memory order; an element matches
// when all of its bytes do.
func indexOfLane[T uint8 | uint16 | uint32](s []T, v T) int {
	size := int(unsafe.Sizeof(v))
	width := narrowBytes / size
	if len(s) < width {
		return indexOfScalar(s, v)
	}
	var fill [narrowBytes / 4]uint32
	needle := unsafe.Slice((*T)(unsafe.Pointer(&fill[0])), width)
	for k := range needle {
		needle[k] = v
	}
	vNeedle := lane.LoadU8x16(asBytes(needle))

	i := 0
	for ; i+width <= len(s); i += width {
		if k := firstLane(lane.LoadU8x16(asBytes(s[i:i+width])).Equal(vNeedle).Bits(), size); k >= 0 {
			return i + k
		}
	}
	if i < len(s) {
		i = len(s) - width
		if k := firstLane(lane.LoadU8x16(asBytes(s[i:])).Equal(vNeedle).Bits(), size); k >= 0 {
			return i + k
		}
	}
	return -1
}

// laneStarts has the first byte of every size-byte element set.
var laneStarts = [5]uint32{1: 0xffff, 2: 0x5555, 4: 0x1111}

// firstLane takes a byte equality mask and returns the lowest element of
// size bytes whose bytes all matched, or -1.
func firstLane(m uint32, size int) int {
	all := m
	for b := 1; b < size; b++ {
		all &= m >> b
	}
	all &= laneStarts[size]
	if all == 0 {
		return -1
	}
	return bits.TrailingZeros32(all) / size
}

func asBytes[T uint8 | uint16 | uint32](s []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(s[0])))
}
