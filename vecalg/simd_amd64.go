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

//go:build goexperiment.simd

package vecalg

import (
	"math/bits"
	"simd/archsimd"
)

func normalizeWide(dst, src []byte) {
	const lanes = 32
	n := len(src)
	if n < lanes {
		normalizeScalar(dst[:n], src)
		return
	}
	one := archsimd.BroadcastUint8x32(1)
	i := 0
	for ; i+lanes <= n; i += lanes {
		archsimd.LoadUint8x32Slice(src[i:]).Min(one).StoreSlice(dst[i:])
	}
	if i < n {
		i = n - lanes
		archsimd.LoadUint8x32Slice(src[i:]).Min(one).StoreSlice(dst[i:])
	}
}

func normalizeNarrow(dst, src []byte) {
	const lanes = 16
	n := len(src)
	if n < lanes {
		normalizeScalar(dst[:n], src)
		return
	}
	one := archsimd.BroadcastUint8x16(1)
	i := 0
	for ; i+lanes <= n; i += lanes {
		archsimd.LoadUint8x16Slice(src[i:]).Min(one).StoreSlice(dst[i:])
	}
	if i < n {
		i = n - lanes
		archsimd.LoadUint8x16Slice(src[i:]).Min(one).StoreSlice(dst[i:])
	}
}

// scanWindows calls first at every window start, then on a final window
// backed up to end at n. first returns the absolute index of the lowest
// match in its window, or -1.
func scanWindows(n, lanes int, first func(i int) int) int {
	i := 0
	for ; i+lanes <= n; i += lanes {
		if k := first(i); k >= 0 {
			return k
		}
	}
	if i < n {
		return first(n - lanes)
	}
	return -1
}

// lowestLane returns i plus the lowest set bit of m divided by size, or -1
// when m is zero.
func lowestLane(i int, m uint64, size int) int {
	if m == 0 {
		return -1
	}
	return i + bits.TrailingZeros64(m)/size
}

func indexOfWide[T uint8 | uint16 | uint32](s []T, v T) int {
	switch s := any(s).(type) {
	case []uint8:
		return indexOfUint8x32(s, any(v).(uint8))
	case []uint16:
		return indexOfUint16x16(s, any(v).(uint16))
	case []uint32:
		return indexOfUint32x8(s, any(v).(uint32))
	}
	return indexOfScalar(s, v)
}

func indexOfNarrow[T uint8 | uint16 | uint32](s []T, v T) int {
	switch s := any(s).(type) {
	case []uint8:
		return indexOfUint8x16(s, any(v).(uint8))
	case []uint16:
		return indexOfUint16x8(s, any(v).(uint16))
	case []uint32:
		return indexOfUint32x4(s, any(v).(uint32))
	}
	return indexOfScalar(s, v)
}

func indexOfUint8x32(s []uint8, v uint8) int {
	if len(s) < 32 {
		return indexOfScalar(s, v)
	}
	vNeedle := archsimd.BroadcastUint8x32(v)
	return scanWindows(len(s), 32, func(i int) int {
		return lowestLane(i, uint64(archsimd.LoadUint8x32Slice(s[i:]).Equal(vNeedle).ToBits()), 1)
	})
}

// AVX2 has no 16-bit movemask, so 16-bit equality masks are widened to
// byte lanes and every element sets two bits.
func indexOfUint16x16(s []uint16, v uint16) int {
	if len(s) < 16 {
		return indexOfScalar(s, v)
	}
	vNeedle := archsimd.BroadcastUint16x16(v)
	ones, zeros := archsimd.BroadcastUint16x16(0xffff), archsimd.BroadcastUint16x16(0)
	set := archsimd.BroadcastUint8x32(0xff)
	return scanWindows(len(s), 16, func(i int) int {
		eq := archsimd.LoadUint16x16Slice(s[i:]).Equal(vNeedle)
		return lowestLane(i, uint64(ones.Merge(zeros, eq).AsUint8x32().Equal(set).ToBits()), 2)
	})
}

func indexOfUint32x8(s []uint32, v uint32) int {
	if len(s) < 8 {
		return indexOfScalar(s, v)
	}
	vNeedle := archsimd.BroadcastUint32x8(v)
	return scanWindows(len(s), 8, func(i int) int {
		return lowestLane(i, uint64(archsimd.LoadUint32x8Slice(s[i:]).Equal(vNeedle).ToBits()), 1)
	})
}

func indexOfUint8x16(s []uint8, v uint8) int {
	if len(s) < 16 {
		return indexOfScalar(s, v)
	}
	vNeedle := archsimd.BroadcastUint8x16(v)
	return scanWindows(len(s), 16, func(i int) int {
		return lowestLane(i, uint64(archsimd.LoadUint8x16Slice(s[i:]).Equal(vNeedle).ToBits()), 1)
	})
}

func indexOfUint16x8(s []uint16, v uint16) int {
	if len(s) < 8 {
		return indexOfScalar(s, v)
	}
	vNeedle := archsimd.BroadcastUint16x8(v)
	ones, zeros := archsimd.BroadcastUint16x8(0xffff), archsimd.BroadcastUint16x8(0)
	set := archsimd.BroadcastUint8x16(0xff)
	return scanWindows(len(s), 8, func(i int) int {
		eq := archsimd.LoadUint16x8Slice(s[i:]).Equal(vNeedle)
		return lowestLane(i, uint64(ones.Merge(zeros, eq).AsUint8x16().Equal(set).ToBits()), 2)
	})
}

func indexOfUint32x4(s []uint32, v uint32) int {
	if len(s) < 4 {
		return indexOfScalar(s, v)
	}
	vNeedle := archsimd.BroadcastUint32x4(v)
	return scanWindows(len(s), 4, func(i int) int {
		return lowestLane(i, uint64(archsimd.LoadUint32x4Slice(s[i:]).Equal(vNeedle).ToBits()), 1)
	})
}
