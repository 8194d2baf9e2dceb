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

package lane

// U8x16 holds 16 byte lanes, one 128-bit register.
type U8x16 [16]uint8

// M8x16 is a lane mask for 16 byte lanes, each 0xff or 0x00.
type M8x16 [16]uint8

// SplatU8x16 broadcasts x into every lane.
func SplatU8x16(x uint8) U8x16 {
	var r U8x16
	for i := range r {
		r[i] = x
	}
	return r
}

// LoadU8x16 loads the first 16 bytes of s. It panics if s is shorter.
func LoadU8x16(s []uint8) U8x16 {
	return U8x16(s[:16])
}

// Store writes the register to the first 16 bytes of dst.
func (v U8x16) Store(dst []uint8) {
	copy(dst[:16], v[:])
}

// Equal returns the mask of lanes where v == o.
func (v U8x16) Equal(o U8x16) M8x16 {
	var m M8x16
	for i := range m {
		m[i] = byteMaskOf(v[i] == o[i])
	}
	return m
}

// AndNot returns ^m & v per lane.
func (m M8x16) AndNot(v U8x16) U8x16 {
	var r U8x16
	for i := range r {
		r[i] = ^m[i] & v[i]
	}
	return r
}

// Bits packs the top bit of every lane into an integer, lane 0 in bit 0.
func (m M8x16) Bits() uint32 {
	var b uint32
	for i := range m {
		b |= uint32(m[i]>>7) << i
	}
	return b
}
