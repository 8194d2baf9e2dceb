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

import "math"

// F32x8 holds 8 float32 lanes.
type F32x8 [8]float32

// I32x8 holds 8 int32 lanes.
type I32x8 [8]int32

// M32x8 is a lane mask for 8 32-bit lanes. Every lane is either all ones
// (selected) or all zeros.
type M32x8 [8]uint32

// Splat8 broadcasts x into every lane.
func Splat8(x float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = x
	}
	return r
}

// SplatI8 broadcasts x into every lane.
func SplatI8(x int32) I32x8 {
	var r I32x8
	for i := range r {
		r[i] = x
	}
	return r
}

// Add returns v + o per lane.
func (v F32x8) Add(o F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns v - o per lane.
func (v F32x8) Sub(o F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns v * o per lane.
func (v F32x8) Mul(o F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(v[i] * o[i])
	}
	return r
}

// Div returns v / o per lane.
func (v F32x8) Div(o F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = v[i] / o[i]
	}
	return r
}

// MulAdd returns v*m + a per lane. The product is rounded to float32 before
// the addition, so the result matches a separate multiply and add.
func (v F32x8) MulAdd(m, a F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(v[i]*m[i]) + a[i]
	}
	return r
}

// Max returns the larger lane of v and o, or the lane of o when either is NaN.
func (v F32x8) Max(o F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = o[i]
		if v[i] > o[i] {
			r[i] = v[i]
		}
	}
	return r
}

// Sqrt returns the correctly rounded square root of every lane.
func (v F32x8) Sqrt() F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(math.Sqrt(float64(v[i])))
	}
	return r
}

// Less returns the mask of lanes where v < o.
func (v F32x8) Less(o F32x8) M32x8 {
	var m M32x8
	for i := range m {
		m[i] = maskOf(v[i] < o[i])
	}
	return m
}

// LessEqual returns the mask of lanes where v <= o.
func (v F32x8) LessEqual(o F32x8) M32x8 {
	var m M32x8
	for i := range m {
		m[i] = maskOf(v[i] <= o[i])
	}
	return m
}

// Greater returns the mask of lanes where v > o.
func (v F32x8) Greater(o F32x8) M32x8 {
	var m M32x8
	for i := range m {
		m[i] = maskOf(v[i] > o[i])
	}
	return m
}

// Select8 blends yes and no: lanes set in m come from yes, the rest from no.
func Select8(m M32x8, yes, no F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = math.Float32frombits(math.Float32bits(yes[i])&m[i] | math.Float32bits(no[i])&^m[i])
	}
	return r
}

// SelectI8 blends yes and no: lanes set in m come from yes, the rest from no.
func SelectI8(m M32x8, yes, no I32x8) I32x8 {
	var r I32x8
	for i := range r {
		r[i] = int32(uint32(yes[i])&m[i] | uint32(no[i])&^m[i])
	}
	return r
}

// Bits packs the top bit of every lane into an integer, lane 0 in bit 0.
func (m M32x8) Bits() uint32 {
	var b uint32
	for i := range m {
		b |= (m[i] >> 31) << i
	}
	return b
}

// Any reports whether any lane is set.
func (m M32x8) Any() bool { return m.Bits() != 0 }

// And returns the lanes set in both m and o.
func (m M32x8) And(o M32x8) M32x8 {
	var r M32x8
	for i := range r {
		r[i] = m[i] & o[i]
	}
	return r
}

// View8 presents a []float32 whose length is a multiple of 8 as a sequence
// of F32x8 registers. Registers returned by At alias the slice.
type View8 struct {
	s []float32
}

// NewView8 returns a view of s. The length of s must be a multiple of 8.
func NewView8(s []float32) (View8, error) {
	if len(s)%8 != 0 {
		return View8{}, unpadded(len(s), 8)
	}
	return View8{s: s}, nil
}

// Len returns the number of registers in the view.
func (v View8) Len() int { return len(v.s) / 8 }

// At returns the i-th register. It panics if i is out of range.
func (v View8) At(i int) *F32x8 {
	return (*F32x8)(v.s[i*8 : i*8+8])
}
