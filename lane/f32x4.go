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

// F32x4 holds 4 float32 lanes.
type F32x4 [4]float32

// I32x4 holds 4 int32 lanes.
type I32x4 [4]int32

// M32x4 is a lane mask for 4 32-bit lanes. Every lane is either all ones
// (selected) or all zeros.
type M32x4 [4]uint32

// Splat4 broadcasts x into every lane.
func Splat4(x float32) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = x
	}
	return r
}

// SplatI4 broadcasts x into every lane.
func SplatI4(x int32) I32x4 {
	var r I32x4
	for i := range r {
		r[i] = x
	}
	return r
}

// Add returns v + o per lane.
func (v F32x4) Add(o F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns v - o per lane.
func (v F32x4) Sub(o F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns v * o per lane.
func (v F32x4) Mul(o F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = float32(v[i] * o[i])
	}
	return r
}

// Div returns v / o per lane.
func (v F32x4) Div(o F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = v[i] / o[i]
	}
	return r
}

// MulAdd returns v*m + a per lane. The product is rounded to float32 before
// the addition, so the result matches a separate multiply and add.
func (v F32x4) MulAdd(m, a F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = float32(v[i]*m[i]) + a[i]
	}
	return r
}

// Max returns the larger lane of v and o, or the lane of o when either is NaN.
func (v F32x4) Max(o F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = o[i]
		if v[i] > o[i] {
			r[i] = v[i]
		}
	}
	return r
}

// Sqrt returns the correctly rounded square root of every lane.
func (v F32x4) Sqrt() F32x4 {
	var r F32x4
	for i := range r {
		r[i] = float32(math.Sqrt(float64(v[i])))
	}
	return r
}

// Less returns the mask of lanes where v < o.
func (v F32x4) Less(o F32x4) M32x4 {
	var m M32x4
	for i := range m {
		m[i] = maskOf(v[i] < o[i])
	}
	return m
}

// LessEqual returns the mask of lanes where v <= o.
func (v F32x4) LessEqual(o F32x4) M32x4 {
	var m M32x4
	for i := range m {
		m[i] = maskOf(v[i] <= o[i])
	}
	return m
}

// Greater returns the mask of lanes where v > o.
func (v F32x4) Greater(o F32x4) M32x4 {
	var m M32x4
	for i := range m {
		m[i] = maskOf(v[i] > o[i])
	}
	return m
}

// Select4 blends yes and no: lanes set in m come from yes, the rest from no.
func Select4(m M32x4, yes, no F32x4) F32x4 {
	var r F32x4
	for i := range r {
		r[i] = math.Float32frombits(math.Float32bits(yes[i])&m[i] | math.Float32bits(no[i])&^m[i])
	}
	return r
}

// SelectI4 blends yes and no: lanes set in m come from yes, the rest from no.
func SelectI4(m M32x4, yes, no I32x4) I32x4 {
	var r I32x4
	for i := range r {
		r[i] = int32(uint32(yes[i])&m[i] | uint32(no[i])&^m[i])
	}
	return r
}

// Bits packs the top bit of every lane into an integer, lane 0 in bit 0.
func (m M32x4) Bits() uint32 {
	var b uint32
	for i := range m {
		b |= (m[i] >> 31) << i
	}
	return b
}

// Any reports whether any lane is set.
func (m M32x4) Any() bool { return m.Bits() != 0 }

// And returns the lanes set in both m and o.
func (m M32x4) And(o M32x4) M32x4 {
	var r M32x4
	for i := range r {
		r[i] = m[i] & o[i]
	}
	return r
}

// View4 presents a []float32 whose length is a multiple of 4 as a sequence
// of F32x4 registers. Registers returned by At alias the slice.
type View4 struct {
	s []float32
}

// NewView4 returns a view of s. The length of s must be a multiple of 4.
func NewView4(s []float32) (View4, error) {
	if len(s)%4 != 0 {
		return View4{}, unpadded(len(s), 4)
	}
	return View4{s: s}, nil
}

// Len returns the number of registers in the view.
func (v View4) Len() int { return len(v.s) / 4 }

// At returns the i-th register. It panics if i is out of range.
func (v View4) At(i int) *F32x4 {
	return (*F32x4)(v.s[i*4 : i*4+4])
}
