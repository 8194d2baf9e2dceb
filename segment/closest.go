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

package segment

import (
	"math"

	"github.com/akhenakh/nearseg/errs"
	"github.com/akhenakh/nearseg/r3"
)

// ClosestPoint returns the point of s closest to p.
//
// p is projected onto the line through s. The projection is kept when neither
// endpoint is farther from it than the segment is long; otherwise the endpoint
// nearer to p wins, with ties going to A. Near the endpoints this containment
// test is looser than clamping the projection parameter to [0, 1]. A
// projection landing exactly on an endpoint fails the strict comparison and
// resolves to that same endpoint.
//
// A degenerate segment yields a NaN projection, which is never contained, so
// the result is A.
func ClosestPoint(p r3.Vector, s Segment) r3.Vector {
	t := s.direction.Dot(p.Sub(s.a)) / s.directionDot
	i := s.a.Add(s.direction.Mul(t))
	if contains(s, i) {
		return i
	}
	if p.Distance2(s.a) <= p.Distance2(s.b) {
		return s.a
	}
	return s.b
}

// contains reports whether the projected point i lies on s.
func contains(s Segment, i r3.Vector) bool {
	return r3.Sqrt32(maxf(s.a.Sub(i).Norm2(), i.Sub(s.b).Norm2())) < s.length
}

// maxf returns the larger of a and b, or b when either is NaN. This matches
// the lane Max operation.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Distance2 returns the squared distance from p to the closest point of s.
func Distance2(p r3.Vector, s Segment) float32 {
	return p.Distance2(ClosestPoint(p, s))
}

// Distance returns the distance from p to the closest point of s.
func Distance(p r3.Vector, s Segment) float32 {
	return r3.Sqrt32(Distance2(p, s))
}

// Nearest returns the index of the segment closest to p and the distance to
// it. Earlier segments win ties. An empty segs is an invalid argument.
func Nearest(p r3.Vector, segs []Segment) (int, float32, error) {
	if len(segs) == 0 {
		return 0, 0, errs.InvalidArgument("nearest segment of %v: no segments", p)
	}
	idx, d2 := NearestDistance2(p, segs)
	return idx, r3.Sqrt32(d2), nil
}

// NearestDistance2 is Nearest without validation, returning the squared
// distance. With no segments it returns (0, +Inf).
func NearestDistance2(p r3.Vector, segs []Segment) (int, float32) {
	best := float32(math.Inf(1))
	idx := 0
	for j := range segs {
		if d := Distance2(p, segs[j]); d < best {
			best, idx = d, j
		}
	}
	return idx, best
}

// ClosestPoint64 is ClosestPoint in double precision for the segment from a
// to b. It applies the same containment rule and serves as a precision
// reference for the float32 kernels.
func ClosestPoint64(p, a, b r3.Vector64) r3.Vector64 {
	d := b.Sub(a)
	length := d.Norm()
	t := d.Dot(p.Sub(a)) / d.Norm2()
	i := a.Add(d.Mul(t))
	if math.Sqrt(math.Max(a.Sub(i).Norm2(), i.Sub(b).Norm2())) < length {
		return i
	}
	if p.Sub(a).Norm2() <= p.Sub(b).Norm2() {
		return a
	}
	return b
}
