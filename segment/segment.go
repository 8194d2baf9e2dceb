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

// Package segment implements precomputed line segments in ℝ³ and the scalar
// reference kernel for closest-point and nearest-segment queries.
//
// The scalar kernel defines the numeric semantics that every lane-parallel
// kernel in this module reproduces: the same operations, in the same order,
// with every product rounded to float32 before it is accumulated.
package segment

import (
	"fmt"

	"github.com/akhenakh/nearseg/r3"
)

// Segment is a line segment between two endpoints together with the values
// derived from them. The derived fields are computed once by New and never
// change; queries read them instead of recomputing them per point.
type Segment struct {
	a, b         r3.Vector
	direction    r3.Vector // b - a
	directionDot float32   // direction · direction
	length       float32   // sqrt(directionDot)
}

// New returns the segment from a to b with its derived fields precomputed.
func New(a, b r3.Vector) Segment {
	d := b.Sub(a)
	dd := d.Norm2()
	return Segment{
		a:            a,
		b:            b,
		direction:    d,
		directionDot: dd,
		length:       r3.Sqrt32(dd),
	}
}

// FromPairs builds one segment per endpoint pair, preserving order.
func FromPairs(pairs [][2]r3.Vector) []Segment {
	segs := make([]Segment, len(pairs))
	for i, p := range pairs {
		segs[i] = New(p[0], p[1])
	}
	return segs
}

// A returns the first endpoint.
func (s Segment) A() r3.Vector { return s.a }

// B returns the second endpoint.
func (s Segment) B() r3.Vector { return s.b }

// Direction returns B - A.
func (s Segment) Direction() r3.Vector { return s.direction }

// DirectionDot returns the squared length of Direction.
func (s Segment) DirectionDot() float32 { return s.directionDot }

// Length returns the distance between the endpoints.
func (s Segment) Length() float32 { return s.length }

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool { return s.directionDot == 0 }

func (s Segment) String() string { return fmt.Sprintf("[%v, %v]", s.a, s.b) }
