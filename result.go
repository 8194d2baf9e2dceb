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

package nearseg

import (
	"github.com/viterin/vek/vek32"

	"github.com/akhenakh/nearseg/errs"
	"github.com/akhenakh/nearseg/isa"
)

// Result holds the outcome of a search, one slot per query point in input
// order. Indices[i] is the nearest segment of point i and Distances[i] the
// distance to it.
type Result struct {
	Indices   []int
	Distances []float32
	// Tier is the tier that produced the result.
	Tier isa.Tier
}

func newResult(n int, tier isa.Tier) Result {
	return Result{
		Indices:   make([]int, n),
		Distances: make([]float32, n),
		Tier:      tier,
	}
}

// Len returns the number of points in the result.
func (r Result) Len() int { return len(r.Indices) }

// Sum returns the sum of all distances.
func (r Result) Sum() float32 {
	return BaseSum(r.Distances)
}

// Closest returns the position of the point nearest to its segment, or -1
// for an empty result.
func (r Result) Closest() int {
	if r.Len() == 0 {
		return -1
	}
	return vek32.ArgMin(r.Distances)
}

// Farthest returns the position of the point farthest from its nearest
// segment, or -1 for an empty result.
func (r Result) Farthest() int {
	if r.Len() == 0 {
		return -1
	}
	return vek32.ArgMax(r.Distances)
}

// Assigned returns, for every segment, the positions of the points whose
// nearest segment it is. n is the number of segments searched; an index
// outside [0, n) fails with errs.ErrInvalidArgument.
func (r Result) Assigned(n int) ([][]int, error) {
	if n < 0 {
		return nil, errs.InvalidArgument("assigned: negative segment count %d", n)
	}
	out := make([][]int, n)
	for i, j := range r.Indices {
		if j < 0 || j >= n {
			return nil, errs.InvalidArgument("assigned: point %d has segment %d, out of range [0, %d)", i, j, n)
		}
		out[j] = append(out[j], i)
	}
	return out, nil
}
