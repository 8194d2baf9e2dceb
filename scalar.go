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

	"github.com/akhenakh/nearseg/segment"
	"github.com/akhenakh/nearseg/soa"
)

// runScalar fills res for points [lo, hi) one at a time. Squared distances
// are collected first and rooted together at the end.
func runScalar(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	for i := lo; i < hi; i++ {
		res.Indices[i], res.Distances[i] = segment.NearestDistance2(ctx.Point(i), segs)
	}
	if lo < hi {
		vek32.Sqrt_Inplace(res.Distances[lo:hi])
	}
}
