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

//go:build !(amd64 && goexperiment.simd)

package nearseg

import (
	"github.com/akhenakh/nearseg/segment"
	"github.com/akhenakh/nearseg/soa"
)

// Without hardware kernels the vector tiers run on package lane. They stay
// selectable for testing but isa.Best never picks them.

func runNarrow(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	runLane4(ctx, segs, res, lo, hi)
}

func runWide(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	runLane8(ctx, segs, res, lo, hi)
}
