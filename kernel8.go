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
	"math"

	"github.com/akhenakh/nearseg/lane"
	"github.com/akhenakh/nearseg/segment"
	"github.com/akhenakh/nearseg/soa"
)

// best8 is the running minimum of an 8-lane batch.
type best8 struct {
	d2  lane.F32x8
	idx lane.I32x8
}

// nearestBatch8 is nearestBatch4 over 8 lanes.
func nearestBatch8(ctx *soa.Context, i int, segs []segment.Segment) (lane.I32x8, lane.F32x8) {
	px := *ctx.Lane8(soa.X, i)
	py := *ctx.Lane8(soa.Y, i)
	pz := *ctx.Lane8(soa.Z, i)

	best := best8{d2: lane.Splat8(float32(math.Inf(1)))}
	for j := range segs {
		s := &segs[j]
		a, b, d := s.A(), s.B(), s.Direction()
		ax, ay, az := lane.Splat8(a.X), lane.Splat8(a.Y), lane.Splat8(a.Z)
		bx, by, bz := lane.Splat8(b.X), lane.Splat8(b.Y), lane.Splat8(b.Z)
		dx, dy, dz := lane.Splat8(d.X), lane.Splat8(d.Y), lane.Splat8(d.Z)

		// Projection onto the line: t = dot(direction, p-A) / |direction|².
		rx, ry, rz := px.Sub(ax), py.Sub(ay), pz.Sub(az)
		t := ry.MulAdd(dy, rx.Mul(dx))
		t = rz.MulAdd(dz, t).Div(lane.Splat8(s.DirectionDot()))
		ix, iy, iz := t.MulAdd(dx, ax), t.MulAdd(dy, ay), t.MulAdd(dz, az)

		// Contained when neither endpoint is farther from I than the length.
		eax, eay, eaz := ax.Sub(ix), ay.Sub(iy), az.Sub(iz)
		ebx, eby, ebz := ix.Sub(bx), iy.Sub(by), iz.Sub(bz)
		inside := norm2x8(eax, eay, eaz).Max(norm2x8(ebx, eby, ebz)).Sqrt().Less(lane.Splat8(s.Length()))

		// Otherwise the nearer endpoint, A on ties.
		useA := norm2x8(rx, ry, rz).LessEqual(norm2x8(px.Sub(bx), py.Sub(by), pz.Sub(bz)))
		cx := lane.Select8(inside, ix, lane.Select8(useA, ax, bx))
		cy := lane.Select8(inside, iy, lane.Select8(useA, ay, by))
		cz := lane.Select8(inside, iz, lane.Select8(useA, az, bz))

		d2 := norm2x8(px.Sub(cx), py.Sub(cy), pz.Sub(cz))
		closer := best.d2.Greater(d2)
		best.d2 = lane.Select8(closer, d2, best.d2)
		best.idx = lane.SelectI8(closer, lane.SplatI8(int32(j)), best.idx)
	}
	return best.idx, best.d2.Sqrt()
}

func norm2x8(x, y, z lane.F32x8) lane.F32x8 {
	return z.MulAdd(z, y.MulAdd(y, x.Mul(x)))
}

// runLane8 fills res for lane batches [lo, hi) with the emulated kernel.
func runLane8(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	n := ctx.Len()
	for i := lo; i < hi; i++ {
		idx, dist := nearestBatch8(ctx, i, segs)
		base := i * 8
		for k := range min(8, n-base) {
			res.Indices[base+k] = int(idx[k])
			res.Distances[base+k] = dist[k]
		}
	}
}
