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

// best4 is the running minimum of a 4-lane batch.
type best4 struct {
	d2  lane.F32x4
	idx lane.I32x4
}

// nearestBatch4 returns, for the 4 points of lane batch i, the index of the
// closest segment and the distance to it.
//
// Every decision is a lane mask and a blend. The same mask updates both the
// distance and the index, so they always describe the same segment. Segments
// are compared by squared distance and the root is taken once at the end.
// Lanes past ctx.Len() hold the padding point and must be discarded.
func nearestBatch4(ctx *soa.Context, i int, segs []segment.Segment) (lane.I32x4, lane.F32x4) {
	px := *ctx.Lane4(soa.X, i)
	py := *ctx.Lane4(soa.Y, i)
	pz := *ctx.Lane4(soa.Z, i)

	best := best4{d2: lane.Splat4(float32(math.Inf(1)))}
	for j := range segs {
		s := &segs[j]
		a, b, d := s.A(), s.B(), s.Direction()
		ax, ay, az := lane.Splat4(a.X), lane.Splat4(a.Y), lane.Splat4(a.Z)
		bx, by, bz := lane.Splat4(b.X), lane.Splat4(b.Y), lane.Splat4(b.Z)
		dx, dy, dz := lane.Splat4(d.X), lane.Splat4(d.Y), lane.Splat4(d.Z)

		// Projection onto the line: t = dot(direction, p-A) / |direction|².
		rx, ry, rz := px.Sub(ax), py.Sub(ay), pz.Sub(az)
		t := ry.MulAdd(dy, rx.Mul(dx))
		t = rz.MulAdd(dz, t).Div(lane.Splat4(s.DirectionDot()))
		ix, iy, iz := t.MulAdd(dx, ax), t.MulAdd(dy, ay), t.MulAdd(dz, az)

		// Contained when neither endpoint is farther from I than the length.
		eax, eay, eaz := ax.Sub(ix), ay.Sub(iy), az.Sub(iz)
		ebx, eby, ebz := ix.Sub(bx), iy.Sub(by), iz.Sub(bz)
		inside := norm2x4(eax, eay, eaz).Max(norm2x4(ebx, eby, ebz)).Sqrt().Less(lane.Splat4(s.Length()))

		// Otherwise the nearer endpoint, A on ties.
		useA := norm2x4(rx, ry, rz).LessEqual(norm2x4(px.Sub(bx), py.Sub(by), pz.Sub(bz)))
		cx := lane.Select4(inside, ix, lane.Select4(useA, ax, bx))
		cy := lane.Select4(inside, iy, lane.Select4(useA, ay, by))
		cz := lane.Select4(inside, iz, lane.Select4(useA, az, bz))

		d2 := norm2x4(px.Sub(cx), py.Sub(cy), pz.Sub(cz))
		closer := best.d2.Greater(d2)
		best.d2 = lane.Select4(closer, d2, best.d2)
		best.idx = lane.SelectI4(closer, lane.SplatI4(int32(j)), best.idx)
	}
	return best.idx, best.d2.Sqrt()
}

// norm2x4 returns x² + y² + z² per lane, summed left to right.
func norm2x4(x, y, z lane.F32x4) lane.F32x4 {
	return z.MulAdd(z, y.MulAdd(y, x.Mul(x)))
}

// runLane4 fills res for lane batches [lo, hi) with the emulated kernel.
func runLane4(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	n := ctx.Len()
	for i := lo; i < hi; i++ {
		idx, dist := nearestBatch4(ctx, i, segs)
		base := i * 4
		for k := range min(4, n-base) {
			res.Indices[base+k] = int(idx[k])
			res.Distances[base+k] = dist[k]
		}
	}
}
