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

//go:build goexperiment.simd

package nearseg

import (
	"math"
	"simd/archsimd"

	"github.com/akhenakh/nearseg/segment"
	"github.com/akhenakh/nearseg/soa"
)

// Hardware kernels. Every multiply and add is issued separately, never
// fused, so results match the scalar path bit for bit.

// runWide fills res for lane batches [lo, hi) using 256-bit AVX2 vectors.
func runWide(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	xs, ys, zs := ctx.Axis(soa.X), ctx.Axis(soa.Y), ctx.Axis(soa.Z)
	n := ctx.Len()
	var idx [8]int32
	var dist [8]float32
	for i := lo; i < hi; i++ {
		base := i * 8
		bi, bd := nearestFloat32x8(
			archsimd.LoadFloat32x8Slice(xs[base:]),
			archsimd.LoadFloat32x8Slice(ys[base:]),
			archsimd.LoadFloat32x8Slice(zs[base:]),
			segs,
		)
		bi.StoreSlice(idx[:])
		bd.StoreSlice(dist[:])
		for k := range min(8, n-base) {
			res.Indices[base+k] = int(idx[k])
			res.Distances[base+k] = dist[k]
		}
	}
}

func nearestFloat32x8(px, py, pz archsimd.Float32x8, segs []segment.Segment) (archsimd.Int32x8, archsimd.Float32x8) {
	bestD2 := archsimd.BroadcastFloat32x8(float32(math.Inf(1)))
	bestIdx := archsimd.BroadcastInt32x8(0)
	for j := range segs {
		s := &segs[j]
		a, b, d := s.A(), s.B(), s.Direction()
		ax, ay, az := archsimd.BroadcastFloat32x8(a.X), archsimd.BroadcastFloat32x8(a.Y), archsimd.BroadcastFloat32x8(a.Z)
		bx, by, bz := archsimd.BroadcastFloat32x8(b.X), archsimd.BroadcastFloat32x8(b.Y), archsimd.BroadcastFloat32x8(b.Z)
		dx, dy, dz := archsimd.BroadcastFloat32x8(d.X), archsimd.BroadcastFloat32x8(d.Y), archsimd.BroadcastFloat32x8(d.Z)

		rx, ry, rz := px.Sub(ax), py.Sub(ay), pz.Sub(az)
		t := rx.Mul(dx).Add(ry.Mul(dy)).Add(rz.Mul(dz)).Div(archsimd.BroadcastFloat32x8(s.DirectionDot()))
		ix, iy, iz := t.Mul(dx).Add(ax), t.Mul(dy).Add(ay), t.Mul(dz).Add(az)

		ea := norm2Float32x8(ax.Sub(ix), ay.Sub(iy), az.Sub(iz))
		eb := norm2Float32x8(ix.Sub(bx), iy.Sub(by), iz.Sub(bz))
		inside := ea.Max(eb).Sqrt().Less(archsimd.BroadcastFloat32x8(s.Length()))

		useA := norm2Float32x8(rx, ry, rz).LessEqual(norm2Float32x8(px.Sub(bx), py.Sub(by), pz.Sub(bz)))
		cx := ix.Merge(ax.Merge(bx, useA), inside)
		cy := iy.Merge(ay.Merge(by, useA), inside)
		cz := iz.Merge(az.Merge(bz, useA), inside)

		d2 := norm2Float32x8(px.Sub(cx), py.Sub(cy), pz.Sub(cz))
		closer := bestD2.Greater(d2)
		bestD2 = d2.Merge(bestD2, closer)
		bestIdx = archsimd.BroadcastInt32x8(int32(j)).Merge(bestIdx, closer)
	}
	return bestIdx, bestD2.Sqrt()
}

func norm2Float32x8(x, y, z archsimd.Float32x8) archsimd.Float32x8 {
	return x.Mul(x).Add(y.Mul(y)).Add(z.Mul(z))
}

// runNarrow fills res for lane batches [lo, hi) using 128-bit AVX vectors.
func runNarrow(ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	xs, ys, zs := ctx.Axis(soa.X), ctx.Axis(soa.Y), ctx.Axis(soa.Z)
	n := ctx.Len()
	var idx [4]int32
	var dist [4]float32
	for i := lo; i < hi; i++ {
		base := i * 4
		bi, bd := nearestFloat32x4(
			archsimd.LoadFloat32x4Slice(xs[base:]),
			archsimd.LoadFloat32x4Slice(ys[base:]),
			archsimd.LoadFloat32x4Slice(zs[base:]),
			segs,
		)
		bi.StoreSlice(idx[:])
		bd.StoreSlice(dist[:])
		for k := range min(4, n-base) {
			res.Indices[base+k] = int(idx[k])
			res.Distances[base+k] = dist[k]
		}
	}
}

func nearestFloat32x4(px, py, pz archsimd.Float32x4, segs []segment.Segment) (archsimd.Int32x4, archsimd.Float32x4) {
	bestD2 := archsimd.BroadcastFloat32x4(float32(math.Inf(1)))
	bestIdx := archsimd.BroadcastInt32x4(0)
	for j := range segs {
		s := &segs[j]
		a, b, d := s.A(), s.B(), s.Direction()
		ax, ay, az := archsimd.BroadcastFloat32x4(a.X), archsimd.BroadcastFloat32x4(a.Y), archsimd.BroadcastFloat32x4(a.Z)
		bx, by, bz := archsimd.BroadcastFloat32x4(b.X), archsimd.BroadcastFloat32x4(b.Y), archsimd.BroadcastFloat32x4(b.Z)
		dx, dy, dz := archsimd.BroadcastFloat32x4(d.X), archsimd.BroadcastFloat32x4(d.Y), archsimd.BroadcastFloat32x4(d.Z)

		rx, ry, rz := px.Sub(ax), py.Sub(ay), pz.Sub(az)
		t := rx.Mul(dx).Add(ry.Mul(dy)).Add(rz.Mul(dz)).Div(archsimd.BroadcastFloat32x4(s.DirectionDot()))
		ix, iy, iz := t.Mul(dx).Add(ax), t.Mul(dy).Add(ay), t.Mul(dz).Add(az)

		ea := norm2Float32x4(ax.Sub(ix), ay.Sub(iy), az.Sub(iz))
		eb := norm2Float32x4(ix.Sub(bx), iy.Sub(by), iz.Sub(bz))
		inside := ea.Max(eb).Sqrt().Less(archsimd.BroadcastFloat32x4(s.Length()))

		useA := norm2Float32x4(rx, ry, rz).LessEqual(norm2Float32x4(px.Sub(bx), py.Sub(by), pz.Sub(bz)))
		cx := ix.Merge(ax.Merge(bx, useA), inside)
		cy := iy.Merge(ay.Merge(by, useA), inside)
		cz := iz.Merge(az.Merge(bz, useA), inside)

		d2 := norm2Float32x4(px.Sub(cx), py.Sub(cy), pz.Sub(cz))
		closer := bestD2.Greater(d2)
		bestD2 = d2.Merge(bestD2, closer)
		bestIdx = archsimd.BroadcastInt32x4(int32(j)).Merge(bestIdx, closer)
	}
	return bestIdx, bestD2.Sqrt()
}

func norm2Float32x4(x, y, z archsimd.Float32x4) archsimd.Float32x4 {
	return x.Mul(x).Add(y.Mul(y)).Add(z.Mul(z))
}
