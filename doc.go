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

/*
Package nearseg finds, for every query point, the nearest of a set of 3D line
segments and the distance to it.

Points are held in a padded structure-of-arrays context (package soa) and
processed in lane batches of 4 or 8 points by branchless kernels, or one at a
time by the scalar reference kernel (package segment). The kernel tier is
chosen by package isa. Every tier returns the same indices and the same
distances for the same input.

Built with GOEXPERIMENT=simd on amd64, the Narrow and Wide tiers run on
simd/archsimd vectors (AVX and AVX2). Other builds run them on the portable
registers of package lane; they stay selectable but Auto resolves to Scalar,
which is faster than the emulation.

	segs := segment.FromPairs(pairs)
	res, err := nearseg.Search(points, segs, nil)
	if err != nil {
		return err
	}
	for i := range res.Len() {
		fmt.Println(points[i], res.Indices[i], res.Distances[i])
	}

A search is a pure function of its inputs. With Options.Workers above one,
lane batches are split into contiguous ranges and run concurrently; results
stay in input order.
*/
package nearseg
