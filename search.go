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

	"golang.org/x/sync/errgroup"

	"github.com/akhenakh/nearseg/errs"
	"github.com/akhenakh/nearseg/isa"
	"github.com/akhenakh/nearseg/r3"
	"github.com/akhenakh/nearseg/segment"
	"github.com/akhenakh/nearseg/soa"
)

// Search returns, for every point, the index of the nearest segment and the
// distance to it. opts may be nil.
//
// It fails with errs.ErrInvalidArgument when segs is empty and with
// errs.ErrPlatformUnsupported when the requested tier cannot run on the
// host. On failure no result is returned.
func Search(points []r3.Vector, segs []segment.Segment, opts *Options) (Result, error) {
	if err := validateSegments(segs); err != nil {
		o := opts.normalize()
		o.Logger.Debug("search rejected", "points", len(points), "segments", len(segs), "error", err)
		return Result{}, err
	}
	return SearchContext(soa.New(points), segs, opts)
}

// SearchPairs is Search over segments given by their endpoints.
func SearchPairs(points []r3.Vector, pairs [][2]r3.Vector, opts *Options) (Result, error) {
	return Search(points, segment.FromPairs(pairs), opts)
}

// SearchContext is Search over points already loaded into ctx. ctx is only
// read and may be shared by concurrent searches.
func SearchContext(ctx *soa.Context, segs []segment.Segment, opts *Options) (Result, error) {
	o := opts.normalize()
	res, err := search(ctx, segs, o)
	if err != nil {
		o.Logger.Debug("search rejected", "segments", len(segs), "tier", o.Tier, "error", err)
		return Result{}, err
	}
	o.Logger.Debug("search done",
		"tier", res.Tier,
		"points", res.Len(),
		"segments", len(segs),
		"workers", o.Workers,
	)
	return res, nil
}

func validateSegments(segs []segment.Segment) error {
	if len(segs) == 0 {
		return errs.InvalidArgument("search: no segments")
	}
	// Segment indices are carried in int32 lanes.
	if len(segs) > math.MaxInt32 {
		return errs.InvalidArgument("search: %d segments exceed the int32 index range", len(segs))
	}
	return nil
}

func search(ctx *soa.Context, segs []segment.Segment, o Options) (Result, error) {
	if ctx == nil {
		return Result{}, errs.InvalidArgument("search: nil point context")
	}
	if err := validateSegments(segs); err != nil {
		return Result{}, err
	}
	tier, err := isa.Resolve(o.Tier)
	if err != nil {
		return Result{}, err
	}
	res := newResult(ctx.Len(), tier)
	if err := run(tier, ctx, segs, &res, o.Workers); err != nil {
		return Result{}, err
	}
	return res, nil
}

// run fills res at the given tier, sharding lane batches over workers.
func run(tier isa.Tier, ctx *soa.Context, segs []segment.Segment, res *Result, workers int) error {
	width := tier.Lanes()
	if width == 0 {
		return errs.InvalidArgument("search: unresolved tier %v", tier)
	}
	// Batches entirely inside the padding are skipped.
	batches := (ctx.Len() + width - 1) / width
	if workers <= 1 || batches <= 1 {
		runRange(tier, ctx, segs, res, 0, batches)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	per := (batches + workers - 1) / workers
	for lo := 0; lo < batches; lo += per {
		hi := min(lo+per, batches)
		g.Go(func() error {
			runRange(tier, ctx, segs, res, lo, hi)
			return nil
		})
	}
	return g.Wait()
}

// runRange runs the kernel of tier over lane batches [lo, hi). Each batch
// writes only its own slots of res.
func runRange(tier isa.Tier, ctx *soa.Context, segs []segment.Segment, res *Result, lo, hi int) {
	switch tier {
	case isa.Wide:
		runWide(ctx, segs, res, lo, hi)
	case isa.Narrow:
		runNarrow(ctx, segs, res, lo, hi)
	default:
		runScalar(ctx, segs, res, lo, hi)
	}
}
