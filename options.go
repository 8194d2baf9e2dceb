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
	"log/slog"
	"runtime"

	"github.com/akhenakh/nearseg/isa"
)

// Options controls how a search runs. A nil *Options means NewOptions().
type Options struct {
	// Tier selects the kernel tier. isa.Auto picks the best tier the host
	// supports, or the NEARSEG_SIMD override.
	Tier isa.Tier
	// Workers is the number of goroutines lane batches are split across.
	// Values below one use GOMAXPROCS.
	Workers int
	// Logger receives debug records for each search.
	Logger *slog.Logger
}

// NewOptions returns default options: automatic tier, one worker, no logging.
func NewOptions() *Options {
	return &Options{
		Tier:    isa.Auto,
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// normalize fills unset fields of o with defaults, without modifying o.
func (o *Options) normalize() Options {
	if o == nil {
		return *NewOptions()
	}
	out := *o
	if out.Workers < 1 {
		out.Workers = runtime.GOMAXPROCS(0)
	}
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}
	return out
}
