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

// Package isa selects the instruction-set tier the search kernels run at.
//
// Host capabilities are probed once at package initialization and cached.
// A tier is one of a small closed set and callers dispatch on it with a
// switch; there is no per-call interface indirection. An explicitly
// requested tier that the host lacks is an error, never a silent
// downgrade.
package isa

import (
	"strings"

	"github.com/akhenakh/nearseg/errs"
)

// Tier is an instruction-set capability level.
type Tier uint8

const (
	// Auto resolves to the configured override, or to the best native tier.
	Auto Tier = iota
	// Scalar is plain Go, one point at a time. Always supported.
	Scalar
	// Narrow processes 4 float32 lanes at once (AVX, NEON).
	Narrow
	// Wide processes 8 float32 lanes at once (AVX2 with FMA).
	Wide
)

// Tiers lists the concrete tiers from lowest to highest.
var Tiers = []Tier{Scalar, Narrow, Wide}

func (t Tier) String() string {
	switch t {
	case Auto:
		return "auto"
	case Scalar:
		return "scalar"
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	}
	return "unknown"
}

// Lanes returns the number of float32 lanes the tier processes together,
// or 0 for Auto and unknown values.
func (t Tier) Lanes() int {
	switch t {
	case Scalar:
		return 1
	case Narrow:
		return 4
	case Wide:
		return 8
	}
	return 0
}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool { return t <= Wide }

// ParseTier parses a tier name, ignoring case and surrounding space. An
// empty string is Auto.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "scalar", "generic":
		return Scalar, nil
	case "narrow", "sse4", "neon":
		return Narrow, nil
	case "wide", "avx2":
		return Wide, nil
	}
	return Auto, errs.InvalidArgument("unknown isa tier %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	v, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errs.InvalidArgument("unknown isa tier %d", uint8(t))
	}
	return []byte(t.String()), nil
}
