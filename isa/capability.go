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

package isa

import (
	"log/slog"
	"runtime"

	"github.com/akhenakh/nearseg/errs"
)

// Package-level state, written once during init and read-only afterwards.
var (
	// Host feature flags, set by the platform-specific init.
	hasNarrow bool
	hasWide   bool

	// native is true when the vector tiers run hardware kernels rather
	// than the portable lane emulation.
	native = nativeKernels

	// override is the tier named by NEARSEG_SIMD, Auto when unset.
	override    Tier
	overrideErr error
)

// initCapabilities runs after the platform probe has set the feature flags.
func initCapabilities() {
	cfg, err := LoadConfig()
	override, overrideErr = cfg.SIMD, err
	slog.Default().Debug("isa probe",
		"arch", runtime.GOARCH,
		"narrow", hasNarrow,
		"wide", hasWide,
		"native", native,
		"best", Best(),
		"override", override,
		"error", overrideErr,
	)
}

// Supported reports whether the host can run tier t. Auto is always
// supported.
func Supported(t Tier) bool {
	switch t {
	case Auto, Scalar:
		return true
	case Narrow:
		return hasNarrow
	case Wide:
		return hasWide
	}
	return false
}

// Native reports whether tier t runs hardware vector kernels on this host.
// Scalar is always native. A vector tier that is supported but not native
// still runs, on the portable lane emulation, when requested explicitly.
func Native(t Tier) bool {
	switch t {
	case Scalar:
		return true
	case Narrow, Wide:
		return native && Supported(t)
	}
	return false
}

// Best returns the highest tier the host runs natively. The lane emulation
// is slower than scalar code, so Best never picks it.
func Best() Tier {
	switch {
	case Native(Wide):
		return Wide
	case Native(Narrow):
		return Narrow
	}
	return Scalar
}

// Override returns the tier configured through NEARSEG_SIMD, or Auto.
func Override() Tier { return override }

// Resolve maps a requested tier to the concrete tier to run.
//
// Auto resolves to the configured override when there is one and to Best
// otherwise. A concrete tier resolves to itself if the host supports it and
// fails with errs.ErrPlatformUnsupported if not.
func Resolve(t Tier) (Tier, error) {
	if !t.Valid() {
		return Scalar, errs.InvalidArgument("unknown isa tier %d", uint8(t))
	}
	if t == Auto {
		if overrideErr != nil {
			return Scalar, overrideErr
		}
		if override == Auto {
			return Best(), nil
		}
		t = override
	}
	if !Supported(t) {
		return Scalar, errs.PlatformUnsupported("isa tier %v is not available on %s/%s", t, runtime.GOOS, runtime.GOARCH)
	}
	return t, nil
}
