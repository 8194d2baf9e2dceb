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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/nearseg/errs"
)

// fakeHost swaps the detected host state for the duration of a test.
func fakeHost(t *testing.T, narrow, wide bool, ov Tier, ovErr error) {
	t.Helper()
	n, w, o, e, v := hasNarrow, hasWide, override, overrideErr, native
	hasNarrow, hasWide, override, overrideErr, native = narrow, wide, ov, ovErr, true
	t.Cleanup(func() {
		hasNarrow, hasWide, override, overrideErr, native = n, w, o, e, v
	})
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier  Tier
		name  string
		lanes int
	}{
		{Auto, "auto", 0},
		{Scalar, "scalar", 1},
		{Narrow, "narrow", 4},
		{Wide, "wide", 8},
		{Tier(9), "unknown", 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.name, test.tier.String())
		assert.Equal(t, test.lanes, test.tier.Lanes(), "%v.Lanes()", test.tier)
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"", Auto},
		{"auto", Auto},
		{" Scalar ", Scalar},
		{"NARROW", Narrow},
		{"neon", Narrow},
		{"wide", Wide},
		{"avx2", Wide},
	}
	for _, test := range tests {
		got, err := ParseTier(test.in)
		require.NoError(t, err, "ParseTier(%q)", test.in)
		assert.Equal(t, test.want, got, "ParseTier(%q)", test.in)
	}

	_, err := ParseTier("avx512")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestTierText(t *testing.T) {
	for _, tier := range append([]Tier{Auto}, Tiers...) {
		b, err := tier.MarshalText()
		require.NoError(t, err)
		var got Tier
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, tier, got)
	}
	_, err := Tier(42).MarshalText()
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestResolve(t *testing.T) {
	fakeHost(t, true, false, Auto, nil)

	got, err := Resolve(Auto)
	require.NoError(t, err)
	assert.Equal(t, Narrow, got)

	got, err = Resolve(Scalar)
	require.NoError(t, err)
	assert.Equal(t, Scalar, got)

	_, err = Resolve(Wide)
	require.ErrorIs(t, err, errs.ErrPlatformUnsupported)

	_, err = Resolve(Tier(7))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestResolveScalarOnlyHost(t *testing.T) {
	fakeHost(t, false, false, Auto, nil)

	assert.Equal(t, Scalar, Best())
	for _, tier := range []Tier{Narrow, Wide} {
		assert.False(t, Supported(tier), "Supported(%v)", tier)
		_, err := Resolve(tier)
		assert.ErrorIs(t, err, errs.ErrPlatformUnsupported, "Resolve(%v)", tier)
	}
	got, err := Resolve(Auto)
	require.NoError(t, err)
	assert.Equal(t, Scalar, got)
}

func TestBestSkipsEmulatedTiers(t *testing.T) {
	fakeHost(t, true, true, Auto, nil)
	native = false

	assert.Equal(t, Scalar, Best())
	assert.True(t, Native(Scalar))
	for _, tier := range []Tier{Narrow, Wide} {
		assert.True(t, Supported(tier), "Supported(%v)", tier)
		assert.False(t, Native(tier), "Native(%v)", tier)
		got, err := Resolve(tier)
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}
	got, err := Resolve(Auto)
	require.NoError(t, err)
	assert.Equal(t, Scalar, got)

	native = true
	assert.Equal(t, Wide, Best())
	assert.True(t, Native(Wide))
	assert.False(t, Native(Auto))
}

func TestResolveOverride(t *testing.T) {
	fakeHost(t, true, true, Narrow, nil)
	got, err := Resolve(Auto)
	require.NoError(t, err)
	assert.Equal(t, Narrow, got)

	// An explicit request ignores the override.
	got, err = Resolve(Wide)
	require.NoError(t, err)
	assert.Equal(t, Wide, got)
}

func TestResolveUnsupportedOverride(t *testing.T) {
	fakeHost(t, true, false, Wide, nil)
	_, err := Resolve(Auto)
	require.ErrorIs(t, err, errs.ErrPlatformUnsupported)
}

func TestResolveBadOverride(t *testing.T) {
	bad := errs.InvalidArgument("NEARSEG_SIMD: bogus")
	fakeHost(t, true, true, Auto, bad)
	_, err := Resolve(Auto)
	require.True(t, errors.Is(err, errs.ErrInvalidArgument))

	// Explicit tiers do not consult the override.
	_, err = Resolve(Scalar)
	require.NoError(t, err)
}

func TestBestIsSupported(t *testing.T) {
	best := Best()
	assert.True(t, Supported(best))
	got, err := Resolve(best)
	require.NoError(t, err)
	assert.Equal(t, best, got)
	assert.True(t, Supported(Scalar))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("NEARSEG_SIMD", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Auto, cfg.SIMD)

	t.Setenv("NEARSEG_SIMD", "scalar")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Scalar, cfg.SIMD)

	t.Setenv("NEARSEG_SIMD", "Wide")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Wide, cfg.SIMD)

	t.Setenv("NEARSEG_SIMD", "sve9")
	_, err = LoadConfig()
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestFeatures(t *testing.T) {
	f := Features()
	assert.Equal(t, Best(), f.Best)
	assert.NotEmpty(t, f.String())
}
