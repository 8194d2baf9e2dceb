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

package vecalg

import (
	"errors"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/akhenakh/nearseg/errs"
	"github.com/akhenakh/nearseg/isa"
)

// supportedTiers returns the concrete tiers the host can run.
func supportedTiers() []isa.Tier {
	var tiers []isa.Tier
	for _, t := range isa.Tiers {
		if isa.Supported(t) {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

func wantBools(src []byte) []byte {
	want := make([]byte, len(src))
	for i, b := range src {
		if b != 0 {
			want[i] = 1
		}
	}
	return want
}

func TestEnsureCompliantBools(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 31)
	for i := range random {
		if rng.Intn(3) > 0 {
			random[i] = byte(rng.Intn(256))
		}
	}
	long := make([]byte, 100)
	for i := range long {
		long[i] = byte(i * 7 % 5)
	}
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{"counting", []byte{0, 1, 2, 3, 4, 5}, []byte{0, 1, 1, 1, 1, 1}},
		{"mixed", []byte{2, 4, 1, 0, 8, 0, 0, 1}, []byte{1, 1, 1, 0, 1, 0, 0, 1}},
		{"random 31", random, wantBools(random)},
		{"one window", []byte{0, 255, 0, 128, 0, 64, 0, 32, 0, 16, 0, 8, 0, 4, 0, 2}, wantBools([]byte{0, 255, 0, 128, 0, 64, 0, 32, 0, 16, 0, 8, 0, 4, 0, 2})},
		{"long", long, wantBools(long)},
	}
	for _, tier := range supportedTiers() {
		for _, test := range tests {
			dst := make([]byte, len(test.src))
			if err := EnsureCompliantBoolsTier(tier, dst, test.src); err != nil {
				t.Fatalf("%v %s: unexpected error %v", tier, test.name, err)
			}
			if diff := cmp.Diff(test.want, dst); diff != "" {
				t.Errorf("%v %s: EnsureCompliantBools mismatch (-want +got):\n%s", tier, test.name, diff)
			}
		}
	}
}

func TestEnsureCompliantBoolsLengths(t *testing.T) {
	for _, tier := range supportedTiers() {
		for n := 1; n <= 70; n++ {
			src := make([]byte, n)
			for i := range src {
				src[i] = byte((i * 37) % 3)
			}
			dst := make([]byte, n+3)
			for i := range dst {
				dst[i] = 9
			}
			if err := EnsureCompliantBoolsTier(tier, dst, src); err != nil {
				t.Fatalf("%v n=%d: unexpected error %v", tier, n, err)
			}
			if diff := cmp.Diff(wantBools(src), dst[:n]); diff != "" {
				t.Errorf("%v n=%d: mismatch (-want +got):\n%s", tier, n, diff)
			}
			for i := n; i < len(dst); i++ {
				if dst[i] != 9 {
					t.Errorf("%v n=%d: dst[%d] = %d, written past the input", tier, n, i, dst[i])
				}
			}
		}
	}
}

func TestEnsureCompliantBoolsInPlaceIdempotent(t *testing.T) {
	for _, tier := range supportedTiers() {
		buf := []byte{0, 3, 0, 0, 7, 1, 200, 0, 0, 0, 5, 0, 0, 1, 1, 0, 9, 9, 0, 4, 0}
		want := wantBools(buf)
		if err := EnsureCompliantBoolsTier(tier, buf, buf); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, buf); diff != "" {
			t.Errorf("%v in place: mismatch (-want +got):\n%s", tier, diff)
		}
		if err := EnsureCompliantBoolsTier(tier, buf, buf); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, buf); diff != "" {
			t.Errorf("%v second pass changed the output (-want +got):\n%s", tier, diff)
		}
	}
}

func TestEnsureCompliantBoolsErrors(t *testing.T) {
	if err := EnsureCompliantBools(nil, nil); err != nil {
		t.Errorf("EnsureCompliantBools(nil, nil) = %v, want nil", err)
	}
	if err := EnsureCompliantBools(nil, []byte{}); err != nil {
		t.Errorf("EnsureCompliantBools on empty input = %v, want nil", err)
	}
	err := EnsureCompliantBools(make([]byte, 3), make([]byte, 4))
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("EnsureCompliantBools with short output = %v, want %v", err, errs.ErrInvalidArgument)
	}
	for _, tier := range isa.Tiers {
		if isa.Supported(tier) {
			continue
		}
		err := EnsureCompliantBoolsTier(tier, make([]byte, 4), make([]byte, 4))
		if !errors.Is(err, errs.ErrPlatformUnsupported) {
			t.Errorf("EnsureCompliantBoolsTier(%v) = %v, want %v", tier, err, errs.ErrPlatformUnsupported)
		}
	}
}

func TestEnsureCompliantBoolValues(t *testing.T) {
	raw := []byte{0, 1, 2, 0, 255, 1, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 17}
	src := unsafe.Slice((*bool)(unsafe.Pointer(&raw[0])), len(raw))
	dst := make([]bool, len(src))
	if err := EnsureCompliantBoolValues(dst, src); err != nil {
		t.Fatal(err)
	}
	got := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst))
	if diff := cmp.Diff(wantBools(raw), got); diff != "" {
		t.Errorf("EnsureCompliantBoolValues mismatch (-want +got):\n%s", diff)
	}
	for i, b := range dst {
		if b != (raw[i] != 0) {
			t.Errorf("dst[%d] = %v, want %v", i, b, raw[i] != 0)
		}
	}
	if err := EnsureCompliantBoolValues(nil, nil); err != nil {
		t.Errorf("EnsureCompliantBoolValues(nil, nil) = %v, want nil", err)
	}
	if err := EnsureCompliantBoolValues(make([]bool, 1), make([]bool, 2)); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("EnsureCompliantBoolValues with short output = %v, want %v", err, errs.ErrInvalidArgument)
	}
}

func iota8(n int) []uint8 {
	s := make([]uint8, n)
	for i := range s {
		s[i] = uint8(i)
	}
	return s
}

func TestIndexOfUint8(t *testing.T) {
	for _, tier := range supportedTiers() {
		for _, n := range []int{1, 5, 8, 15, 16, 17, 31, 33, 64, 100, 255} {
			s := iota8(n)
			for v := 0; v < n; v++ {
				got, err := IndexOfTier(tier, s, uint8(v))
				if err != nil {
					t.Fatal(err)
				}
				if got != v {
					t.Errorf("%v IndexOf(iota(%d), %d) = %d, want %d", tier, n, v, got, v)
				}
			}
			if got, _ := IndexOfTier(tier, s, uint8(255)); got != -1 {
				t.Errorf("%v IndexOf(iota(%d), 255) = %d, want -1", tier, n, got)
			}
		}
	}
}

func TestIndexOfWider(t *testing.T) {
	for _, tier := range supportedTiers() {
		for _, n := range []int{1, 3, 4, 7, 8, 9, 16, 21, 64, 255} {
			s16 := make([]uint16, n)
			s32 := make([]uint32, n)
			for i := range n {
				s16[i] = uint16(i * 300)
				s32[i] = uint32(i) * 70000
			}
			for i := range n {
				if got, _ := IndexOfTier(tier, s16, uint16(i*300)); got != i {
					t.Errorf("%v IndexOf(uint16 len %d, %d) = %d, want %d", tier, n, i*300, got, i)
				}
				if got, _ := IndexOfTier(tier, s32, uint32(i)*70000); got != i {
					t.Errorf("%v IndexOf(uint32 len %d, %d) = %d, want %d", tier, n, i*70000, got, i)
				}
			}
			if got, _ := IndexOfTier(tier, s16, uint16(1)); got != -1 {
				t.Errorf("%v IndexOf(uint16 len %d, 1) = %d, want -1", tier, n, got)
			}
			if got, _ := IndexOfTier(tier, s32, uint32(1)); got != -1 {
				t.Errorf("%v IndexOf(uint32 len %d, 1) = %d, want -1", tier, n, got)
			}
		}
	}
}

func TestIndexOfFirstMatch(t *testing.T) {
	s := make([]uint8, 50)
	s[23], s[24], s[40], s[49] = 7, 7, 7, 7
	for _, tier := range supportedTiers() {
		if got, _ := IndexOfTier(tier, s, 7); got != 23 {
			t.Errorf("%v IndexOf = %d, want 23", tier, got)
		}
		if got, _ := IndexOfTier(tier, s[25:], 7); got != 15 {
			t.Errorf("%v IndexOf(tail) = %d, want 15", tier, got)
		}
		if got, _ := IndexOfTier(tier, s[41:], 7); got != 8 {
			t.Errorf("%v IndexOf(backed-up window) = %d, want 8", tier, got)
		}
	}
}

func TestIndexOfEmpty(t *testing.T) {
	if got := IndexOf([]uint8{}, 0); got != -1 {
		t.Errorf("IndexOf(empty, 0) = %d, want -1", got)
	}
	if got := IndexOf[uint32](nil, 0); got != -1 {
		t.Errorf("IndexOf(nil, 0) = %d, want -1", got)
	}
}

func TestIndexOfMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		s := make([]uint16, rng.Intn(90))
		for i := range s {
			s[i] = uint16(rng.Intn(40))
		}
		v := uint16(rng.Intn(45))
		want := indexOfScalar(s, v)
		for _, tier := range supportedTiers() {
			if got, _ := IndexOfTier(tier, s, v); got != want {
				t.Errorf("%v IndexOf(%v, %d) = %d, want %d", tier, s, v, got, want)
			}
		}
	}
}

// checkIndexKernels runs every IndexOf implementation reachable on this
// host, tiers and portable kernels alike, and compares each against want.
func checkIndexKernels[T uint8 | uint16 | uint32](t *testing.T, name string, s []T, v T, want int) {
	t.Helper()
	kernels := []struct {
		name string
		f    func([]T, T) int
	}{
		{"scalar", indexOfScalar[T]},
		{"lane", indexOfLane[T]},
		{"hwy", BaseIndexOf[T]},
	}
	for _, k := range kernels {
		if got := k.f(s, v); got != want {
			t.Errorf("%s %s: got %d, want %d", k.name, name, got, want)
		}
	}
	for _, tier := range supportedTiers() {
		if got, err := IndexOfTier(tier, s, v); err != nil || got != want {
			t.Errorf("%v %s: got %d, %v, want %d", tier, name, got, err, want)
		}
	}
}

func TestIndexOfLowestMaskBit(t *testing.T) {
	for _, at := range []int{0, 1, 15, 16, 31, 4000, 4095} {
		s8 := make([]uint8, 4096)
		s16 := make([]uint16, 4096)
		s32 := make([]uint32, 4096)
		s8[at], s16[at], s32[at] = 1, 1, 1
		if at+1 < 4096 {
			s8[4095], s16[4095], s32[4095] = 1, 1, 1
		}
		checkIndexKernels(t, "uint8", s8, 1, at)
		checkIndexKernels(t, "uint16", s16, 1, at)
		checkIndexKernels(t, "uint32", s32, 1, at)
	}
}

func TestIndexOfIgnoresStraddlingBytes(t *testing.T) {
	// The needle's bytes occur in order, but split across two elements.
	s16 := make([]uint16, 40)
	s16[3], s16[4] = 0xff00, 0x00ff
	checkIndexKernels(t, "uint16 straddle", s16, 0xffff, -1)
	s16[37] = 0xffff
	checkIndexKernels(t, "uint16 straddle then match", s16, 0xffff, 37)

	s32 := make([]uint32, 40)
	s32[5], s32[6] = 0xabcd0000, 0x0000abcd
	checkIndexKernels(t, "uint32 straddle", s32, 0xabcdabcd, -1)
	s32[39] = 0xabcdabcd
	checkIndexKernels(t, "uint32 straddle then match", s32, 0xabcdabcd, 39)
}

func TestFirstLane(t *testing.T) {
	tests := []struct {
		m    uint32
		size int
		want int
	}{
		{0, 1, -1},
		{0b1000, 1, 3},
		{0b0110, 2, -1},
		{0b1100, 2, 1},
		{0b1111_0111, 4, 1},
		{0xffff_0000, 4, -1},
		{0xffff, 4, 0},
	}
	for _, test := range tests {
		if got := firstLane(test.m, test.size); got != test.want {
			t.Errorf("firstLane(%#b, %d) = %d, want %d", test.m, test.size, got, test.want)
		}
	}
}

func TestNormalizeKernels(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 31, 32, 33, 100} {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i * 91)
		}
		want := wantBools(src)
		for name, f := range map[string]func(dst, src []byte){
			"lane": normalizeLane,
			"hwy":  BaseNormalizeBools[byte],
		} {
			dst := make([]byte, n)
			f(dst, src)
			if diff := cmp.Diff(want, dst); diff != "" {
				t.Errorf("%s n=%d: mismatch (-want +got):\n%s", name, n, diff)
			}
		}
	}
}

func BenchmarkIndexOf(b *testing.B) {
	s := make([]uint32, 4096)
	s[len(s)-1] = 1
	for _, tier := range supportedTiers() {
		b.Run(tier.String(), func(b *testing.B) {
			for b.Loop() {
				IndexOfTier(tier, s, 1)
			}
		})
	}
}
