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

// Package soa holds query points in structure-of-arrays form: one
// contiguous float32 slice per axis, padded so that every lane batch of
// the widest kernel can be loaded without bounds juggling.
package soa

import (
	"errors"

	"github.com/akhenakh/nearseg/errs"
	"github.com/akhenakh/nearseg/lane"
	"github.com/akhenakh/nearseg/r3"
)

// MaxLanes is the widest lane count any kernel reads at once. Every axis
// slice is padded to a multiple of it.
const MaxLanes = 8

// Axis names one coordinate array of a Context.
type Axis int

// The three axes of a Context.
const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "Axis(?)"
}

// Context is a padded structure-of-arrays copy of a point set.
//
// Positions at or beyond Len hold zero. They keep lane arithmetic well
// defined and are never reported back to callers.
//
// A Context owns its storage and never aliases the points it was built
// from. It is not safe for concurrent mutation, but any number of
// searches may read it at once.
type Context struct {
	axes [3][]float32
	n    int

	// Lane views over axes, rebuilt by resize.
	v4 [3]lane.View4
	v8 [3]lane.View8
}

// New returns a Context holding a copy of points.
func New(points []r3.Vector) *Context {
	c := NewSized(len(points))
	for i, p := range points {
		c.Set(i, p)
	}
	return c
}

// NewSized returns a Context for n points, all at the origin. Fill it with Set.
func NewSized(n int) *Context {
	c := &Context{}
	c.resize(n)
	return c
}

// Reset replaces the contents of c with points, reusing the existing
// storage when it is large enough.
func (c *Context) Reset(points []r3.Vector) {
	c.resize(len(points))
	for i, p := range points {
		c.Set(i, p)
	}
}

func (c *Context) resize(n int) {
	padded := lane.RoundUp(n, MaxLanes)
	for a := range c.axes {
		if cap(c.axes[a]) >= padded {
			c.axes[a] = c.axes[a][:padded]
			clear(c.axes[a][n:])
		} else {
			c.axes[a] = make([]float32, padded)
		}
		var err4, err8 error
		c.v4[a], err4 = lane.NewView4(c.axes[a])
		c.v8[a], err8 = lane.NewView8(c.axes[a])
		if err := errors.Join(err4, err8); err != nil {
			panic(err)
		}
	}
	c.n = n
}

// Set stores p at position i. It panics if i is not in [0, Len).
func (c *Context) Set(i int, p r3.Vector) {
	if i < 0 || i >= c.n {
		panic(errs.InvalidArgument("soa: index %d out of range [0, %d)", i, c.n))
	}
	c.axes[X][i] = p.X
	c.axes[Y][i] = p.Y
	c.axes[Z][i] = p.Z
}

// Len returns the number of points held.
func (c *Context) Len() int { return c.n }

// PaddedLen returns the length of each axis slice.
func (c *Context) PaddedLen() int { return len(c.axes[X]) }

// Batches returns the number of width-lane batches covering PaddedLen.
func (c *Context) Batches(width int) int { return c.PaddedLen() / width }

// Point returns the point at position i.
func (c *Context) Point(i int) r3.Vector {
	return r3.Vector{X: c.axes[X][i], Y: c.axes[Y][i], Z: c.axes[Z][i]}
}

// Axis returns the padded coordinate slice of axis a. Callers must not
// modify it.
func (c *Context) Axis(a Axis) []float32 { return c.axes[a] }

// View4 returns axis a as a sequence of 4-lane registers.
func (c *Context) View4(a Axis) lane.View4 { return c.v4[a] }

// View8 returns axis a as a sequence of 8-lane registers.
func (c *Context) View8(a Axis) lane.View8 { return c.v8[a] }

// Lane4 returns the i-th 4-lane register of axis a. The caller must
// ensure 0 <= i < PaddedLen()/4.
func (c *Context) Lane4(a Axis, i int) *lane.F32x4 { return c.v4[a].At(i) }

// Lane8 returns the i-th 8-lane register of axis a. The caller must
// ensure 0 <= i < PaddedLen()/8.
func (c *Context) Lane8(a Axis, i int) *lane.F32x8 { return c.v8[a].At(i) }
