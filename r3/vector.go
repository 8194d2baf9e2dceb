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

// Package r3 implements types and functions for working with geometry in ℝ³.
//
// The float32 Vector is the primary point type: its components feed SIMD
// lanes directly. Vector64 carries the same operations in double precision.
package r3

import (
	"fmt"
	"math"
)

// Vector represents a point in ℝ³ with float32 coordinates.
type Vector struct {
	X, Y, Z float32
}

// ApproxEqual reports whether v and ov are equal within a small epsilon.
func (v Vector) ApproxEqual(ov Vector) bool {
	const epsilon = 1e-5
	return math.Abs(float64(v.X-ov.X)) < epsilon &&
		math.Abs(float64(v.Y-ov.Y)) < epsilon &&
		math.Abs(float64(v.Z-ov.Z)) < epsilon
}

func (v Vector) String() string { return fmt.Sprintf("(%0.6f, %0.6f, %0.6f)", v.X, v.Y, v.Z) }

// Add returns the standard vector sum of v and ov.
func (v Vector) Add(ov Vector) Vector { return Vector{v.X + ov.X, v.Y + ov.Y, v.Z + ov.Z} }

// Sub returns the standard vector difference of v and ov.
func (v Vector) Sub(ov Vector) Vector { return Vector{v.X - ov.X, v.Y - ov.Y, v.Z - ov.Z} }

// Mul returns the standard scalar product of v and m. Products are rounded
// to float32 so that a following Add is never fused with them.
func (v Vector) Mul(m float32) Vector {
	return Vector{float32(m * v.X), float32(m * v.Y), float32(m * v.Z)}
}

// Dot returns the standard dot product of v and ov.
//
// Each product is rounded to float32 before it is accumulated, left to right.
// The lane kernels evaluate dot products in the same order, which keeps the
// scalar and vector paths bit-identical.
func (v Vector) Dot(ov Vector) float32 {
	return float32(v.X*ov.X) + float32(v.Y*ov.Y) + float32(v.Z*ov.Z)
}

// Norm2 returns the square of the norm.
func (v Vector) Norm2() float32 { return v.Dot(v) }

// Norm returns the vector's norm.
func (v Vector) Norm() float32 { return Sqrt32(v.Norm2()) }

// Distance returns the Euclidean distance between v and ov.
func (v Vector) Distance(ov Vector) float32 { return v.Sub(ov).Norm() }

// Distance2 returns the squared Euclidean distance between v and ov.
func (v Vector) Distance2(ov Vector) float32 { return v.Sub(ov).Norm2() }

// Vector64 returns v widened to double precision.
func (v Vector) Vector64() Vector64 {
	return Vector64{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Sqrt32 returns the correctly rounded float32 square root of x.
func Sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Vector64 represents a point in ℝ³ with float64 coordinates.
type Vector64 struct {
	X, Y, Z float64
}

func (v Vector64) String() string { return fmt.Sprintf("(%0.12f, %0.12f, %0.12f)", v.X, v.Y, v.Z) }

// Add returns the standard vector sum of v and ov.
func (v Vector64) Add(ov Vector64) Vector64 { return Vector64{v.X + ov.X, v.Y + ov.Y, v.Z + ov.Z} }

// Sub returns the standard vector difference of v and ov.
func (v Vector64) Sub(ov Vector64) Vector64 { return Vector64{v.X - ov.X, v.Y - ov.Y, v.Z - ov.Z} }

// Mul returns the standard scalar product of v and m.
func (v Vector64) Mul(m float64) Vector64 { return Vector64{m * v.X, m * v.Y, m * v.Z} }

// Dot returns the standard dot product of v and ov.
func (v Vector64) Dot(ov Vector64) float64 { return v.X*ov.X + v.Y*ov.Y + v.Z*ov.Z }

// Norm2 returns the square of the norm.
func (v Vector64) Norm2() float64 { return v.Dot(v) }

// Norm returns the vector's norm.
func (v Vector64) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Distance returns the Euclidean distance between v and ov.
func (v Vector64) Distance(ov Vector64) float64 { return v.Sub(ov).Norm() }

// Vector returns v narrowed to single precision.
func (v Vector64) Vector() Vector {
	return Vector{float32(v.X), float32(v.Y), float32(v.Z)}
}
