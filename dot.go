// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compensated computes dot products with compensated summation.
//
// Each product is added to a running sum while a second accumulator tracks
// the low order bits lost by that addition; the lost part is subtracted from
// the next product before it is added. The error of the result no longer
// grows with the length of the vectors.
//
// Vectors of different length are paired up to the shorter one.
package compensated

//go:generate go run ./cmd/generator

// Float is the set of element types usable with Dot and NaiveDot
type Float interface {
	~float32 | ~float64
}

// Dot returns the compensated dot product of x and y
func Dot[T Float](x, y []T) T {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	x, y = x[:n], y[:n]
	var acc Accumulator[T]
	for i, a := range x {
		// the conversion rounds the product so it can't be fused with the
		// subtraction inside Add
		acc.Add(T(a * y[i]))
	}
	return acc.Sum()
}

// NaiveDot returns the dot product of x and y without any error compensation
func NaiveDot[T Float](x, y []T) T {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	x, y = x[:n], y[:n]
	var sum T
	for i, a := range x {
		sum += T(a * y[i])
	}
	return sum
}
