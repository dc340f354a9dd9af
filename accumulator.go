// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compensated

// Accumulator is a compensated running sum. The zero value is an empty sum.
type Accumulator[T Float] struct {
	sum          T
	compensation T
}

// Add adds v to the sum. v must already be rounded: pass a product as
// acc.Add(T(x * y)) or the compiler may fuse the multiplication into the
// compensation subtraction.
func (a *Accumulator[T]) Add(v T) {
	adjusted := v - a.compensation
	sum := a.sum + adjusted
	// (sum - a.sum) is the part of adjusted that made it into sum; must be
	// evaluated after the addition and in this order
	a.compensation = (sum - a.sum) - adjusted
	a.sum = sum
}

// Sum returns the current sum
func (a *Accumulator[T]) Sum() T {
	return a.sum
}

// Reset empties the sum
func (a *Accumulator[T]) Reset() {
	a.sum, a.compensation = 0, 0
}
