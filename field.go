// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compensated

// Field is a numeric type that provides its own arithmetic. The zero value of
// T must be the additive identity. Mul must return a rounded result, for
// float backed types that means an explicit conversion of the product.
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
}

// FieldDot returns the compensated dot product of x and y using the
// arithmetic of T
func FieldDot[T Field[T]](x, y []T) T {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	var sum, compensation T
	for i := 0; i < n; i++ {
		adjusted := x[i].Mul(y[i]).Sub(compensation)
		next := sum.Add(adjusted)
		compensation = next.Sub(sum).Sub(adjusted)
		sum = next
	}
	return sum
}

// FieldNaiveDot returns the dot product of x and y using the arithmetic of T
// without any error compensation
func FieldNaiveDot[T Field[T]](x, y []T) T {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	var sum T
	for i := 0; i < n; i++ {
		sum = sum.Add(x[i].Mul(y[i]))
	}
	return sum
}
