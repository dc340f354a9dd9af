// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accuracy measures how far dot product algorithms are from the
// exact result.
package accuracy

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/pointlander/compensated"
)

const (
	// ExactPrec is enough bits to hold the exact sum of products of finite
	// float64 values for any practical vector length
	ExactPrec = 4416
	// Unit is the unit roundoff of float64
	Unit = 0x1p-53
	// MantissaBits is the number of significant bits in a float64
	MantissaBits = 53
)

func shared(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	return x[:n], y[:n]
}

// Exact returns the dot product of x and y without rounding
func Exact(x, y []float64) *big.Float {
	x, y = shared(x, y)
	sum := new(big.Float).SetPrec(ExactPrec)
	product := new(big.Float).SetPrec(2 * MantissaBits)
	a, b := new(big.Float), new(big.Float)
	for i, v := range x {
		product.Mul(a.SetFloat64(v), b.SetFloat64(y[i]))
		sum.Add(sum, product)
	}
	return sum
}

// AbsDot returns the sum of |x[i]*y[i]|
func AbsDot(x, y []float64) float64 {
	x, y = shared(x, y)
	var acc compensated.Accumulator[float64]
	for i, v := range x {
		acc.Add(math.Abs(v * y[i]))
	}
	return acc.Sum()
}

// Condition returns the condition number 2*sum|x[i]*y[i]| / |sum x[i]*y[i]|,
// or +Inf when the exact dot product is zero
func Condition(x, y []float64) float64 {
	exact := Exact(x, y)
	if exact.Sign() == 0 {
		return math.Inf(1)
	}
	x, y = shared(x, y)
	abs := new(big.Float).SetPrec(ExactPrec)
	product := new(big.Float).SetPrec(2 * MantissaBits)
	a, b := new(big.Float), new(big.Float)
	for i, v := range x {
		product.Mul(a.SetFloat64(math.Abs(v)), b.SetFloat64(math.Abs(y[i])))
		abs.Add(abs, product)
	}
	abs.Mul(abs, big.NewFloat(2))
	c, _ := abs.Quo(abs, exact.Abs(exact)).Float64()
	return c
}

// ErrorBound returns an upper bound on |compensated.Dot(x, y) - exact|.
// Each product is rounded once and the compensated sum adds about two more
// roundings, independent of the length apart from a second order term.
func ErrorBound(x, y []float64) float64 {
	x, y = shared(x, y)
	n := float64(len(x))
	return (4*Unit + 8*n*Unit*Unit) * AbsDot(x, y)
}

// AbsError returns |got - exact|
func AbsError(got float64, exact *big.Float) float64 {
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return math.Inf(1)
	}
	diff := new(big.Float).SetPrec(ExactPrec).SetFloat64(got)
	diff.Sub(diff, exact)
	e, _ := diff.Abs(diff).Float64()
	return e
}

// RelativeError returns |got - exact| / |exact|, or the absolute error when
// exact is zero
func RelativeError(got float64, exact *big.Float) float64 {
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return math.Inf(1)
	}
	diff := new(big.Float).SetPrec(ExactPrec).SetFloat64(got)
	diff.Sub(diff, exact)
	if exact.Sign() == 0 {
		e, _ := diff.Abs(diff).Float64()
		return e
	}
	diff.Quo(diff, exact)
	e, _ := diff.Abs(diff).Float64()
	return e
}

// Bits returns the number of correct significant bits of got, between 0 and
// MantissaBits
func Bits(got float64, exact *big.Float) float64 {
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return 0
	}
	diff := new(big.Float).SetPrec(ExactPrec).SetFloat64(got)
	diff.Sub(diff, exact)
	if diff.Sign() == 0 {
		return MantissaBits
	}
	if exact.Sign() == 0 {
		return 0
	}
	const prec = 128
	relative := new(big.Float).SetPrec(prec).Quo(diff, exact)
	relative.Abs(relative)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	bits := new(big.Float).SetPrec(prec).Quo(bigfloat.Log(relative), bigfloat.Log(two))
	b, _ := bits.Neg(bits).Float64()
	switch {
	case b < 0:
		return 0
	case b > MantissaBits:
		return MantissaBits
	}
	return b
}
