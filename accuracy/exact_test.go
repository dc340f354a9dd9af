// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accuracy

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointlander/compensated/internal/testutil"
)

func newRand() *rand.Rand {
	return testutil.NewRNG(testutil.Seed()).Rand
}

func TestExact(t *testing.T) {
	exact, accuracy := Exact([]float64{1, 2, 3}, []float64{4, 5, 6}).Float64()
	assert.Equal(t, big.Exact, accuracy)
	assert.Equal(t, 32.0, exact)

	// 1e100 + 1 - 1e100 cancels exactly only without rounding
	x := []float64{1e100, 1, -1e100}
	y := []float64{1, 1, 1}
	exact, _ = Exact(x, y).Float64()
	assert.Equal(t, 1.0, exact)

	// extreme exponents stay exact
	x = []float64{math.MaxFloat64, math.SmallestNonzeroFloat64, -math.MaxFloat64}
	y = []float64{2, math.SmallestNonzeroFloat64, 2}
	e := Exact(x, y)
	assert.Equal(t, 1, e.Sign())
	exact, accuracy = e.Float64()
	assert.Equal(t, 0.0, exact)
	assert.Equal(t, big.Below, accuracy)

	// shared prefix only
	exact, _ = Exact([]float64{1, 2, 3}, []float64{1}).Float64()
	assert.Equal(t, 1.0, exact)
	assert.Equal(t, 0, Exact(nil, nil).Sign())
}

func TestCondition(t *testing.T) {
	assert.Equal(t, 2.0, Condition([]float64{1, 2}, []float64{3, 4}))
	assert.True(t, math.IsInf(Condition([]float64{1, -1}, []float64{1, 1}), 1))
	assert.InDelta(t, 4e16, Condition([]float64{1e16, 1, -1e16}, []float64{1, 1, 1}), 32)

	// the exact dot product is outside the range of float64
	assert.Equal(t, 2.0, Condition([]float64{1e-300}, []float64{1e-300}))
	assert.Equal(t, 2.0, Condition([]float64{1e300, 1e300}, []float64{1e300, 1e300}))
	assert.Equal(t, 6.0, Condition([]float64{1e300, -1e300, 1e300}, []float64{1e300, 1e300, 1e300}))
	assert.True(t, math.IsInf(Condition([]float64{1e-300, -1e-300}, []float64{1e-300, 1e-300}), 1))
}

func TestAbsDotAndBound(t *testing.T) {
	x := []float64{1, -2, 3}
	y := []float64{-1, 1, 2}
	assert.Equal(t, 9.0, AbsDot(x, y))
	bound := ErrorBound(x, y)
	assert.Greater(t, bound, 9*4*Unit)
	assert.Less(t, bound, 9*5*Unit)
	assert.Equal(t, 0.0, ErrorBound(nil, nil))
}

func TestErrors(t *testing.T) {
	exact := new(big.Float).SetPrec(ExactPrec).SetFloat64(1)
	exact.Add(exact, new(big.Float).SetFloat64(0x1p-60))

	assert.Equal(t, 0x1p-60, AbsError(1, exact))
	assert.InDelta(t, 0x1p-60, RelativeError(1, exact), 1e-30)
	assert.Equal(t, float64(MantissaBits), Bits(1, exact))

	exact.SetFloat64(1)
	assert.Equal(t, float64(MantissaBits), Bits(1, exact))
	assert.Equal(t, 0.0, RelativeError(1, exact))
	assert.InDelta(t, 10.0, Bits(1+0x1p-10, exact), 1e-9)
	assert.InDelta(t, 0.0, Bits(3, exact), 1e-9)

	zero := new(big.Float)
	assert.Equal(t, 0.5, RelativeError(0.5, zero))
	assert.Equal(t, 0.0, Bits(0.5, zero))
	assert.Equal(t, float64(MantissaBits), Bits(0, zero))

	assert.True(t, math.IsInf(RelativeError(math.NaN(), exact), 1))
	assert.True(t, math.IsInf(AbsError(math.Inf(-1), exact), 1))
	assert.Equal(t, 0.0, Bits(math.Inf(1), exact))
}

func TestGenDot(t *testing.T) {
	require.NotPanics(t, func() {
		x, y := GenDot(newRand(), 1, 1e10)
		assert.Len(t, x, 1)
		assert.Len(t, y, 1)
	})

	for _, cond := range []float64{1e4, 1e8, 1e12} {
		x, y := GenDot(newRand(), 100, cond)
		require.Len(t, x, 100)
		require.Len(t, y, 100)
		c := Condition(x, y)
		// the generator only aims at cond
		assert.Greater(t, c, math.Sqrt(cond), "cond=%g", cond)
		assert.Less(t, c, cond*cond, "cond=%g", cond)
	}

	a1, b1 := GenDot(newRand(), 50, 1e6)
	a2, b2 := GenDot(newRand(), 50, 1e6)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}
