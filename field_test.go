// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compensated

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// boxed is a float64 that does its arithmetic through methods
type boxed struct {
	v float64
}

func (a boxed) Add(b boxed) boxed { return boxed{a.v + b.v} }
func (a boxed) Sub(b boxed) boxed { return boxed{a.v - b.v} }
func (a boxed) Mul(b boxed) boxed { return boxed{float64(a.v * b.v)} }

type single struct {
	v float32
}

func (a single) Add(b single) single { return single{a.v + b.v} }
func (a single) Sub(b single) single { return single{a.v - b.v} }
func (a single) Mul(b single) single { return single{float32(a.v * b.v)} }

func box(v []float64) []boxed {
	r := make([]boxed, len(v))
	for i := range v {
		r[i] = boxed{v[i]}
	}
	return r
}

func TestFieldDotMatchesDot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 200; n++ {
		x, y := make([]float64, n), make([]float64, n)
		for i := range x {
			x[i] = 3*rng.Float64() - 1
			y[i] = 3*rng.Float64() - 1
		}
		assert.Equal(t, math.Float64bits(Dot(x, y)), math.Float64bits(FieldDot(box(x), box(y)).v))
		assert.Equal(t, math.Float64bits(NaiveDot(x, y)), math.Float64bits(FieldNaiveDot(box(x), box(y)).v))
	}
}

func TestFieldDot(t *testing.T) {
	x := box([]float64{1, 2, 3})
	y := box([]float64{1, 1.0 / 2.0, 1.0 / 3.0})
	assert.Equal(t, boxed{3}, FieldDot(x, y))
	assert.Equal(t, boxed{1}, FieldDot(x, y[:1]))
	assert.Equal(t, boxed{}, FieldDot(nil, y))
	assert.Equal(t, boxed{}, FieldNaiveDot(x, nil))
}

func TestFieldDot32(t *testing.T) {
	x := make([]single, 5)
	y := make([]single, 7)
	for i := range x {
		x[i].v = float32(i)
	}
	for i := range y {
		y[i].v = 2
	}
	assert.Equal(t, single{20}, FieldDot(x, y))
	assert.Equal(t, single{20}, FieldNaiveDot(x, y))

	tenth := make([]single, 10000)
	one := make([]single, 10000)
	for i := range tenth {
		tenth[i], one[i] = single{0.1}, single{1}
	}
	assert.Equal(t, single{1000}, FieldDot(tenth, one))
	assert.NotEqual(t, single{1000}, FieldNaiveDot(tenth, one))
}
