// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accuracy

import (
	"fmt"
	"math"
	"math/rand"
)

// GenDot returns vectors of length n whose dot product has a condition
// number of roughly cond, following Ogita, Rump and Oishi, "Accurate sum and
// dot product", 2005. The first half has random exponents spread over
// log2(cond)/2 bits, the second half is chosen to cancel the running exact
// dot product.
func GenDot(rng *rand.Rand, n int, cond float64) (x, y []float64) {
	x, y = make([]float64, n), make([]float64, n)
	if n < 2 || cond <= 1 {
		for i := range x {
			x[i], y[i] = 2*rng.Float64()-1, 2*rng.Float64()-1
		}
		return x, y
	}

	b := math.Log2(cond)
	half := (n + 1) / 2
	for i := 0; i < half; i++ {
		e := math.Round(rng.Float64() * b / 2)
		switch i {
		case 0:
			e = math.Round(b/2) + 1
		case half - 1:
			e = 0
		}
		x[i] = math.Ldexp(2*rng.Float64()-1, int(e))
		y[i] = math.Ldexp(2*rng.Float64()-1, int(e))
	}

	rest := n - half
	for i := half; i < n; i++ {
		e := b / 2
		if rest > 1 {
			e = b / 2 * float64(n-1-i) / float64(rest-1)
		}
		e = math.Round(e)
		x[i] = math.Ldexp(2*rng.Float64()-1, int(e))
		if x[i] == 0 {
			x[i] = math.Ldexp(1, int(e))
		}
		partial, _ := Exact(x[:i], y[:i]).Float64()
		y[i] = (math.Ldexp(2*rng.Float64()-1, int(e)) - partial) / x[i]
	}

	rng.Shuffle(n, func(i, j int) {
		x[i], x[j] = x[j], x[i]
		y[i], y[j] = y[j], y[i]
	})
	return x, y
}

// Corpus generates count cases of length n for each condition number
func Corpus(rng *rand.Rand, n, count int, conditions ...float64) []Case {
	cases := make([]Case, 0, count*len(conditions))
	for _, cond := range conditions {
		for i := 0; i < count; i++ {
			x, y := GenDot(rng, n, cond)
			cases = append(cases, Case{
				Name:      fmt.Sprintf("gendot/n=%d/cond=%g/%d", n, cond, i),
				X:         x,
				Y:         y,
				Condition: Condition(x, y),
			})
		}
	}
	return cases
}
