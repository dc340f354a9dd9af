// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64
// +build !amd64

package f64

func dot(X, Y []float64) float64 {
	var sum float64
	for i, x := range X {
		sum += x * Y[i]
	}
	return sum
}

func scal(alpha float64, X []float64) {
	for i, x := range X {
		X[i] = alpha * x
	}
}

func axpy(alpha float64, X []float64, Y []float64) {
	for i, y := range Y {
		Y[i] = alpha*X[i] + y
	}
}
