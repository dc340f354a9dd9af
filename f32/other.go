// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64
// +build !amd64

package f32

func dot(X, Y []float32) float32 {
	var sum float32
	for i, x := range X {
		sum += x * Y[i]
	}
	return sum
}

func scal(alpha float32, X []float32) {
	for i, x := range X {
		X[i] = alpha * x
	}
}

func axpy(alpha float32, X []float32, Y []float32) {
	for i, y := range Y {
		Y[i] = alpha*X[i] + y
	}
}
