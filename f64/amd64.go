// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64
// +build amd64

package f64

import (
	"github.com/ziutek/blas"
)

func dot(X, Y []float64) float64 {
	return blas.Ddot(len(X), X, 1, Y, 1)
}

func scal(alpha float64, X []float64) {
	blas.Dscal(len(X), alpha, X, 1)
}

func axpy(alpha float64, X []float64, Y []float64) {
	blas.Daxpy(len(X), alpha, X, 1, Y, 1)
}
