// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64
// +build amd64

package f32

import (
	"github.com/ziutek/blas"
)

func dot(X, Y []float32) float32 {
	return blas.Sdot(len(X), X, 1, Y, 1)
}

func scal(alpha float32, X []float32) {
	blas.Sscal(len(X), alpha, X, 1)
}

func axpy(alpha float32, X []float32, Y []float32) {
	blas.Saxpy(len(X), alpha, X, 1, Y, 1)
}
