// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compensated

import (
	"errors"
	"fmt"
)

// ErrMismatch matches any *ErrLengthMismatch with errors.Is
var ErrMismatch = errors.New("length mismatch")

// ErrLengthMismatch is returned by StrictDot when the vectors differ in length
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: got %d and %d", e.Left, e.Right)
}

// Is reports whether target is ErrMismatch
func (e *ErrLengthMismatch) Is(target error) bool {
	return target == ErrMismatch
}

// StrictDot is Dot for callers that treat vectors of different length as a bug
func StrictDot[T Float](x, y []T) (T, error) {
	if len(x) != len(y) {
		return 0, &ErrLengthMismatch{Left: len(x), Right: len(y)}
	}
	return Dot(x, y), nil
}
