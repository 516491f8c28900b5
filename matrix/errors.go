// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with an op tag) and tests
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("<Op>: %w", ErrX) at the detection site; callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands and/or
	// the output buffer, e.g. Add on different shapes, or Mul where the
	// effective inner dimensions disagree.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotVector signals that a vector-shaped (1×n or n×1) matrix was required.
	// SoftmaxAddGrad builds a full Jacobian and is only valid for vectors.
	ErrNotVector = errors.New("matrix: matrix is not a vector")

	// ErrNilMatrix indicates that a nil *Dense was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDataLength indicates that a caller-supplied slice does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrSourceUnavailable marks a sample source that could not be opened or
	// read. Loaders still return a valid zero-filled matrix alongside it.
	ErrSourceUnavailable = errors.New("matrix: sample source unavailable")
)
