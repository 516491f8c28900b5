// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrTooFewUnits indicates a layer width below one.
	ErrTooFewUnits = errors.New("model: layer width must be >= 1")

	// ErrNeedRandSource indicates a nil prng.Source; weight init is random.
	ErrNeedRandSource = errors.New("model: random source is required")

	// ErrSampleLength indicates a Predict sample whose length differs from the
	// input node.
	ErrSampleLength = errors.New("model: sample length mismatch")
)
