// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrLabelRange indicates a label that is not an integer in [0, classes).
	ErrLabelRange = errors.New("dataset: label out of range")

	// ErrInvalidSplit indicates a SplitSpec with a non-positive field.
	ErrInvalidSplit = errors.New("dataset: invalid split")

	// ErrRenderWidth indicates a width that does not tile the sample.
	ErrRenderWidth = errors.New("dataset: width does not divide sample length")
)
