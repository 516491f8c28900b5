// SPDX-License-Identifier: MIT

package train

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive epoch count, batch size or
	// learning rate, or a batch size larger than the training set.
	ErrInvalidConfig = errors.New("train: invalid configuration")

	// ErrMissingRole indicates that the graph lacks one of the input,
	// desired-output, output or cost designations.
	ErrMissingRole = errors.New("train: graph role not designated")

	// ErrDataShape indicates a sample or label matrix whose shape disagrees
	// with its counterpart or with the graph leaves it is copied into.
	ErrDataShape = errors.New("train: data shape mismatch")
)
