// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// matrixErrorf wraps an underlying error with the given op tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures every operand is non-nil.
func validateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape ensures every operand has the shape of the first one.
// Assumes operands are non-nil.
func validateSameShape(first *Dense, rest ...*Dense) error {
	for _, m := range rest {
		if !first.SameShape(m) {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateElementwise is the composite guard for out = f(operands...).
func validateElementwise(out *Dense, operands ...*Dense) error {
	if err := validateNotNil(out); err != nil {
		return err
	}
	if err := validateNotNil(operands...); err != nil {
		return err
	}

	return validateSameShape(out, operands...)
}
