// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Forward elementwise kernels of the engine: Add, Sub, ReLU, Softmax, CrossEntropy.
//   - Every kernel writes into a caller-owned output buffer; nothing allocates.
//
// Contract:
//   - Shapes of all operands and of the output must match exactly, otherwise
//     ErrDimensionMismatch (wrapped with the op tag) is returned and the output
//     is left unspecified.
//   - The output may alias an operand (out == a is how gradients accumulate).
//
// Numeric policy:
//   - Softmax does NOT subtract the max before exponentiating. float32 exp
//     overflows to +Inf for inputs above ~88.72, at which point the result
//     degenerates to NaN. Inputs well below that bound sum to 1 within 1e-5.

package matrix

import "github.com/chewxy/math32"

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opReLU         = "ReLU"
	opSoftmax      = "Softmax"
	opCrossEntropy = "CrossEntropy"
)

// Add computes out = a + b elementwise.
// Complexity: O(r*c).
func Add(out, a, b *Dense) error {
	if err := validateElementwise(out, a, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return nil
}

// Sub computes out = a - b elementwise.
// Complexity: O(r*c).
func Sub(out, a, b *Dense) error {
	if err := validateElementwise(out, a, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return nil
}

// ReLU computes out = max(0, in) elementwise.
func ReLU(out, in *Dense) error {
	if err := validateElementwise(out, in); err != nil {
		return matrixErrorf(opReLU, err)
	}
	for i, v := range in.data {
		out.data[i] = math32.Max(0, v)
	}

	return nil
}

// Softmax computes out = exp(in) / sum(exp(in)) over ALL elements.
//
// Implementation:
//   - Stage 1: out[i] = exp(in[i]), accumulating the sum in storage order.
//   - Stage 2: scale out by 1/sum.
//
// Notes:
//   - No max-subtraction (see file header for the overflow bound).
func Softmax(out, in *Dense) error {
	if err := validateElementwise(out, in); err != nil {
		return matrixErrorf(opSoftmax, err)
	}
	var sum float32
	for i, v := range in.data {
		e := math32.Exp(v)
		out.data[i] = e
		sum += e
	}
	out.Scale(1 / sum)

	return nil
}

// CrossEntropy computes out = p * -log(q) elementwise, defining the term as 0
// wherever p == 0 so that masked positions with q == 0 stay finite.
func CrossEntropy(out, p, q *Dense) error {
	if err := validateElementwise(out, p, q); err != nil {
		return matrixErrorf(opCrossEntropy, err)
	}
	for i := range out.data {
		if p.data[i] == 0 {
			out.data[i] = 0
			continue
		}
		out.data[i] = p.data[i] * -math32.Log(q.data[i])
	}

	return nil
}
