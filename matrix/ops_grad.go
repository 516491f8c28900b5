// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gradient counterparts of the forward kernels in ops_elementwise.go.
//
// Contract:
//   - Every kernel ADDS INTO its destination and never overwrites it. A node
//     that feeds several consumers receives the sum of their contributions.
//   - Destinations are validated before any element is touched.

package matrix

import "github.com/chewxy/math32"

const (
	opReLUGrad         = "ReLUAddGrad"
	opSoftmaxGrad      = "SoftmaxAddGrad"
	opCrossEntropyGrad = "CrossEntropyAddGrad"
)

// ReLUAddGrad computes out += (in > 0 ? grad : 0) elementwise.
func ReLUAddGrad(out, in, grad *Dense) error {
	if err := validateElementwise(out, in, grad); err != nil {
		return matrixErrorf(opReLUGrad, err)
	}
	for i, v := range in.data {
		if v > 0 {
			out.data[i] += grad.data[i]
		}
	}

	return nil
}

// SoftmaxAddGrad computes out += J·grad where J is the softmax Jacobian built
// from the softmax output s: J[i,j] = s_i·(δ_ij − s_j).
//
// Implementation:
//   - Stage 1: require s to be vector-shaped (one dimension is 1) and grad
//     to be an n-vector shaped like out.
//   - Stage 2: materialise the n×n Jacobian.
//   - Stage 3: accumulate through Mul with zeroOut=false: J·grad for a column
//     gradient, grad·J for a row gradient (J is symmetric).
//
// Errors:
//   - ErrNotVector when s is not a vector; the full-Jacobian formula is only
//     valid for a single softmax distribution.
//   - ErrDimensionMismatch when grad is not an n-vector or out is not
//     shaped like grad.
//
// Complexity:
//   - Time O(n²·c), Space O(n²) for the Jacobian.
func SoftmaxAddGrad(out, s, grad *Dense) error {
	if err := validateNotNil(out, s, grad); err != nil {
		return matrixErrorf(opSoftmaxGrad, err)
	}
	if !s.IsVector() {
		return matrixErrorf(opSoftmaxGrad, ErrNotVector)
	}
	n := s.Len()
	if !grad.IsVector() || grad.Len() != n || !out.SameShape(grad) {
		return matrixErrorf(opSoftmaxGrad, ErrDimensionMismatch)
	}

	jac := &Dense{r: n, c: n, data: make([]float32, n*n)}
	for i := 0; i < n; i++ {
		si := s.data[i]
		for j := 0; j < n; j++ {
			var delta float32
			if i == j {
				delta = 1
			}
			jac.data[i*n+j] = si * (delta - s.data[j])
		}
	}

	var err error
	if grad.r == 1 && n > 1 {
		err = Mul(out, grad, jac, false, false, false)
	} else {
		err = Mul(out, jac, grad, false, false, false)
	}
	if err != nil {
		return matrixErrorf(opSoftmaxGrad, err)
	}

	return nil
}

// CrossEntropyAddGrad accumulates the partials of out = p * -log(q).
//
//   - pGrad (optional): pGrad += -log(q) · grad
//   - qGrad (optional): qGrad += -(p / q) · grad
//
// A nil destination is skipped entirely, so an operand that does not track
// gradients incurs no work. All shapes are validated before writing.
func CrossEntropyAddGrad(pGrad, qGrad, p, q, grad *Dense) error {
	if err := validateElementwise(p, q, grad); err != nil {
		return matrixErrorf(opCrossEntropyGrad, err)
	}
	if pGrad != nil && !pGrad.SameShape(p) {
		return matrixErrorf(opCrossEntropyGrad, ErrDimensionMismatch)
	}
	if qGrad != nil && !qGrad.SameShape(q) {
		return matrixErrorf(opCrossEntropyGrad, ErrDimensionMismatch)
	}

	if pGrad != nil {
		for i, qv := range q.data {
			pGrad.data[i] += -math32.Log(qv) * grad.data[i]
		}
	}
	if qGrad != nil {
		for i, qv := range q.data {
			qGrad.data[i] += -p.data[i] / qv * grad.data[i]
		}
	}

	return nil
}
