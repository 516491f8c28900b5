// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/matrix"
)

// weightedSoftmax returns Σ w_i·softmax(x)_i.
func weightedSoftmax(t *testing.T, x, w []float32) float64 {
	in := mustDense(t, len(x), 1, x...)
	out := mustDense(t, len(x), 1)
	require.NoError(t, matrix.Softmax(out, in))
	var s float64
	for i, v := range out.Data() {
		s += float64(v) * float64(w[i])
	}

	return s
}

// TestReLUAddGrad accumulates only where the input was positive.
func TestReLUAddGrad(t *testing.T) {
	in := mustDense(t, 1, 4, -1, 0, 2, 3)
	grad := mustDense(t, 1, 4, 5, 5, 5, 5)
	out := mustDense(t, 1, 4, 1, 1, 1, 1)

	require.NoError(t, matrix.ReLUAddGrad(out, in, grad))
	require.Equal(t, []float32{1, 1, 6, 6}, out.Data())

	require.ErrorIs(t, matrix.ReLUAddGrad(mustDense(t, 4, 1), in, grad), matrix.ErrDimensionMismatch)
}

// TestSoftmaxAddGrad_FiniteDifference compares J·w to a central difference of
// L(x) = Σ w_i softmax(x)_i on a length-4 vector.
func TestSoftmaxAddGrad_FiniteDifference(t *testing.T) {
	x := []float32{0.2, -0.4, 1.1, 0.5}
	w := []float32{0.3, -1.2, 0.7, 2.0}
	const eps = 1e-2

	in := mustDense(t, 4, 1, x...)
	s := mustDense(t, 4, 1)
	require.NoError(t, matrix.Softmax(s, in))
	grad := mustDense(t, 4, 1, w...)
	out := mustDense(t, 4, 1)
	require.NoError(t, matrix.SoftmaxAddGrad(out, s, grad))

	for j := range x {
		plus := append([]float32(nil), x...)
		minus := append([]float32(nil), x...)
		plus[j] += eps
		minus[j] -= eps
		numeric := (weightedSoftmax(t, plus, w) - weightedSoftmax(t, minus, w)) / (2 * eps)
		require.InDelta(t, numeric, float64(out.Data()[j]), 1e-3, "component %d", j)
	}
}

// TestSoftmaxAddGrad_Accumulates verifies the destination is added into.
func TestSoftmaxAddGrad_Accumulates(t *testing.T) {
	s := mustDense(t, 1, 3, 0.2, 0.3, 0.5)
	sCol := mustDense(t, 3, 1, 0.2, 0.3, 0.5)
	grad := mustDense(t, 3, 1, 1, 0, 0)

	once := mustDense(t, 3, 1)
	require.NoError(t, matrix.SoftmaxAddGrad(once, sCol, grad))
	// Row orientation of s is accepted as well.
	twice := mustDense(t, 3, 1)
	require.NoError(t, matrix.SoftmaxAddGrad(twice, s, grad))
	require.NoError(t, matrix.SoftmaxAddGrad(twice, s, grad))

	// J[:,0] = [s0(1-s0), -s1 s0, -s2 s0]
	assertClose(t, []float32{0.16, -0.06, -0.1}, once.Data(), tol)
	assertClose(t, []float32{0.32, -0.12, -0.2}, twice.Data(), tol)
}

// TestSoftmaxAddGrad_RowGradient matches the column result for 1×n gradients.
func TestSoftmaxAddGrad_RowGradient(t *testing.T) {
	s := mustDense(t, 1, 3, 0.2, 0.3, 0.5)
	out := mustDense(t, 1, 3)
	require.NoError(t, matrix.SoftmaxAddGrad(out, s, mustDense(t, 1, 3, 1, 0, 0)))
	assertClose(t, []float32{0.16, -0.06, -0.1}, out.Data(), tol)

	// A column s with a row gradient is the same distribution.
	sCol := mustDense(t, 3, 1, 0.2, 0.3, 0.5)
	outRow := mustDense(t, 1, 3)
	require.NoError(t, matrix.SoftmaxAddGrad(outRow, sCol, mustDense(t, 1, 3, 1, 0, 0)))
	assertClose(t, []float32{0.16, -0.06, -0.1}, outRow.Data(), tol)
}

// TestSoftmaxAddGrad_RejectsMatrix keeps the vector-only precondition explicit
// and rejects gradients whose length or shape disagree with s.
func TestSoftmaxAddGrad_RejectsMatrix(t *testing.T) {
	col := func() *matrix.Dense { return mustDense(t, 3, 1, 0.2, 0.3, 0.5) }
	cases := []struct {
		name         string
		out, s, grad *matrix.Dense
		want         error
	}{
		{"matrix s", mustDense(t, 2, 2), mustDense(t, 2, 2, 0.25, 0.25, 0.25, 0.25), mustDense(t, 2, 2), matrix.ErrNotVector},
		{"matrix grad", mustDense(t, 3, 2), col(), mustDense(t, 3, 2), matrix.ErrDimensionMismatch},
		{"short grad", mustDense(t, 2, 1), col(), mustDense(t, 2, 1), matrix.ErrDimensionMismatch},
		{"out shape", mustDense(t, 2, 1), col(), mustDense(t, 3, 1), matrix.ErrDimensionMismatch},
		{"out transposed", mustDense(t, 1, 3), col(), mustDense(t, 3, 1), matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := append([]float32(nil), tc.out.Data()...)
			err := matrix.SoftmaxAddGrad(tc.out, tc.s, tc.grad)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, before, tc.out.Data())
		})
	}
}

// TestCrossEntropyAddGrad checks both closed-form partials and nil gating.
func TestCrossEntropyAddGrad(t *testing.T) {
	p := mustDense(t, 1, 2, 1, 0)
	q := mustDense(t, 1, 2, 0.5, 0.25)
	grad := mustDense(t, 1, 2, 2, 2)

	pGrad := mustDense(t, 1, 2, 1, 1)
	qGrad := mustDense(t, 1, 2)
	require.NoError(t, matrix.CrossEntropyAddGrad(pGrad, qGrad, p, q, grad))

	assertClose(t, []float32{1 + 2*float32(math.Ln2), 1 + 2*2*float32(math.Ln2)}, pGrad.Data(), 1e-5)
	assertClose(t, []float32{-4, 0}, qGrad.Data(), tol)

	// Only the q destination.
	onlyQ := mustDense(t, 1, 2)
	require.NoError(t, matrix.CrossEntropyAddGrad(nil, onlyQ, p, q, grad))
	require.Equal(t, qGrad.Data(), onlyQ.Data())

	// Neither destination is a no-op, not an error.
	require.NoError(t, matrix.CrossEntropyAddGrad(nil, nil, p, q, grad))

	require.ErrorIs(t,
		matrix.CrossEntropyAddGrad(mustDense(t, 2, 1), nil, p, q, grad),
		matrix.ErrDimensionMismatch)
}

// TestCrossEntropyAddGrad_FiniteDifference checks dL/dq for L = Σ p·-log(q).
func TestCrossEntropyAddGrad_FiniteDifference(t *testing.T) {
	pv := []float32{0.1, 0.6, 0.3}
	qv := []float32{0.2, 0.5, 0.3}
	const eps = 1e-3

	loss := func(q []float32) float64 {
		out := mustDense(t, 1, 3)
		require.NoError(t, matrix.CrossEntropy(out, mustDense(t, 1, 3, pv...), mustDense(t, 1, 3, q...)))
		return float64(out.Sum())
	}

	qGrad := mustDense(t, 1, 3)
	ones := mustDense(t, 1, 3, 1, 1, 1)
	require.NoError(t, matrix.CrossEntropyAddGrad(nil, qGrad, mustDense(t, 1, 3, pv...), mustDense(t, 1, 3, qv...), ones))

	for j := range qv {
		plus := append([]float32(nil), qv...)
		minus := append([]float32(nil), qv...)
		plus[j] += eps
		minus[j] -= eps
		numeric := (loss(plus) - loss(minus)) / (2 * eps)
		require.InDelta(t, numeric, float64(qGrad.Data()[j]), 1e-2, "component %d", j)
	}
}
