// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: closed set of operation kinds and their kernel table.
//
// Every Op except OpCreate owns exactly one opSpec holding its shape rule,
// its forward kernel and its backward kernel, so the three stay co-located.
// TestOpTableExhaustive keeps the table complete.

package graph

import "github.com/katalvlaran/lvgrad/matrix"

// Op is the operation tag of a Node.
type Op uint8

const (
	// OpCreate marks a leaf populated externally.
	OpCreate Op = iota
	OpRelu
	OpSoftmax
	OpAdd
	OpSub
	OpMatmul
	OpCrossEntropy

	numOps
)

var opNames = [numOps]string{"Create", "Relu", "Softmax", "Add", "Sub", "Matmul", "CrossEntropy"}

// String returns the op name.
func (o Op) String() string {
	if o >= numOps {
		return "Unknown"
	}

	return opNames[o]
}

// Arity returns the operand count: 0 for leaves, 1 for unary, 2 for binary ops.
func (o Op) Arity() int {
	switch o {
	case OpRelu, OpSoftmax:
		return 1
	case OpAdd, OpSub, OpMatmul, OpCrossEntropy:
		return 2
	default:
		return 0
	}
}

// opSpec bundles everything the engine knows about one op kind.
type opSpec struct {
	// shape returns the output shape for the operand values, or ErrShapeMismatch.
	shape func(a, b *matrix.Dense) (rows, cols int, err error)
	// forward overwrites n.value from its operands.
	forward func(n *Node, a, b *Node) error
	// backward accumulates n.grad into the operands that require gradients.
	backward func(n *Node, a, b *Node) error
}

// opTable is indexed by Op. OpCreate has no entry: leaves never execute.
var opTable = [numOps]opSpec{
	OpRelu: {
		shape:    sameAsFirst,
		forward:  func(n, a, _ *Node) error { return matrix.ReLU(n.value, a.value) },
		backward: func(n, a, _ *Node) error { return matrix.ReLUAddGrad(a.grad, a.value, n.grad) },
	},
	OpSoftmax: {
		shape:    sameAsFirst,
		forward:  func(n, a, _ *Node) error { return matrix.Softmax(n.value, a.value) },
		backward: func(n, a, _ *Node) error { return matrix.SoftmaxAddGrad(a.grad, n.value, n.grad) },
	},
	OpAdd: {
		shape:    sameShape,
		forward:  func(n, a, b *Node) error { return matrix.Add(n.value, a.value, b.value) },
		backward: backwardAdd,
	},
	OpSub: {
		shape:    sameShape,
		forward:  func(n, a, b *Node) error { return matrix.Sub(n.value, a.value, b.value) },
		backward: backwardSub,
	},
	OpMatmul: {
		shape:    matmulShape,
		forward:  func(n, a, b *Node) error { return matrix.Mul(n.value, a.value, b.value, true, false, false) },
		backward: backwardMatmul,
	},
	OpCrossEntropy: {
		shape:    sameShape,
		forward:  func(n, a, b *Node) error { return matrix.CrossEntropy(n.value, a.value, b.value) },
		backward: backwardCrossEntropy,
	},
}

// ---------- shape rules ----------

func sameAsFirst(a, _ *matrix.Dense) (int, int, error) {
	r, c := a.Shape()
	return r, c, nil
}

func sameShape(a, b *matrix.Dense) (int, int, error) {
	if !a.SameShape(b) {
		return 0, 0, ErrShapeMismatch
	}
	r, c := a.Shape()

	return r, c, nil
}

// matmulShape applies no implicit transpose: a.cols must equal b.rows.
func matmulShape(a, b *matrix.Dense) (int, int, error) {
	if a.Cols() != b.Rows() {
		return 0, 0, ErrShapeMismatch
	}

	return a.Rows(), b.Cols(), nil
}

// ---------- backward kernels ----------

func backwardAdd(n, a, b *Node) error {
	if a.RequiresGrad() {
		if err := matrix.Add(a.grad, a.grad, n.grad); err != nil {
			return err
		}
	}
	if b.RequiresGrad() {
		return matrix.Add(b.grad, b.grad, n.grad)
	}

	return nil
}

func backwardSub(n, a, b *Node) error {
	if a.RequiresGrad() {
		if err := matrix.Add(a.grad, a.grad, n.grad); err != nil {
			return err
		}
	}
	if b.RequiresGrad() {
		return matrix.Sub(b.grad, b.grad, n.grad)
	}

	return nil
}

// backwardMatmul routes dL/dA = G·Bᵀ and dL/dB = Aᵀ·G, accumulating.
func backwardMatmul(n, a, b *Node) error {
	if a.RequiresGrad() {
		if err := matrix.Mul(a.grad, n.grad, b.value, false, false, true); err != nil {
			return err
		}
	}
	if b.RequiresGrad() {
		return matrix.Mul(b.grad, a.value, n.grad, false, true, false)
	}

	return nil
}

func backwardCrossEntropy(n, p, q *Node) error {
	return matrix.CrossEntropyAddGrad(gradIfTracked(p), gradIfTracked(q), p.value, q.value, n.grad)
}

// gradIfTracked returns n.grad for nodes that require gradients, else nil.
func gradIfTracked(n *Node) *matrix.Dense {
	if !n.RequiresGrad() {
		return nil
	}

	return n.grad
}
