// SPDX-License-Identifier: MIT
//
// File: executor.go
// Role: interpret a Program forwards (values) and backwards (gradients).

package graph

import "fmt"

const (
	stageForward  = "Evaluate"
	stageBackward = "AccumulateGradients"
)

// Evaluate runs the forward pass over p in order. Leaves are skipped: their
// values must be populated beforehand. Each op node overwrites its value.
//
// Errors:
//   - ErrUnknownNode for a Program that does not belong to c.
//   - Kernel errors wrapped with the failing node index and op.
func (c *Context) Evaluate(p Program) error {
	if err := c.checkProgram(p); err != nil {
		return fmt.Errorf("%s: %w", stageForward, err)
	}
	for _, id := range p.order {
		n := c.nodes[id]
		if n.op == OpCreate {
			continue
		}
		a, b := c.operands(n)
		if err := opTable[n.op].forward(n, a, b); err != nil {
			return nodeErrorf(stageForward, n, err)
		}
	}

	return nil
}

// AccumulateGradients runs the backward pass over p.
//
// Implementation:
//   - Stage 1: clear the gradient of every non-parameter node in p that
//     requires one. Parameter gradients persist so repeated calls within a
//     batch accumulate.
//   - Stage 2: seed the root's gradient with ones.
//   - Stage 3: walk p in reverse; a node that requires gradients and has at
//     least one operand that does dispatches its backward kernel, which only
//     writes into operands that track gradients.
//
// Errors:
//   - ErrEmptyProgram, ErrRootNotDifferentiable, ErrUnknownNode.
//   - Kernel errors wrapped with the failing node index and op.
func (c *Context) AccumulateGradients(p Program) error {
	if err := c.checkProgram(p); err != nil {
		return fmt.Errorf("%s: %w", stageBackward, err)
	}
	if p.Len() == 0 {
		return fmt.Errorf("%s: %w", stageBackward, ErrEmptyProgram)
	}
	root := c.nodes[p.Root()]
	if !root.RequiresGrad() {
		return nodeErrorf(stageBackward, root, ErrRootNotDifferentiable)
	}

	// Stage 1
	for _, id := range p.order {
		n := c.nodes[id]
		if n.RequiresGrad() && !n.IsParameter() {
			n.grad.Clear()
		}
	}

	// Stage 2
	root.grad.Fill(1)

	// Stage 3
	for i := len(p.order) - 1; i >= 0; i-- {
		n := c.nodes[p.order[i]]
		if !n.RequiresGrad() || n.op == OpCreate {
			continue
		}
		a, b := c.operands(n)
		if !a.RequiresGrad() && (b == nil || !b.RequiresGrad()) {
			continue
		}
		if err := opTable[n.op].backward(n, a, b); err != nil {
			return nodeErrorf(stageBackward, n, err)
		}
	}

	return nil
}

// Feedforward evaluates the cached forward Program.
func (c *Context) Feedforward() error {
	p, err := c.ForwardProgram()
	if err != nil {
		return fmt.Errorf("Feedforward: %w", err)
	}

	return c.Evaluate(p)
}

// operands resolves the operand nodes of n; b is nil for unary ops.
func (c *Context) operands(n *Node) (a, b *Node) {
	switch n.op.Arity() {
	case 2:
		return c.nodes[n.inputs[0]], c.nodes[n.inputs[1]]
	case 1:
		return c.nodes[n.inputs[0]], nil
	default:
		return nil, nil
	}
}

// checkProgram rejects Programs referencing nodes outside this arena.
func (c *Context) checkProgram(p Program) error {
	for _, id := range p.order {
		if id < 0 || int(id) >= len(c.nodes) {
			return fmt.Errorf("%w: %d", ErrUnknownNode, id)
		}
	}

	return nil
}
