// SPDX-License-Identifier: MIT
//
// File: context.go
// Role: the node arena and its construction API.
// Policy:
//   - The Context is the sole owner of node storage and of index assignment.
//   - Operands are referenced by NodeID; only earlier nodes can be referenced,
//     which keeps the graph acyclic without any check at compile time.
//   - Failed construction never appends a node.

package graph

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvgrad/matrix"
)

// Context owns a computation graph: the node arena, the role designations
// and the two cached Programs (forward and cost).
//
// A Context is not safe for concurrent use.
type Context struct {
	nodes []*Node
	roles [numRoles]NodeID

	forward  Program
	cost     Program
	compiled bool
}

// NewContext returns an empty Context with no roles designated.
func NewContext() *Context {
	c := &Context{}
	for r := range c.roles {
		c.roles[r] = InvalidNode
	}

	return c
}

// Len returns the number of nodes in the arena.
func (c *Context) Len() int { return len(c.nodes) }

// Node returns the node with the given id.
func (c *Context) Node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(c.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return c.nodes[id], nil
}

// MustNode is Node for ids the caller obtained from this Context; it panics
// on an unknown id, which is a programmer error.
func (c *Context) MustNode(id NodeID) *Node {
	n, err := c.Node(id)
	if err != nil {
		panic(err)
	}

	return n
}

// Role returns the node designated for r, if any. When several nodes carry
// the same role flag, the most recently created one wins.
func (c *Context) Role(r Role) (NodeID, bool) {
	if r >= numRoles {
		return InvalidNode, false
	}
	id := c.roles[r]

	return id, id != InvalidNode
}

// Input returns the designated input leaf.
func (c *Context) Input() (NodeID, bool) { return c.Role(RoleInput) }

// Output returns the designated output node.
func (c *Context) Output() (NodeID, bool) { return c.Role(RoleOutput) }

// DesiredOutput returns the designated label leaf.
func (c *Context) DesiredOutput() (NodeID, bool) { return c.Role(RoleDesiredOutput) }

// Cost returns the designated cost node.
func (c *Context) Cost() (NodeID, bool) { return c.Role(RoleCost) }

// Parameters returns the ids of all parameter nodes in creation order.
func (c *Context) Parameters() []NodeID {
	params := lo.Filter(c.nodes, func(n *Node, _ int) bool { return n.IsParameter() })

	return lo.Map(params, func(n *Node, _ int) NodeID { return n.index })
}

// CreateNode appends a leaf of shape rows×cols.
//
// Behavior highlights:
//   - The gradient buffer is allocated iff FlagRequiresGrad is set.
//   - FlagParameter without FlagRequiresGrad is rejected with ErrInvalidFlags.
//   - Role flags (input, output, desired-output, cost) designate the node on
//     the Context.
//
// Errors:
//   - ErrInvalidFlags, matrix.ErrInvalidDimensions.
func (c *Context) CreateNode(rows, cols int, flags Flags) (NodeID, error) {
	if flags.Has(FlagParameter) && !flags.Has(FlagRequiresGrad) {
		return InvalidNode, fmt.Errorf("CreateNode: parameter without gradient: %w", ErrInvalidFlags)
	}

	n, err := c.newNode(rows, cols, flags, OpCreate)
	if err != nil {
		return InvalidNode, fmt.Errorf("CreateNode: %w", err)
	}

	return n.index, nil
}

// Relu appends max(0, a).
func (c *Context) Relu(a NodeID, flags Flags) (NodeID, error) {
	return c.compose(OpRelu, flags, a)
}

// Softmax appends softmax(a), normalising over all elements of a.
func (c *Context) Softmax(a NodeID, flags Flags) (NodeID, error) {
	return c.compose(OpSoftmax, flags, a)
}

// Add appends a + b. Shapes must be identical.
func (c *Context) Add(a, b NodeID, flags Flags) (NodeID, error) {
	return c.compose(OpAdd, flags, a, b)
}

// Sub appends a - b. Shapes must be identical.
func (c *Context) Sub(a, b NodeID, flags Flags) (NodeID, error) {
	return c.compose(OpSub, flags, a, b)
}

// Matmul appends a·b. a.cols must equal b.rows; no implicit transpose.
func (c *Context) Matmul(a, b NodeID, flags Flags) (NodeID, error) {
	return c.compose(OpMatmul, flags, a, b)
}

// CrossEntropy appends p * -log(q). Shapes must be identical.
func (c *Context) CrossEntropy(p, q NodeID, flags Flags) (NodeID, error) {
	return c.compose(OpCrossEntropy, flags, p, q)
}

// compose validates operands and shapes, then appends an op node whose
// FlagRequiresGrad is the OR of the caller's flags and its operands'.
func (c *Context) compose(op Op, flags Flags, operands ...NodeID) (NodeID, error) {
	if flags.Has(FlagParameter) {
		return InvalidNode, fmt.Errorf("%s: parameters must be leaves: %w", op, ErrInvalidFlags)
	}

	var in [maxInputs]*Node
	for i, id := range operands {
		n, err := c.Node(id)
		if err != nil {
			return InvalidNode, fmt.Errorf("%s: operand %d: %w", op, i, err)
		}
		in[i] = n
		if n.RequiresGrad() {
			flags |= FlagRequiresGrad
		}
	}

	var bVal *matrix.Dense
	if in[1] != nil {
		bVal = in[1].value
	}
	rows, cols, err := opTable[op].shape(in[0].value, bVal)
	if err != nil {
		return InvalidNode, fmt.Errorf("%s: %w", op, err)
	}

	n, err := c.newNode(rows, cols, flags, op)
	if err != nil {
		return InvalidNode, fmt.Errorf("%s: %w", op, err)
	}
	copy(n.inputs[:], operands)

	return n.index, nil
}

// newNode allocates buffers, appends the node and records its roles.
func (c *Context) newNode(rows, cols int, flags Flags, op Op) (*Node, error) {
	value, err := matrix.New(rows, cols)
	if err != nil {
		return nil, err
	}
	n := &Node{
		index:  NodeID(len(c.nodes)),
		flags:  flags,
		op:     op,
		value:  value,
		inputs: [maxInputs]NodeID{InvalidNode, InvalidNode},
	}
	if flags.Has(FlagRequiresGrad) {
		// Same shape as value; cannot fail once value succeeded.
		n.grad, _ = matrix.New(rows, cols)
	}

	c.nodes = append(c.nodes, n)
	for r, f := range roleFlags {
		if flags.Has(f) {
			c.roles[r] = n.index
			c.compiled = false
		}
	}

	return n, nil
}
