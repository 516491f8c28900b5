// SPDX-License-Identifier: MIT

package graph

import "github.com/katalvlaran/lvgrad/matrix"

// NodeID is the stable arena index of a Node inside its Context.
type NodeID int

// InvalidNode is returned alongside every construction error.
const InvalidNode NodeID = -1

// maxInputs is the largest operand count of any Op.
const maxInputs = 2

// Flags is the per-node bit set.
type Flags uint32

const (
	// FlagNone marks a plain node.
	FlagNone Flags = 0

	// FlagRequiresGrad allocates a gradient buffer and makes the node take part
	// in backward passes. Composed nodes inherit it from any operand.
	FlagRequiresGrad Flags = 1 << (iota - 1)

	// FlagParameter marks a learned leaf; its gradient persists across the
	// backward passes of one batch. Requires FlagRequiresGrad.
	FlagParameter

	// FlagInput designates the sample input leaf.
	FlagInput

	// FlagOutput designates the network output.
	FlagOutput

	// FlagDesiredOutput designates the label leaf.
	FlagDesiredOutput

	// FlagCost designates the cost node.
	FlagCost
)

// Has reports whether all bits of x are set in f.
func (f Flags) Has(x Flags) bool { return f&x == x }

// Role is a single-node designation held by the Context.
type Role uint8

const (
	// RoleInput is the leaf that receives one sample's features.
	RoleInput Role = iota
	// RoleOutput is the node whose value is the model's prediction.
	RoleOutput
	// RoleDesiredOutput is the leaf that receives one sample's label.
	RoleDesiredOutput
	// RoleCost is the scalar-valued root of backpropagation.
	RoleCost

	numRoles
)

var roleNames = [numRoles]string{"input", "output", "desired-output", "cost"}

// String returns the role name.
func (r Role) String() string {
	if r >= numRoles {
		return "unknown"
	}

	return roleNames[r]
}

// roleFlags maps each role to the flag that designates it.
var roleFlags = [numRoles]Flags{FlagInput, FlagOutput, FlagDesiredOutput, FlagCost}

// Node is one vertex of the computation graph.
//
// The value buffer is always present; the gradient buffer exists iff the node
// requires gradients and has the same shape. Operands are arena indices of
// nodes created strictly earlier, so the graph is acyclic by construction.
type Node struct {
	index  NodeID
	flags  Flags
	op     Op
	value  *matrix.Dense
	grad   *matrix.Dense
	inputs [maxInputs]NodeID
}

// Index returns the node's arena position.
func (n *Node) Index() NodeID { return n.index }

// Flags returns the node's flag set.
func (n *Node) Flags() Flags { return n.flags }

// Op returns the operation tag.
func (n *Node) Op() Op { return n.op }

// Value returns the value buffer. Leaves are populated through it.
func (n *Node) Value() *matrix.Dense { return n.value }

// Grad returns the gradient buffer, or nil when the node does not require one.
func (n *Node) Grad() *matrix.Dense { return n.grad }

// RequiresGrad reports whether the node takes part in backward passes.
func (n *Node) RequiresGrad() bool { return n.flags.Has(FlagRequiresGrad) }

// IsParameter reports whether the node is a learned leaf.
func (n *Node) IsParameter() bool { return n.flags.Has(FlagParameter) }

// Inputs returns the operand indices (length equals Op().Arity()).
func (n *Node) Inputs() []NodeID {
	out := make([]NodeID, n.op.Arity())
	copy(out, n.inputs[:])

	return out
}
