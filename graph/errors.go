// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownNode indicates a NodeID that does not belong to this Context.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrShapeMismatch indicates that operand shapes are incompatible with the
	// requested operation. No node is created.
	ErrShapeMismatch = errors.New("graph: operand shape mismatch")

	// ErrInvalidFlags indicates a flag combination the engine cannot honour,
	// e.g. a parameter that does not require gradients.
	ErrInvalidFlags = errors.New("graph: invalid node flags")

	// ErrNoOutput is returned by Compile when no node carries FlagOutput.
	ErrNoOutput = errors.New("graph: no output node designated")

	// ErrNotCompiled is returned when a cached Program is needed but Compile
	// has not run since the last role change.
	ErrNotCompiled = errors.New("graph: context not compiled")

	// ErrEmptyProgram is returned when a backward pass is requested on a
	// Program without nodes.
	ErrEmptyProgram = errors.New("graph: empty program")

	// ErrRootNotDifferentiable is returned when the final node of a Program
	// has no gradient buffer to seed.
	ErrRootNotDifferentiable = errors.New("graph: program root does not require gradients")
)

// nodeErrorf wraps err with the node index and op that produced it.
func nodeErrorf(stage string, n *Node, err error) error {
	return fmt.Errorf("%s: node %d (%s): %w", stage, n.index, n.op, err)
}
