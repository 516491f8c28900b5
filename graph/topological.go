// SPDX-License-Identifier: MIT
//
// File: topological.go
// Role: linearise the sub-graph reachable from a root into a Program.
//
// Algorithm (iterative DFS, finish-time order):
//   - A work list starts with the root; every node is White.
//   - Popping a White node turns it Gray, re-pushes it, and pushes each White
//     operand after removing any pending occurrence of that operand from the
//     work list (so an operand is never pending twice).
//   - Popping a Gray node finalises it: it turns Black and is appended.
//
// Every node therefore appears after all of its operands. Sibling order is a
// deterministic consequence of the LIFO discipline and operand order, and is
// not part of the contract.
//
// Complexity:
//   - Time O(V·W) in the worst case because of the pending-removal scan
//     (W = work-list length); O(V) memory.

package graph

import (
	"fmt"
	"slices"
)

// Visitation states.
const (
	white = iota // not yet discovered
	gray         // discovered, operands pending
	black        // appended to the order
)

// Program is an immutable, dependency-respecting execution order of node
// indices rooted at one target node. It is a derived view of a Context and
// must be recomputed when the reachable node set changes.
type Program struct {
	order []NodeID
}

// Len returns the number of nodes in the program.
func (p Program) Len() int { return len(p.order) }

// Nodes returns a copy of the execution order.
func (p Program) Nodes() []NodeID { return slices.Clone(p.order) }

// Root returns the final node, or InvalidNode for an empty program.
func (p Program) Root() NodeID {
	if len(p.order) == 0 {
		return InvalidNode
	}

	return p.order[len(p.order)-1]
}

// Position returns the index of id in the order, or -1.
func (p Program) Position(id NodeID) int { return slices.Index(p.order, id) }

// Contains reports whether id is part of the program.
func (p Program) Contains(id NodeID) bool { return p.Position(id) >= 0 }

// Program compiles the sub-graph reachable from root.
//
// Errors:
//   - ErrUnknownNode if root is not in the arena.
func (c *Context) Program(root NodeID) (Program, error) {
	if _, err := c.Node(root); err != nil {
		return Program{}, fmt.Errorf("Program: %w", err)
	}

	state := make([]uint8, len(c.nodes))
	stack := []NodeID{root}
	order := make([]NodeID, 0, int(root)+1)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if state[cur] == gray {
			state[cur] = black
			order = append(order, cur)
			continue
		}

		state[cur] = gray
		stack = append(stack, cur)

		n := c.nodes[cur]
		for _, in := range n.inputs[:n.op.Arity()] {
			if state[in] != white {
				continue
			}
			if i := slices.Index(stack, in); i >= 0 {
				stack = slices.Delete(stack, i, i+1)
			}
			stack = append(stack, in)
		}
	}

	return Program{order: order}, nil
}

// Compile recomputes the forward Program (rooted at the output node) and,
// when a cost node is designated, the cost Program.
//
// Errors:
//   - ErrNoOutput when no node carries FlagOutput.
func (c *Context) Compile() error {
	out, ok := c.Output()
	if !ok {
		return fmt.Errorf("Compile: %w", ErrNoOutput)
	}
	fwd, err := c.Program(out)
	if err != nil {
		return fmt.Errorf("Compile: forward: %w", err)
	}

	var cost Program
	if id, ok := c.Cost(); ok {
		if cost, err = c.Program(id); err != nil {
			return fmt.Errorf("Compile: cost: %w", err)
		}
	}

	c.forward, c.cost, c.compiled = fwd, cost, true

	return nil
}

// Compiled reports whether the cached Programs reflect the current roles.
func (c *Context) Compiled() bool { return c.compiled }

// ForwardProgram returns the cached forward Program.
func (c *Context) ForwardProgram() (Program, error) {
	if !c.compiled {
		return Program{}, ErrNotCompiled
	}

	return c.forward, nil
}

// CostProgram returns the cached cost Program; it is empty when the graph has
// no cost node.
func (c *Context) CostProgram() (Program, error) {
	if !c.compiled {
		return Program{}, ErrNotCompiled
	}

	return c.cost, nil
}
