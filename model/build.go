// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: concrete classifier topologies.
//
// Contract:
//   - spec must validate; src must be non-nil (ErrNeedRandSource).
//   - Parameters are created in a fixed order (weights before biases within a
//     layer, layers input to output), so the same seed gives the same init.
//   - The returned Context is compiled.

package model

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/graph"
	"github.com/katalvlaran/lvgrad/prng"
)

const (
	methodBuild    = "Build"
	methodBuildMLP = "BuildMLP"
)

// Build returns the residual classifier described in the package doc.
func Build(spec Spec, src prng.Source) (*graph.Context, error) {
	return assemble(methodBuild, spec, src, func(b *layerBuilder, x graph.NodeID) graph.NodeID {
		a0 := b.relu(b.affine(x, spec.Inputs, spec.Hidden))
		z1 := b.relu(b.affine(a0, spec.Hidden, spec.Hidden))
		a1 := b.do(func() (graph.NodeID, error) { return b.ctx.Add(a0, z1, graph.FlagNone) })

		return b.affine(a1, spec.Hidden, spec.Outputs)
	})
}

// BuildMLP returns a classifier with one hidden ReLU layer.
func BuildMLP(spec Spec, src prng.Source) (*graph.Context, error) {
	return assemble(methodBuildMLP, spec, src, func(b *layerBuilder, x graph.NodeID) graph.NodeID {
		h := b.relu(b.affine(x, spec.Inputs, spec.Hidden))

		return b.affine(h, spec.Hidden, spec.Outputs)
	})
}

// assemble creates the input leaf, lets body produce the logits, then adds
// the softmax output, the desired-output leaf and the cost, and compiles.
func assemble(method string, spec Spec, src prng.Source, body func(*layerBuilder, graph.NodeID) graph.NodeID) (*graph.Context, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	b := &layerBuilder{ctx: graph.NewContext(), src: src}
	x := b.leaf(spec.Inputs, 1, graph.FlagInput)
	logits := body(b, x)
	out := b.do(func() (graph.NodeID, error) { return b.ctx.Softmax(logits, graph.FlagOutput) })
	y := b.leaf(spec.Outputs, 1, graph.FlagDesiredOutput)
	b.do(func() (graph.NodeID, error) { return b.ctx.CrossEntropy(y, out, graph.FlagCost) })
	if b.err != nil {
		return nil, fmt.Errorf("%s: %w", method, b.err)
	}
	if err := b.ctx.Compile(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return b.ctx, nil
}
