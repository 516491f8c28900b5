// SPDX-License-Identifier: MIT
//
// File: layers.go
// Role: parameter initialisation and the affine building block.
//
// layerBuilder carries the first construction error so topology code reads
// as a straight sequence of layers; every method is a no-op once err is set.

package model

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvgrad/graph"
	"github.com/katalvlaran/lvgrad/prng"
)

const paramFlags = graph.FlagRequiresGrad | graph.FlagParameter

type layerBuilder struct {
	ctx *graph.Context
	src prng.Source
	err error
}

// leaf creates an externally populated node.
func (b *layerBuilder) leaf(rows, cols int, flags graph.Flags) graph.NodeID {
	return b.do(func() (graph.NodeID, error) { return b.ctx.CreateNode(rows, cols, flags) })
}

// weight creates an out×in parameter with Glorot-uniform values.
func (b *layerBuilder) weight(out, in int) graph.NodeID {
	id := b.leaf(out, in, paramFlags)
	if b.err == nil {
		bound := glorotBound(in, out)
		b.ctx.MustNode(id).Value().FillRand(b.src, -bound, bound)
	}

	return id
}

// affine appends W·x + bias for a fresh out×len(x) weight and zero bias.
func (b *layerBuilder) affine(x graph.NodeID, in, out int) graph.NodeID {
	w := b.weight(out, in)
	bias := b.leaf(out, 1, paramFlags)
	wx := b.do(func() (graph.NodeID, error) { return b.ctx.Matmul(w, x, graph.FlagNone) })

	return b.do(func() (graph.NodeID, error) { return b.ctx.Add(wx, bias, graph.FlagNone) })
}

func (b *layerBuilder) relu(x graph.NodeID) graph.NodeID {
	return b.do(func() (graph.NodeID, error) { return b.ctx.Relu(x, graph.FlagNone) })
}

func (b *layerBuilder) do(fn func() (graph.NodeID, error)) graph.NodeID {
	if b.err != nil {
		return graph.InvalidNode
	}
	id, err := fn()
	if err != nil {
		b.err = err
		return graph.InvalidNode
	}

	return id
}

// glorotBound returns sqrt(6 / (fanIn + fanOut)).
func glorotBound(fanIn, fanOut int) float32 {
	return math32.Sqrt(6 / float32(fanIn+fanOut))
}
