// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/graph"
)

// Predict copies sample into the input node, runs the forward program and
// returns the index of the largest output. ctx must be compiled.
//
// Errors:
//   - ErrSampleLength, graph.ErrNotCompiled, a missing input or output role
//     (graph.ErrNoOutput), executor errors.
func Predict(ctx *graph.Context, sample []float32) (int, error) {
	in, ok := ctx.Input()
	if !ok {
		return -1, fmt.Errorf("Predict: no input node: %w", graph.ErrUnknownNode)
	}
	out, ok := ctx.Output()
	if !ok {
		return -1, fmt.Errorf("Predict: %w", graph.ErrNoOutput)
	}

	dst := ctx.MustNode(in).Value().Data()
	if len(sample) != len(dst) {
		return -1, fmt.Errorf("Predict: got %d values, input holds %d: %w", len(sample), len(dst), ErrSampleLength)
	}
	copy(dst, sample)
	if err := ctx.Feedforward(); err != nil {
		return -1, fmt.Errorf("Predict: %w", err)
	}

	return ctx.MustNode(out).Value().Argmax(), nil
}
