// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/graph"
)

// ExampleContext_AccumulateGradients builds y = relu(W·x), runs it forwards
// and backwards, and prints dΣy/dW.
func ExampleContext_AccumulateGradients() {
	c := graph.NewContext()
	x, _ := c.CreateNode(2, 1, graph.FlagInput)
	w, _ := c.CreateNode(1, 2, graph.FlagRequiresGrad|graph.FlagParameter)
	copy(c.MustNode(x).Value().Data(), []float32{1, 3})
	copy(c.MustNode(w).Value().Data(), []float32{2, -0.5})

	wx, _ := c.Matmul(w, x, graph.FlagNone)
	y, _ := c.Relu(wx, graph.FlagOutput)
	if err := c.Compile(); err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := c.ForwardProgram()
	fmt.Println("order:", p.Nodes())

	_ = c.Evaluate(p)
	fmt.Print("y: ", c.MustNode(y).Value())

	_ = c.AccumulateGradients(p)
	fmt.Print("dW: ", c.MustNode(w).Grad())

	// Output:
	// order: [0 1 2 3]
	// y: [0.5]
	// dW: [1, 3]
}
