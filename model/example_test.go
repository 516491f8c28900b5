// SPDX-License-Identifier: MIT

package model_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/model"
	"github.com/katalvlaran/lvgrad/prng"
)

// ExampleBuild assembles the residual classifier and lists its parameters.
func ExampleBuild() {
	c, err := model.Build(model.Spec{Inputs: 784, Hidden: 16, Outputs: 10}, prng.New(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range c.Parameters() {
		r, cols := c.MustNode(id).Value().Shape()
		fmt.Printf("%d×%d\n", r, cols)
	}

	// Output:
	// 16×784
	// 16×1
	// 16×16
	// 16×1
	// 10×16
	// 10×1
}
