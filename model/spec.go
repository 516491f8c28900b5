// SPDX-License-Identifier: MIT

package model

import "fmt"

// Spec fixes the layer widths of a classifier.
type Spec struct {
	Inputs  int
	Hidden  int
	Outputs int
}

// MNIST is the 784 → 16 → 16 → 10 topology trained by the CLI by default.
var MNIST = Spec{Inputs: 784, Hidden: 16, Outputs: 10}

// Validate reports ErrTooFewUnits for any width below one.
func (s Spec) Validate() error {
	for _, w := range []struct {
		name string
		n    int
	}{{"inputs", s.Inputs}, {"hidden", s.Hidden}, {"outputs", s.Outputs}} {
		if w.n < 1 {
			return fmt.Errorf("%s=%d: %w", w.name, w.n, ErrTooFewUnits)
		}
	}

	return nil
}
