// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/matrix"
)

// Data holds one sample per row. Inputs and labels of a pair must have equal
// row counts; the test pair may be left nil to skip per-epoch evaluation.
type Data struct {
	TrainInputs *matrix.Dense
	TrainLabels *matrix.Dense
	TestInputs  *matrix.Dense
	TestLabels  *matrix.Dense
}

// HasTest reports whether a test pair is present.
func (d Data) HasTest() bool { return d.TestInputs != nil || d.TestLabels != nil }

// validate checks both pairs against the graph leaf sizes.
func (d Data) validate(inputLen, labelLen int) error {
	if err := validatePair("train", d.TrainInputs, d.TrainLabels, inputLen, labelLen); err != nil {
		return err
	}
	if !d.HasTest() {
		return nil
	}

	return validatePair("test", d.TestInputs, d.TestLabels, inputLen, labelLen)
}

func validatePair(name string, inputs, labels *matrix.Dense, inputLen, labelLen int) error {
	switch {
	case inputs == nil || labels == nil:
		return fmt.Errorf("%w: %s set needs both inputs and labels", ErrDataShape, name)
	case inputs.Rows() != labels.Rows():
		return fmt.Errorf("%w: %s set has %d inputs but %d labels",
			ErrDataShape, name, inputs.Rows(), labels.Rows())
	case inputs.Cols() != inputLen:
		return fmt.Errorf("%w: %s inputs have %d columns, input node holds %d",
			ErrDataShape, name, inputs.Cols(), inputLen)
	case labels.Cols() != labelLen:
		return fmt.Errorf("%w: %s labels have %d columns, desired-output node holds %d",
			ErrDataShape, name, labels.Cols(), labelLen)
	}

	return nil
}
