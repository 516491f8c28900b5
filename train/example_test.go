// SPDX-License-Identifier: MIT

package train_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvgrad/matrix"
	"github.com/katalvlaran/lvgrad/model"
	"github.com/katalvlaran/lvgrad/prng"
	"github.com/katalvlaran/lvgrad/train"
)

// ExampleTrainer_Fit wires a model, a seeded source and a logger into a
// Trainer. Progress is logged as structured records on stderr.
func ExampleTrainer_Fit() {
	src := prng.New(1)
	ctx, err := model.BuildMLP(model.Spec{Inputs: 2, Hidden: 8, Outputs: 2}, src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	tr, err := train.New(ctx, src,
		train.WithEpochs(50), train.WithBatchSize(2), train.WithLearningRate(0.5),
		train.WithLogger(logger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inputs, _ := matrix.NewFromSlice(4, 2, []float32{1, 0, 0, 1, 0.8, 0.1, 0.2, 0.9})
	labels, _ := matrix.NewFromSlice(4, 2, []float32{1, 0, 0, 1, 1, 0, 0, 1})
	h, err := tr.Fit(train.Data{TrainInputs: inputs, TrainLabels: labels, TestInputs: inputs, TestLabels: labels})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last, _ := h.Last()
	fmt.Printf("epochs=%d accuracy=%.2f\n", len(h.Epochs), last.Test.Accuracy())
}
