// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/dataset"
	"github.com/katalvlaran/lvgrad/graph"
	"github.com/katalvlaran/lvgrad/model"
	"github.com/katalvlaran/lvgrad/train"
)

func newTrainCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the residual classifier and report test accuracy per epoch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, err := fit(cmd, o)

			return err
		},
	}
	bindTraining(cmd.Flags(), o)

	return cmd
}

// fit loads the split, builds the model and trains it, printing the final
// epoch summary on stdout.
func fit(cmd *cobra.Command, o *options) (*graph.Context, train.Data, error) {
	logger := o.logger(cmd)
	data, err := dataset.LoadSplit(o.dataDir, o.split, logger)
	if err != nil {
		return nil, train.Data{}, err
	}

	src := o.source(cmd)
	ctx, err := model.Build(model.Spec{Inputs: o.split.Features, Hidden: o.hidden, Outputs: o.split.Classes}, src)
	if err != nil {
		return nil, train.Data{}, err
	}
	if pred, err := model.Predict(ctx, row(data.TestInputs, 0)); err == nil {
		out, _ := ctx.Output()
		logger.Info("pre-training output",
			slog.Int("prediction", pred),
			slog.Any("probabilities", ctx.MustNode(out).Value().Data()))
	}

	tr, err := train.New(ctx, src,
		train.WithEpochs(o.epochs),
		train.WithBatchSize(o.batchSize),
		train.WithLearningRate(o.lr),
		train.WithLogger(logger))
	if err != nil {
		return nil, train.Data{}, err
	}
	h, err := tr.Fit(data)
	if err != nil {
		return nil, train.Data{}, err
	}

	if last, ok := h.Last(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Accuracy: %d / %d (%.1f%%), Average Cost: %.4f\n",
			last.Test.Correct, last.Test.Total, 100*last.Test.Accuracy(), last.Test.Cost)
	}

	return ctx, data, nil
}
