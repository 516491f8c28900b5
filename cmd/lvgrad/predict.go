// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/dataset"
	"github.com/katalvlaran/lvgrad/matrix"
	"github.com/katalvlaran/lvgrad/model"
)

func newPredictCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Train, then render and classify the first test samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, data, err := fit(cmd, o)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i := 0; i < min(o.count, data.TestInputs.Rows()); i++ {
				sample := row(data.TestInputs, i)
				if err := dataset.Render(w, sample, o.width); err != nil {
					return err
				}
				pred, err := model.Predict(ctx, sample)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "     Test sample %d predicted: %d\n\n", i, pred)
			}

			return nil
		},
	}
	bindTraining(cmd.Flags(), o)
	cmd.Flags().IntVar(&o.count, "count", defaultCount, "test samples to classify")

	return cmd
}

// row returns row i of m as a slice aliasing its storage.
func row(m *matrix.Dense, i int) []float32 {
	c := m.Cols()

	return m.Data()[i*c : (i+1)*c]
}
