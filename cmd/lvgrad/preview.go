// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/dataset"
	"github.com/katalvlaran/lvgrad/matrix"
)

func newPreviewCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the first test samples with their labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := dataset.LoadSplit(o.dataDir, o.split, o.logger(cmd))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			label, err := matrix.New(1, data.TestLabels.Cols())
			if err != nil {
				return err
			}
			for i := 0; i < min(o.count, data.TestInputs.Rows()); i++ {
				if err := dataset.Render(w, row(data.TestInputs, i), o.width); err != nil {
					return err
				}
				if err := label.CopyRow(data.TestLabels, i); err != nil {
					return err
				}
				fmt.Fprintf(w, "     Test sample %d label: %d\n\n", i, label.Argmax())
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&o.count, "count", defaultCount, "test samples to render")

	return cmd
}
