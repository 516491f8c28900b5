// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvgrad/dataset"
	"github.com/katalvlaran/lvgrad/model"
	"github.com/katalvlaran/lvgrad/prng"
	"github.com/katalvlaran/lvgrad/train"
)

// Flag defaults mirror the library defaults.
const (
	defaultDataDir = "."
	defaultCount   = 10
	defaultWidth   = 28
)

// options is filled by pflag and shared by all subcommands.
type options struct {
	dataDir string
	split   dataset.SplitSpec
	hidden  int

	epochs    int
	batchSize int
	lr        float32
	seed      uint64

	count   int
	width   int
	verbose bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "lvgrad",
		Short:         "Train a small classifier with reverse-mode autodiff",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindData(root.PersistentFlags(), o)

	root.AddCommand(newTrainCmd(o), newPredictCmd(o), newPreviewCmd(o))

	return root
}

// bindData registers the flags every subcommand needs.
func bindData(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.dataDir, "data", defaultDataDir, "directory holding the four .mat files")
	fs.IntVar(&o.split.TrainSamples, "train-samples", dataset.MNIST.TrainSamples, "rows in the training files")
	fs.IntVar(&o.split.TestSamples, "test-samples", dataset.MNIST.TestSamples, "rows in the test files")
	fs.IntVar(&o.split.Features, "features", dataset.MNIST.Features, "values per sample")
	fs.IntVar(&o.split.Classes, "classes", dataset.MNIST.Classes, "number of label classes")
	fs.IntVar(&o.width, "width", defaultWidth, "preview row width in samples values")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log per-batch progress")
}

// bindTraining registers hyper-parameter flags.
func bindTraining(fs *pflag.FlagSet, o *options) {
	fs.IntVar(&o.epochs, "epochs", train.DefaultEpochs, "passes over the training set")
	fs.IntVar(&o.batchSize, "batch-size", train.DefaultBatchSize, "samples per parameter update")
	fs.Float32Var(&o.lr, "lr", train.DefaultLearningRate, "learning rate")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (unset: seeded from the clock)")
	fs.IntVar(&o.hidden, "hidden", model.MNIST.Hidden, "hidden layer width")
}

// logger builds the text handler on the command's stderr.
func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// source honours --seed only when it was given explicitly.
func (o *options) source(cmd *cobra.Command) prng.Source {
	if cmd.Flags().Changed("seed") {
		return prng.New(o.seed)
	}

	return prng.NewFromTime()
}
