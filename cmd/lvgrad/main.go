// SPDX-License-Identifier: MIT

// Command lvgrad trains and inspects the residual MNIST classifier built on
// the lvgrad autodiff engine.
//
// Usage:
//
//	lvgrad train   --data DIR [--epochs N --batch-size N --lr F --seed N --hidden N]
//	lvgrad predict --data DIR --count N   train, then classify the first N test samples
//	lvgrad preview --data DIR --count N   render test samples with their labels
//
// DIR holds train_images.mat, train_labels.mat, test_images.mat and
// test_labels.mat in the raw little-endian float32 format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvgrad:", err)
		os.Exit(1)
	}
}
