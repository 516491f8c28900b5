// Package dataset loads labelled sample sets stored in the raw little-endian
// float32 format read by matrix.Load, expands class labels to one-hot rows
// and renders grayscale samples on an ANSI terminal.
//
// A split directory holds four files:
//
//	train_images.mat  TrainSamples × Features
//	train_labels.mat  TrainSamples × 1  (class index stored as float32)
//	test_images.mat   TestSamples × Features
//	test_labels.mat   TestSamples × 1
//
// A missing file is not fatal: it loads as zeros and a warning is logged.
package dataset
