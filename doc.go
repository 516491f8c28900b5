// Package lvgrad is a minimal reverse-mode automatic-differentiation engine
// over dense float32 matrices, sized for defining, evaluating and training
// small feed-forward networks.
//
// Layout:
//
//	matrix/     Dense matrix and the stateless kernel library (forward and
//	            gradient kernels, raw sample loading)
//	prng/       injected random sources (seeded PCG, replay sequences)
//	graph/      node arena, topological scheduler, forward/backward executors
//	train/      mini-batch gradient descent with slog progress reporting
//	model/      concrete classifier topologies (residual MLP, plain MLP)
//	dataset/    split loading, one-hot labels, ANSI sample preview
//	cmd/lvgrad  command-line driver: train, predict, preview
//
// A typical flow builds a graph with model.Build (or by hand through
// graph.Context), hands it to train.New with a prng.Source, and calls Fit
// with data from dataset.LoadSplit.
//
// Everything is single-threaded; no type is safe for concurrent mutation.
package lvgrad
