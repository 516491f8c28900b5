// Package model assembles concrete network topologies on a graph.Context.
//
// Two classifiers are provided, both ending in softmax and a cross-entropy
// cost against a one-hot desired output:
//
//	Build     residual MLP: a0 = relu(W0·x + b0)
//	                        a1 = a0 + relu(W1·a0 + b1)
//	                        out = softmax(W2·a1 + b2)
//	BuildMLP  one hidden layer: out = softmax(W1·relu(W0·x + b0) + b1)
//
// Weights are Glorot-uniform in ±sqrt(6/(fan_in+fan_out)) drawn from the
// supplied prng.Source; biases start at zero. The returned Context is
// compiled and carries all four roles, ready for train.New.
package model
