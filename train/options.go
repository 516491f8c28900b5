// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for New.
//
// Numeric options are checked by Config.Validate inside New, so a bad value
// surfaces as an error. Nil collaborators are programmer errors and panic in
// the option constructor.

package train

import "log/slog"

// Option customises a Trainer.
type Option func(*settings)

// WithConfig replaces all hyper-parameters at once.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithEpochs sets the number of passes over the training set.
func WithEpochs(n int) Option {
	return func(s *settings) { s.cfg.Epochs = n }
}

// WithBatchSize sets the number of samples per parameter update.
func WithBatchSize(n int) Option {
	return func(s *settings) { s.cfg.BatchSize = n }
}

// WithLearningRate sets the gradient-descent step size.
func WithLearningRate(lr float32) Option {
	return func(s *settings) { s.cfg.LearningRate = lr }
}

// WithLogger sets the logger used by the default reporter and for
// lifecycle messages. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("train: WithLogger(nil)")
	}

	return func(s *settings) { s.logger = l }
}

// WithReporter replaces the default LogReporter. Panics on nil.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic("train: WithReporter(nil)")
	}

	return func(s *settings) { s.reporter = r }
}
