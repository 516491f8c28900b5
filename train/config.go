// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: training hyper-parameters and their defaults.

package train

import (
	"fmt"
	"io"
	"log/slog"
)

// Defaults applied by New when no option overrides them.
const (
	DefaultEpochs       = 10
	DefaultBatchSize    = 50
	DefaultLearningRate = float32(0.01)
)

// Config holds the gradient-descent hyper-parameters.
type Config struct {
	Epochs       int
	BatchSize    int
	LearningRate float32
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Epochs:       DefaultEpochs,
		BatchSize:    DefaultBatchSize,
		LearningRate: DefaultLearningRate,
	}
}

// Validate reports ErrInvalidConfig for any non-positive field.
func (c Config) Validate() error {
	switch {
	case c.Epochs <= 0:
		return fmt.Errorf("%w: epochs %d", ErrInvalidConfig, c.Epochs)
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch size %d", ErrInvalidConfig, c.BatchSize)
	case !(c.LearningRate > 0):
		return fmt.Errorf("%w: learning rate %g", ErrInvalidConfig, c.LearningRate)
	}

	return nil
}

// settings is what the options mutate; it is resolved once in New.
type settings struct {
	cfg      Config
	logger   *slog.Logger
	reporter Reporter
}

func newSettings(opts ...Option) settings {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.reporter == nil {
		s.reporter = NewLogReporter(s.logger)
	}

	return s
}
