// SPDX-License-Identifier: MIT

package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvgrad/train"
)

func TestDefaultConfig(t *testing.T) {
	cfg := train.DefaultConfig()
	assert.Equal(t, train.Config{Epochs: 10, BatchSize: 50, LearningRate: 0.01}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  train.Config
	}{
		{"zero epochs", train.Config{Epochs: 0, BatchSize: 1, LearningRate: 0.1}},
		{"negative batch", train.Config{Epochs: 1, BatchSize: -1, LearningRate: 0.1}},
		{"zero rate", train.Config{Epochs: 1, BatchSize: 1, LearningRate: 0}},
		{"negative rate", train.Config{Epochs: 1, BatchSize: 1, LearningRate: -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), train.ErrInvalidConfig)
		})
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { train.WithLogger(nil) })
	assert.Panics(t, func() { train.WithReporter(nil) })
}
