// SPDX-License-Identifier: MIT

package train

import (
	"context"
	"log/slog"
)

// Metrics summarises one pass over a labelled set.
type Metrics struct {
	Correct int
	Total   int
	// Cost is the mean summed cost per sample.
	Cost float32
}

// Accuracy returns Correct/Total, or 0 for an empty set.
func (m Metrics) Accuracy() float64 {
	if m.Total == 0 {
		return 0
	}

	return float64(m.Correct) / float64(m.Total)
}

// BatchStats is reported after every parameter update.
type BatchStats struct {
	Epoch, Epochs  int // 1-based
	Batch, Batches int // 1-based
	AverageCost    float32
}

// EpochStats is reported after every epoch, once the test set was evaluated.
type EpochStats struct {
	Epoch, Epochs int // 1-based
	// TrainCost is the mean of the epoch's batch averages.
	TrainCost float32
	// Test is zero when no test set was supplied.
	Test Metrics
}

// History collects the EpochStats of a Fit call in order.
type History struct {
	Epochs []EpochStats
}

// Last returns the final epoch, if any.
func (h History) Last() (EpochStats, bool) {
	if len(h.Epochs) == 0 {
		return EpochStats{}, false
	}

	return h.Epochs[len(h.Epochs)-1], true
}

// Reporter receives training progress. Implementations must not retain the
// Trainer or mutate the graph.
type Reporter interface {
	BatchDone(BatchStats)
	EpochDone(EpochStats)
}

// LogReporter writes batch progress at debug level and epoch summaries at
// info level.
type LogReporter struct {
	logger *slog.Logger
}

var _ Reporter = (*LogReporter)(nil)

// NewLogReporter returns a LogReporter writing to l.
func NewLogReporter(l *slog.Logger) *LogReporter {
	return &LogReporter{logger: l}
}

// BatchDone logs one batch.
func (r *LogReporter) BatchDone(s BatchStats) {
	if !r.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	r.logger.Debug("batch done",
		slog.Int("epoch", s.Epoch), slog.Int("epochs", s.Epochs),
		slog.Int("batch", s.Batch), slog.Int("batches", s.Batches),
		slog.Float64("avg_cost", float64(s.AverageCost)))
}

// EpochDone logs one epoch together with its test metrics.
func (r *LogReporter) EpochDone(s EpochStats) {
	r.logger.Info("epoch done",
		slog.Int("epoch", s.Epoch), slog.Int("epochs", s.Epochs),
		slog.Float64("train_cost", float64(s.TrainCost)),
		slog.Int("correct", s.Test.Correct), slog.Int("total", s.Test.Total),
		slog.Float64("accuracy", s.Test.Accuracy()),
		slog.Float64("test_cost", float64(s.Test.Cost)))
}
