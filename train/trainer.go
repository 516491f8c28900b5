// SPDX-License-Identifier: MIT
//
// File: trainer.go
// Role: mini-batch gradient descent over a compiled graph.
//
// Per epoch:
//   - Shuffle the running order in place with exactly n random swaps.
//   - For each full batch: clear parameter gradients; for every sample copy
//     its input and label rows into the leaves, evaluate the cost program and
//     accumulate gradients; then step each parameter by -(lr/batch)·grad.
//   - Evaluate the test set, if any, and report.

package train

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvgrad/graph"
	"github.com/katalvlaran/lvgrad/matrix"
	"github.com/katalvlaran/lvgrad/prng"
)

// Trainer fits the parameters of one graph.Context.
type Trainer struct {
	ctx      *graph.Context
	src      prng.Source
	cfg      Config
	logger   *slog.Logger
	reporter Reporter

	input, label, output, cost *graph.Node
	params                     []*graph.Node
	costProg                   graph.Program
}

// New validates the configuration, resolves the four graph roles and
// compiles ctx.
//
// Errors:
//   - ErrInvalidConfig, ErrMissingRole.
//   - Compile errors from the graph package.
func New(ctx *graph.Context, src prng.Source, opts ...Option) (*Trainer, error) {
	if ctx == nil || src == nil {
		return nil, fmt.Errorf("train: New: %w: nil context or source", ErrInvalidConfig)
	}
	s := newSettings(opts...)
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("train: New: %w", err)
	}

	t := &Trainer{ctx: ctx, src: src, cfg: s.cfg, logger: s.logger, reporter: s.reporter}
	roles := []struct {
		role graph.Role
		dst  **graph.Node
	}{
		{graph.RoleInput, &t.input},
		{graph.RoleDesiredOutput, &t.label},
		{graph.RoleOutput, &t.output},
		{graph.RoleCost, &t.cost},
	}
	for _, r := range roles {
		id, ok := ctx.Role(r.role)
		if !ok {
			return nil, fmt.Errorf("train: New: %w: %s", ErrMissingRole, r.role)
		}
		*r.dst = ctx.MustNode(id)
	}

	if err := ctx.Compile(); err != nil {
		return nil, fmt.Errorf("train: New: %w", err)
	}
	t.costProg, _ = ctx.CostProgram()
	t.params = lo.Map(ctx.Parameters(), func(id graph.NodeID, _ int) *graph.Node { return ctx.MustNode(id) })

	return t, nil
}

// Config returns the resolved hyper-parameters.
func (t *Trainer) Config() Config { return t.cfg }

// Fit runs cfg.Epochs epochs over data.
//
// Errors:
//   - ErrDataShape for inconsistent data.
//   - ErrInvalidConfig when the training set is smaller than one batch.
//   - Executor errors, which abort the run.
func (t *Trainer) Fit(data Data) (History, error) {
	if err := data.validate(t.input.Value().Len(), t.label.Value().Len()); err != nil {
		return History{}, fmt.Errorf("train: Fit: %w", err)
	}
	n := data.TrainInputs.Rows()
	batches := n / t.cfg.BatchSize
	if batches == 0 {
		return History{}, fmt.Errorf("train: Fit: %w: batch size %d exceeds %d samples",
			ErrInvalidConfig, t.cfg.BatchSize, n)
	}
	t.logger.Info("training started",
		slog.Int("samples", n), slog.Int("batches", batches),
		slog.Int("epochs", t.cfg.Epochs), slog.Int("batch_size", t.cfg.BatchSize),
		slog.Float64("learning_rate", float64(t.cfg.LearningRate)),
		slog.Int("parameters", len(t.params)))

	order := lo.Range(n)
	history := History{Epochs: make([]EpochStats, 0, t.cfg.Epochs)}

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		Shuffle(order, t.src)

		var epochCost float32
		for b := 0; b < batches; b++ {
			avg, err := t.step(data, order[b*t.cfg.BatchSize:(b+1)*t.cfg.BatchSize])
			if err != nil {
				return history, fmt.Errorf("train: Fit: epoch %d batch %d: %w", epoch, b+1, err)
			}
			epochCost += avg
			t.reporter.BatchDone(BatchStats{
				Epoch: epoch, Epochs: t.cfg.Epochs,
				Batch: b + 1, Batches: batches,
				AverageCost: avg,
			})
		}

		stats := EpochStats{Epoch: epoch, Epochs: t.cfg.Epochs, TrainCost: epochCost / float32(batches)}
		if data.HasTest() {
			m, err := t.evaluate(data.TestInputs, data.TestLabels)
			if err != nil {
				return history, fmt.Errorf("train: Fit: epoch %d test: %w", epoch, err)
			}
			stats.Test = m
		}
		history.Epochs = append(history.Epochs, stats)
		t.reporter.EpochDone(stats)
	}

	return history, nil
}

// step trains on one batch of sample indices and returns its mean cost.
func (t *Trainer) step(data Data, batch []int) (float32, error) {
	for _, p := range t.params {
		p.Grad().Clear()
	}

	var total float32
	for _, idx := range batch {
		if err := t.load(data.TrainInputs, data.TrainLabels, idx); err != nil {
			return 0, err
		}
		if err := t.ctx.Evaluate(t.costProg); err != nil {
			return 0, err
		}
		if err := t.ctx.AccumulateGradients(t.costProg); err != nil {
			return 0, err
		}
		total += t.cost.Value().Sum()
	}

	scale := t.cfg.LearningRate / float32(len(batch))
	for _, p := range t.params {
		p.Grad().Scale(scale)
		if err := matrix.Sub(p.Value(), p.Value(), p.Grad()); err != nil {
			return 0, fmt.Errorf("update node %d: %w", p.Index(), err)
		}
	}

	return total / float32(len(batch)), nil
}

// Evaluate runs the cost program over every row of inputs and labels and
// reports mean cost and argmax accuracy. Gradients are untouched.
//
// Errors:
//   - ErrDataShape, executor errors.
func (t *Trainer) Evaluate(inputs, labels *matrix.Dense) (Metrics, error) {
	if err := validatePair("eval", inputs, labels, t.input.Value().Len(), t.label.Value().Len()); err != nil {
		return Metrics{}, fmt.Errorf("train: Evaluate: %w", err)
	}
	m, err := t.evaluate(inputs, labels)
	if err != nil {
		return m, fmt.Errorf("train: Evaluate: %w", err)
	}

	return m, nil
}

func (t *Trainer) evaluate(inputs, labels *matrix.Dense) (Metrics, error) {
	m := Metrics{Total: inputs.Rows()}
	var total float32
	for i := 0; i < m.Total; i++ {
		if err := t.load(inputs, labels, i); err != nil {
			return Metrics{}, err
		}
		if err := t.ctx.Evaluate(t.costProg); err != nil {
			return Metrics{}, err
		}
		total += t.cost.Value().Sum()
		if t.output.Value().Argmax() == t.label.Value().Argmax() {
			m.Correct++
		}
	}
	if m.Total > 0 {
		m.Cost = total / float32(m.Total)
	}

	return m, nil
}

// load copies sample row i into the input and desired-output leaves.
func (t *Trainer) load(inputs, labels *matrix.Dense, i int) error {
	if err := t.input.Value().CopyRow(inputs, i); err != nil {
		return err
	}

	return t.label.Value().CopyRow(labels, i)
}

// Shuffle permutes order in place with exactly len(order) swaps of two
// positions drawn as src.Uint32() % len(order). The draw sequence is part of
// the contract: equal seeds reproduce equal permutations.
func Shuffle(order []int, src prng.Source) {
	n := uint32(len(order))
	if n == 0 {
		return
	}
	for range order {
		a := src.Uint32() % n
		b := src.Uint32() % n
		order[a], order[b] = order[b], order[a]
	}
}
