// SPDX-License-Identifier: MIT
//
// File: split.go
// Role: load the four files of a train/test split into train.Data.

package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/lvgrad/matrix"
	"github.com/katalvlaran/lvgrad/train"
)

// File names inside a split directory.
const (
	TrainImagesFile = "train_images.mat"
	TrainLabelsFile = "train_labels.mat"
	TestImagesFile  = "test_images.mat"
	TestLabelsFile  = "test_labels.mat"
)

// SplitSpec fixes the shapes of a split; the files carry no header.
type SplitSpec struct {
	TrainSamples int
	TestSamples  int
	Features     int
	Classes      int
}

// MNIST is the classic 60k/10k split of 28×28 digits.
var MNIST = SplitSpec{TrainSamples: 60000, TestSamples: 10000, Features: 784, Classes: 10}

// Validate reports ErrInvalidSplit for any non-positive field.
func (s SplitSpec) Validate() error {
	if s.TrainSamples <= 0 || s.TestSamples <= 0 || s.Features <= 0 || s.Classes <= 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidSplit, s)
	}

	return nil
}

// LoadSamples reads rows×cols samples from path. A missing file yields the
// zero matrix with an error matching matrix.ErrSourceUnavailable.
func LoadSamples(path string, rows, cols int) (*matrix.Dense, error) {
	return matrix.LoadFile(path, rows, cols)
}

// LoadSplit reads the four split files from dir and one-hot encodes the
// labels. Unavailable files are logged at warn level and load as zeros; any
// other failure is returned.
func LoadSplit(dir string, spec SplitSpec, logger *slog.Logger) (train.Data, error) {
	if err := spec.Validate(); err != nil {
		return train.Data{}, fmt.Errorf("LoadSplit: %w", err)
	}

	l := &loader{dir: dir, logger: logger}
	data := train.Data{
		TrainInputs: l.samples(TrainImagesFile, spec.TrainSamples, spec.Features),
		TrainLabels: l.labels(TrainLabelsFile, spec.TrainSamples, spec.Classes),
		TestInputs:  l.samples(TestImagesFile, spec.TestSamples, spec.Features),
		TestLabels:  l.labels(TestLabelsFile, spec.TestSamples, spec.Classes),
	}
	if l.err != nil {
		return train.Data{}, fmt.Errorf("LoadSplit: %w", l.err)
	}

	return data, nil
}

// loader keeps the first hard error; warnings do not stop it.
type loader struct {
	dir    string
	logger *slog.Logger
	err    error
}

func (l *loader) samples(name string, rows, cols int) *matrix.Dense {
	if l.err != nil {
		return nil
	}
	path := filepath.Join(l.dir, name)
	m, err := LoadSamples(path, rows, cols)
	switch {
	case errors.Is(err, matrix.ErrSourceUnavailable) && m != nil:
		if l.logger != nil {
			l.logger.Warn("sample file unavailable, using zeros",
				slog.String("path", path), slog.Any("error", err))
		}
	case err != nil:
		l.err = err
		return nil
	default:
		if l.logger != nil {
			l.logger.Debug("loaded samples", slog.String("path", path),
				slog.Int("rows", rows), slog.Int("cols", cols))
		}
	}

	return m
}

func (l *loader) labels(name string, rows, classes int) *matrix.Dense {
	raw := l.samples(name, rows, 1)
	if l.err != nil {
		return nil
	}
	hot, err := OneHot(raw, classes)
	if err != nil {
		l.err = fmt.Errorf("%s: %w", name, err)
		return nil
	}

	return hot
}
