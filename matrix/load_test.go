// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/matrix"
)

// TestLoad_RoundTrip saves and reloads a matrix through the raw format.
func TestLoad_RoundTrip(t *testing.T) {
	src := mustDense(t, 2, 3, 1, -2, 3.5, 0, 1e-3, 42)
	var buf bytes.Buffer
	require.NoError(t, matrix.Save(&buf, src))
	require.Equal(t, 24, buf.Len())

	got, err := matrix.Load(&buf, 2, 3)
	require.NoError(t, err)
	require.Equal(t, src.Data(), got.Data())
}

// TestLoad_ShortSource leaves the tail zero-filled without an error.
func TestLoad_ShortSource(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Save(&buf, mustDense(t, 1, 2, 7, 8)))

	got, err := matrix.Load(&buf, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float32{7, 8, 0, 0}, got.Data())
}

// TestLoad_LongSource ignores bytes beyond rows*cols*4.
func TestLoad_LongSource(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Save(&buf, mustDense(t, 1, 4, 1, 2, 3, 4)))

	got, err := matrix.Load(&buf, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2}, got.Data())
}

// TestLoadFile_Missing returns a zero matrix plus ErrSourceUnavailable.
func TestLoadFile_Missing(t *testing.T) {
	got, err := matrix.LoadFile(filepath.Join(t.TempDir(), "absent.mat"), 3, 2)
	require.ErrorIs(t, err, matrix.ErrSourceUnavailable)
	require.NotNil(t, got)
	require.Equal(t, 6, got.Len())
	require.Zero(t, got.Sum())
}

// TestLoadFile_Present reads a file written by Save.
func TestLoadFile_Present(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.mat")
	var buf bytes.Buffer
	require.NoError(t, matrix.Save(&buf, mustDense(t, 2, 1, 0.25, -0.5)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	got, err := matrix.LoadFile(path, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []float32{0.25, -0.5}, got.Data())
}

// TestLoad_InvalidShape never returns a matrix for a bad shape.
func TestLoad_InvalidShape(t *testing.T) {
	got, err := matrix.Load(bytes.NewReader(nil), 0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.Nil(t, got)
}
