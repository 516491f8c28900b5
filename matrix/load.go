// SPDX-License-Identifier: MIT
// Package: matrix
//
// Raw sample format:
//   - A flat little-endian sequence of float32 values, row-major, with the
//     shape known externally (no header).
//   - Loading reads min(available bytes, rows*cols*4) bytes into a
//     zero-filled buffer. A short source yields a partially zero matrix and
//     is NOT an error; a trailing partial float keeps the bytes it has.
//   - A source that cannot be opened yields the all-zero matrix together with
//     ErrSourceUnavailable, so callers may warn and carry on.

package matrix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	opLoad     = "Load"
	opLoadFile = "LoadFile"

	bytesPerElem = 4
)

// Load reads an r×c matrix from src in the raw sample format.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape (no matrix is returned).
//   - ErrSourceUnavailable wrapping any read failure other than a short
//     stream; the returned matrix then holds whatever was read before it.
func Load(src io.Reader, rows, cols int) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}

	buf := make([]byte, m.Len()*bytesPerElem)
	n, rerr := io.ReadFull(src, buf)
	decodeFloat32LE(m.data, buf)

	if rerr != nil && !errors.Is(rerr, io.EOF) && !errors.Is(rerr, io.ErrUnexpectedEOF) {
		return m, fmt.Errorf("%s: read %d of %d bytes: %w: %w", opLoad, n, len(buf), ErrSourceUnavailable, rerr)
	}

	return m, nil
}

// LoadFile opens path and delegates to Load. When the file is missing or
// unreadable the zero matrix is still returned alongside the error.
func LoadFile(path string, rows, cols int) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		m, nerr := New(rows, cols)
		if nerr != nil {
			return nil, matrixErrorf(opLoadFile, nerr)
		}

		return m, fmt.Errorf("%s(%q): %w: %w", opLoadFile, path, ErrSourceUnavailable, err)
	}
	defer f.Close()

	m, err := Load(f, rows, cols)
	if err != nil {
		return m, fmt.Errorf("%s(%q): %w", opLoadFile, path, err)
	}

	return m, nil
}

// Save writes m to dst in the raw sample format.
func Save(dst io.Writer, m *Dense) error {
	if m == nil {
		return matrixErrorf("Save", ErrNilMatrix)
	}
	buf := make([]byte, m.Len()*bytesPerElem)
	for i, v := range m.data {
		binary.LittleEndian.PutUint32(buf[i*bytesPerElem:], math.Float32bits(v))
	}
	if _, err := dst.Write(buf); err != nil {
		return matrixErrorf("Save", err)
	}

	return nil
}

// decodeFloat32LE fills dst from buf, which holds exactly len(dst)*4 bytes.
func decodeFloat32LE(dst []float32, buf []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerElem:]))
	}
}
