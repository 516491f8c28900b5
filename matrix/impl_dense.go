// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Keep the shape fixed for the lifetime of the value; kernels never resize.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c); Argmax/Sum: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgrad/prng"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxNew     = "New"      // ctor tag
	ctxCopy    = "CopyFrom" // method tag used in error wrappers
	ctxCopyRow = "CopyRow"  // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The shape is fixed at construction. A Dense is not safe for concurrent
// mutation.
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewFromSlice creates an r×c matrix holding a copy of data (row-major).
// Returns ErrDataLength when len(data) != rows*cols.
func NewFromSlice(rows, cols int, data []float32) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len %d: %w", ctxNew, rows, cols, len(data), ErrDataLength)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// IsVector reports whether one of the dimensions equals 1.
func (m *Dense) IsVector() bool { return m.r == 1 || m.c == 1 }

// SameShape reports whether m and o have identical dimensions.
func (m *Dense) SameShape(o *Dense) bool { return m.r == o.r && m.c == o.c }

// Data exposes the row-major backing slice. Writes through it mutate m;
// its length must not be changed by the caller.
func (m *Dense) Data() []float32 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped with
// the caller's method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid coordinates.
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange on invalid coordinates.
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CopyFrom overwrites m with src. Shapes must match exactly.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(ctxCopy, ErrNilMatrix)
	}
	if !m.SameShape(src) {
		return matrixErrorf(ctxCopy, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// CopyRow overwrites m with row `row` of src. m must hold exactly src.Cols()
// elements (any vector orientation). This is how a single sample of a
// dataset is moved into a graph leaf.
func (m *Dense) CopyRow(src *Dense, row int) error {
	if src == nil {
		return matrixErrorf(ctxCopyRow, ErrNilMatrix)
	}
	if row < 0 || row >= src.r {
		return denseErrorf(ctxCopyRow, row, 0, ErrOutOfRange)
	}
	if len(m.data) != src.c {
		return matrixErrorf(ctxCopyRow, ErrDimensionMismatch)
	}
	copy(m.data, src.data[row*src.c:(row+1)*src.c])

	return nil
}

// Clear zeroes every element.
func (m *Dense) Clear() {
	clear(m.data)
}

// Fill sets every element to x.
func (m *Dense) Fill(x float32) {
	for i := range m.data {
		m.data[i] = x
	}
}

// FillRand draws every element independently from src and maps it affinely
// into [low, high). Elements are filled in storage order, one draw each.
func (m *Dense) FillRand(src prng.Source, low, high float32) {
	span := high - low
	for i := range m.data {
		m.data[i] = src.Float32()*span + low
	}
}

// Scale multiplies every element by s in place.
func (m *Dense) Scale(s float32) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// Sum returns the sum of all elements, accumulated in storage order.
func (m *Dense) Sum() float32 {
	var s float32
	for _, v := range m.data {
		s += v
	}

	return s
}

// Argmax returns the flat index of the largest element. Ties resolve to the
// lowest index because the scan only moves on a strictly greater value.
func (m *Dense) Argmax() int {
	best := 0
	for i := 1; i < len(m.data); i++ {
		if m.data[i] > m.data[best] {
			best = i
		}
	}

	return best
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
