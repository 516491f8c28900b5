// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Generalised matrix product out (+)= op(A)·op(B) where op is identity or
//     transpose, selected independently per operand.
//
// Design:
//   - Four private loop variants (nn, nt, tn, tt) read the operands in place;
//     no transposed copy is ever materialised.
//   - Each variant ACCUMULATES into out. Mul clears out first only when
//     zeroOut is true, so callers composing several contributions into one
//     buffer (gradient accumulation) pass zeroOut=false.
//
// Determinism:
//   - Fixed loop orders per variant; results are bit-reproducible for equal inputs.

package matrix

const opMul = "Mul"

// transposeMode packs (transA, transB) into a 2-bit selector.
type transposeMode uint8

const (
	modeNN transposeMode = 0b00
	modeNT transposeMode = 0b01
	modeTN transposeMode = 0b10
	modeTT transposeMode = 0b11
)

func makeTransposeMode(transA, transB bool) transposeMode {
	var m transposeMode
	if transA {
		m |= 0b10
	}
	if transB {
		m |= 0b01
	}

	return m
}

// Mul computes out = op(a)·op(b), or out += op(a)·op(b) when zeroOut is false.
//
// Implementation:
//   - Stage 1: resolve effective shapes of op(a) and op(b).
//   - Stage 2: validate inner dimensions and the output shape.
//   - Stage 3: optionally clear out, then dispatch on the transpose pair.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(m*k*n), Space O(1).
//
// Notes:
//   - out must not alias a or b: the loops read operands while writing out.
func Mul(out, a, b *Dense, zeroOut, transA, transB bool) error {
	if err := validateNotNil(out, a, b); err != nil {
		return matrixErrorf(opMul, err)
	}

	// Stage 1: effective shapes.
	aRows, aCols := a.r, a.c
	if transA {
		aRows, aCols = a.c, a.r
	}
	bRows, bCols := b.r, b.c
	if transB {
		bRows, bCols = b.c, b.r
	}

	// Stage 2: validate.
	if aCols != bRows {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}
	if out.r != aRows || out.c != bCols {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 3: execute.
	if zeroOut {
		out.Clear()
	}
	switch makeTransposeMode(transA, transB) {
	case modeNN:
		mulNN(out, a, b)
	case modeNT:
		mulNT(out, a, b)
	case modeTN:
		mulTN(out, a, b)
	case modeTT:
		mulTT(out, a, b)
	}

	return nil
}

// mulNN: out[i,j] += Σ_k a[i,k]·b[k,j]. i→k→j keeps b and out row-contiguous.
func mulNN(out, a, b *Dense) {
	for i := 0; i < out.r; i++ {
		outRow := out.data[i*out.c : (i+1)*out.c]
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			bRow := b.data[k*b.c : (k+1)*b.c]
			for j := range outRow {
				outRow[j] += av * bRow[j]
			}
		}
	}
}

// mulNT: out[i,j] += Σ_k a[i,k]·b[j,k]. Both operands are walked along rows.
func mulNT(out, a, b *Dense) {
	for i := 0; i < out.r; i++ {
		aRow := a.data[i*a.c : (i+1)*a.c]
		for j := 0; j < out.c; j++ {
			bRow := b.data[j*b.c : (j+1)*b.c]
			var acc float32
			for k, av := range aRow {
				acc += av * bRow[k]
			}
			out.data[i*out.c+j] += acc
		}
	}
}

// mulTN: out[i,j] += Σ_k a[k,i]·b[k,j]. k outermost so both reads stay row-major.
func mulTN(out, a, b *Dense) {
	for k := 0; k < a.r; k++ {
		aRow := a.data[k*a.c : (k+1)*a.c]
		bRow := b.data[k*b.c : (k+1)*b.c]
		for i := 0; i < out.r; i++ {
			av := aRow[i]
			outRow := out.data[i*out.c : (i+1)*out.c]
			for j := range outRow {
				outRow[j] += av * bRow[j]
			}
		}
	}
}

// mulTT: out[i,j] += Σ_k a[k,i]·b[j,k].
func mulTT(out, a, b *Dense) {
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			bRow := b.data[j*b.c : (j+1)*b.c]
			var acc float32
			for k := 0; k < a.r; k++ {
				acc += a.data[k*a.c+i] * bRow[k]
			}
			out.data[i*out.c+j] += acc
		}
	}
}
