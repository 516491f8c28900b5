// Package matrix provides the dense float32 matrix and the stateless kernel
// library the lvgrad engine dispatches to.
//
// The matrix package provides:
//
//   - Dense: a fixed-shape, row-major 2-D buffer of float32 with in-place
//     primitives (Clear, Fill, FillRand, Scale, Sum, Argmax).
//   - Forward kernels: Add, Sub, Mul (independent transpose flags, optional
//     accumulation), ReLU, Softmax, CrossEntropy.
//   - Gradient kernels: ReLUAddGrad, SoftmaxAddGrad, CrossEntropyAddGrad,
//     all of which accumulate into their destinations.
//   - Load/LoadFile/Save for the raw little-endian sample format.
//
// Every kernel writes into a caller-owned output and reports shape problems
// through sentinel errors (ErrDimensionMismatch, ErrNotVector, ...) rather
// than resizing or panicking. On error the output is unspecified.
//
// Matrices are not safe for concurrent mutation.
package matrix
