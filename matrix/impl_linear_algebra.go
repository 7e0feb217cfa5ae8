// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels (LU with partial pivoting, Det, Solve).
//
// Purpose:
//   - Factor tiny square systems deterministically for the orientation,
//     in-sphere and circumcenter computations of the geometry package.
//
// Notes:
//   - Partial pivoting picks the largest |a(i,k)| for i ≥ k, first index wins ties,
//     so the factorization is bit-for-bit reproducible for equal inputs.
//   - All kernels return plain sentinels wrapped with an operation tag.

package matrix

import (
	"math"

	"github.com/pkg/errors"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot column.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opLU    = "LU"
	opDet   = "Det"
	opSolve = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// for errors.Is/As. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// LUFactors holds a packed pivoted factorization P·A = L·U.
// L has a unit diagonal and is stored below the diagonal of lu; U is stored on
// and above it. perm[i] is the original row placed at position i.
type LUFactors struct {
	lu   *Dense
	perm []int
	sign float64 // +1 or -1, parity of the row permutation
}

// LU computes the Doolittle factorization of a square matrix with partial
// pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a packed buffer.
//   - Stage 2: For each column k choose the largest remaining pivot, swap rows,
//     eliminate below the pivot and store multipliers in place.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (a whole pivot column is zero).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	work, err := copyDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	f := &LUFactors{lu: work, perm: make([]int, n), sign: 1}
	for i := 0; i < n; i++ {
		f.perm[i] = i
	}

	d := work.data
	var i, j, k, p int
	var best, a, factor float64
	for k = 0; k < n; k++ {
		// Pivot search: largest magnitude in column k, rows k..n-1.
		p, best = k, math.Abs(d[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(d[i*n+k]); a > best {
				p, best = i, a
			}
		}
		if best == ZeroPivot {
			return f, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}
		// Eliminate below the pivot; multipliers are stored in the L part.
		for i = k + 1; i < n; i++ {
			factor = d[i*n+k] / d[k*n+k]
			d[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				d[i*n+j] -= factor * d[k*n+j]
			}
		}
	}

	return f, nil
}

// Det returns the determinant of the factored matrix: sign(P)·Π U(i,i).
// Complexity: O(n).
func (f *LUFactors) Det() float64 {
	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det
}

// Solve returns x with A·x = b using the stored factors.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != n.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	d := f.lu.data
	x := make([]float64, n)
	var i, j int
	var sum float64
	// Forward substitution with the permuted right-hand side (L has unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j = 0; j < i; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// Backward substitution on U.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum / d[i*n+i]
	}

	return x, nil
}

// Det computes the determinant of a square matrix.
// A singular matrix yields (0, nil): a zero determinant is a valid answer,
// not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	f, err := LU(m)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Solve returns x such that m·x = b.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(m Matrix, b []float64) ([]float64, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// copyDense materializes any Matrix into a fresh *Dense.
func copyDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
