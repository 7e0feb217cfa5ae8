// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestDet_Identity(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	det, err := matrix.Det(m)
	require.NoError(t, err)
	require.Equal(t, 1.0, det)
}

func TestDet_NeedsPivoting(t *testing.T) {
	// Zero leading entry: an unpivoted Doolittle factorization would stop here.
	m := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	det, err := matrix.Det(m)
	require.NoError(t, err)
	require.Equal(t, -1.0, det)
}

func TestDet_KnownValue(t *testing.T) {
	m := mustDense(t, [][]float64{
		{2, -3, 1},
		{2, 0, -1},
		{1, 4, 5},
	})
	det, err := matrix.Det(m)
	require.NoError(t, err)
	require.InDelta(t, 49.0, det, 1e-12)
}

func TestDet_SingularIsZero(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	det, err := matrix.Det(m)
	require.NoError(t, err)
	require.Equal(t, 0.0, det)
}

func TestDet_NonSquare(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Det(m)
	require.True(t, errors.Is(err, matrix.ErrNonSquare))
}

func TestSolve(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 2, 1},
		{1, 1, 0},
		{3, 0, 1},
	})
	// x = (1, 2, 3) ⇒ b = m·x
	x, err := matrix.Solve(m, []float64{7, 3, 6})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12)
}

func TestSolve_Errors(t *testing.T) {
	_, err := matrix.Solve(mustDense(t, [][]float64{{1, 1}, {1, 1}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(mustDense(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
