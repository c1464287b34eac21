// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense materialization path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds an r×c *Dense from row-major data or fails the test.
func MustFrom(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts element-wise |got-want| ≤ tol on identical shapes.
func RequireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%v\ngot:\n%v", tol, want, got)
}

// spd3 is a fixed, well-conditioned SPD matrix used across tests.
func spd3(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustFrom(t, 3, 3,
		4, 2, 0.6,
		2, 5, 1,
		0.6, 1, 3,
	)
}
