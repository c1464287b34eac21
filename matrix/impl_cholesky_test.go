// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/riemann/matrix"
)

func TestCholesky_KnownFactor(t *testing.T) {
	t.Parallel()
	l, err := matrix.Cholesky(MustFrom(t, 2, 2, 4, 2, 2, 3))
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, 2, 2, 2, 0, 1, math.Sqrt2), l, 1e-15)
}

func TestCholesky_Reconstructs(t *testing.T) {
	t.Parallel()
	a := spd3(t)
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)

	// strictly lower-triangular storage above the diagonal stays zero
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			assert.Zero(t, MustAt(t, l, i, j))
		}
	}
	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	llt, err := matrix.Mul(l, lt)
	require.NoError(t, err)
	RequireClose(t, a, llt, 1e-12)
}

func TestCholesky_AgreesWithGonum(t *testing.T) {
	t.Parallel()
	a := spd3(t)
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)

	var chol mat.Cholesky
	require.True(t, chol.Factorize(mat.NewSymDense(3, a.Data())))
	var want mat.TriDense
	chol.LTo(&want)
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			assert.InDelta(t, want.At(i, j), MustAt(t, l, i, j), 1e-12)
		}
	}
}

func TestCholesky_Failures(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"indefinite", MustFrom(t, 2, 2, 1, 2, 2, 1), matrix.ErrNotPositiveDefinite},
		{"negative-diagonal", MustFrom(t, 2, 2, -1, 0, 0, 1), matrix.ErrNotPositiveDefinite},
		{"zero", MustDense(t, 2, 2), matrix.ErrNotPositiveDefinite},
		{"nan", MustFrom(t, 1, 1, math.NaN()), matrix.ErrNotPositiveDefinite},
		{"non-square", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
		{"nil", nil, matrix.ErrNilMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Cholesky(tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
