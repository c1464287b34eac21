// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateSymmetric(spd3(t), 0))
	require.NoError(t, matrix.ValidateSymmetric(MustFrom(t, 2, 2, 1, 1e-12, 0, 1), 1e-10))

	err := matrix.ValidateSymmetric(MustFrom(t, 2, 2, 1, 0.5, 0.3, 1), 1e-10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	err = matrix.ValidateSymmetric(MustDense(t, 2, 3), 1e-10)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = matrix.ValidateSymmetric(spd3(t), math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	err = matrix.ValidateSymmetric(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}
