package manifold_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/manifold"
	"github.com/katalvlaran/riemann/matrix"
)

func TestError_KindsMatchSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		msg      string
	}{
		{manifold.DimensionMismatch(3, 2), manifold.ErrDimensionMismatch, "manifold: dimension mismatch: expected 3, got 2"},
		{manifold.PointNotOnManifold("norm is 2"), manifold.ErrPointNotOnManifold, "manifold: point not on manifold: norm is 2"},
		{manifold.InvalidTangentVector("not orthogonal"), manifold.ErrInvalidTangentVector, "manifold: tangent vector not in tangent space: not orthogonal"},
		{manifold.NumericalError("antipodal"), manifold.ErrNumerical, "manifold: numerical error: antipodal"},
		{manifold.ConvergenceError(7), manifold.ErrConvergence, "manifold: convergence failed after 7 iterations"},
		{manifold.InvalidParameter("tolerance must be > 0"), manifold.ErrInvalidParameter, "manifold: invalid parameter: tolerance must be > 0"},
		{manifold.LinearAlgebraError("inverse failed"), manifold.ErrLinearAlgebra, "manifold: linear algebra error: inverse failed"},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
			assert.EqualError(t, tc.err, tc.msg)
			if tc.sentinel != manifold.ErrNumerical {
				assert.NotErrorIs(t, tc.err, manifold.ErrNumerical)
			}
		})
	}
}

func TestError_AsExposesFields(t *testing.T) {
	err := fmt.Errorf("outer: %w", manifold.DimensionMismatch(4, 9))
	var me *manifold.Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, manifold.KindDimensionMismatch, me.Kind)
	assert.Equal(t, 4, me.Expected)
	assert.Equal(t, 9, me.Got)

	err = manifold.ConvergenceError(12)
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 12, me.Iterations)
	assert.Equal(t, "convergence failed", me.Kind.String())
}

func TestLinearAlgebraErrorf_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("Cholesky: %w", matrix.ErrNotPositiveDefinite)
	err := manifold.LinearAlgebraErrorf("cholesky decomposition failed", cause)
	require.ErrorIs(t, err, manifold.ErrLinearAlgebra)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
	assert.Contains(t, err.Error(), "cholesky decomposition failed")
}
