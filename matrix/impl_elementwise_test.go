package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

func TestFloorDiagonal(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, 2, 2, -1, 0.5, 0.5, 3)

	out, err := matrix.FloorDiagonal(m, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e-10, 0.5, 0.5, 3}, out.(*matrix.Dense).Data())
	assert.Equal(t, -1.0, MustAt(t, m, 0, 0), "input is not mutated")

	nan := MustFrom(t, 1, 1, math.NaN())
	out, err = matrix.FloorDiagonal(nan, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, MustAt(t, out, 0, 0))
}

func TestFloorDiagonal_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.FloorDiagonal(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FloorDiagonal(MustDense(t, 2, 3), 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FloorDiagonal(MustDense(t, 2, 2), math.Inf(-1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMaxAbs(t *testing.T) {
	t.Parallel()
	v, err := matrix.MaxAbs(MustFrom(t, 2, 2, 1, -7, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = matrix.MaxAbs(MustFrom(t, 1, 3, 1, math.NaN(), 9))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = matrix.MaxAbs(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
