// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/riemann/matrix"
)

func TestAddSub_Correctness(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 2, 2, 1, 2, 3, 4)
	b := MustFrom(t, 2, 2, 10, 20, 30, 40)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, 2, 2, 11, 22, 33, 44), sum, 0)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, 2, 2, 9, 18, 27, 36), diff, 0)

	// operands untouched
	assert.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestAdd_ShapeMismatchAndNil(t *testing.T) {
	t.Parallel()
	_, err := matrix.Add(MustDense(t, 2, 2), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Correctness(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 2, 2, 1, 2, 3, 4)
	b := MustFrom(t, 2, 2, 5, 6, 7, 8)
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, 2, 2, 19, 22, 43, 50), p, 0)

	// hidden operand takes the materialization path and agrees bit-for-bit
	p2, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	RequireClose(t, p, p2, 0)

	_, err = matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeAndScale(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())
	RequireClose(t, MustFrom(t, 3, 2, 1, 4, 2, 5, 3, 6), mt, 0)

	s, err := matrix.Scale(m, -2)
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, 2, 3, -2, -4, -6, -8, -10, -12), s, 0)
}

func TestSymmetrizeAndTrace(t *testing.T) {
	t.Parallel()
	m := MustFrom(t, 2, 2, 1, 0.5, 0.3, 2)
	s, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(s, 0))
	assert.InDelta(t, 0.4, MustAt(t, s, 0, 1), 1e-15)

	tr, err := matrix.Trace(spd3(t))
	require.NoError(t, err)
	assert.Equal(t, 12.0, tr)

	_, err = matrix.Trace(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse_KnownValues(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 2, 2, 4, 7, 2, 6)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, 2, 2, 0.6, -0.7, -0.2, 0.4), inv, 1e-12)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	RequireClose(t, id, prod, 1e-12)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()
	for name, m := range map[string]*matrix.Dense{
		"rank-deficient":     MustFrom(t, 2, 2, 1, 2, 2, 4),
		"zero-leading-pivot": MustFrom(t, 2, 2, 0, 1, 1, 0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Inverse(m)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverse_AgreesWithGonum(t *testing.T) {
	t.Parallel()
	a := spd3(t)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(mat.NewDense(3, 3, a.Data())))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want.At(i, j), MustAt(t, inv, i, j), 1e-12)
		}
	}
}

func TestLU_Reconstructs(t *testing.T) {
	t.Parallel()
	a := spd3(t)
	l, u, err := matrix.LU(a)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, MustAt(t, l, i, i), "unit diagonal on L")
	}
	lu, err := matrix.Mul(l, u)
	require.NoError(t, err)
	RequireClose(t, a, lu, 1e-12)
}

func TestAllClose_Tolerances(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, 1, 2, 1, 2)
	b := MustFrom(t, 1, 2, 1+1e-9, 2)
	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = matrix.AllClose(a, b, 0, 1e-10)
	require.NoError(t, err)
	assert.False(t, ok)
}
