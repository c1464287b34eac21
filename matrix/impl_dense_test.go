// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j), "element [%d,%d] of a new Dense must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom_CopiesAndValidates(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m := MustFrom(t, 2, 2, src...)
	src[0] = 100 // caller keeps ownership; m must not change
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0), "row-major layout")

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_CloneAndDataIndependence(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	data := m.Data()
	data[3] = -1
	assert.Equal(t, 4.0, MustAt(t, m, 1, 1))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, MustAt(t, id, i, j))
		}
	}
}
