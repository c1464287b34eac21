// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels used by the SPD geometry: a diagonal floor for the
//     positive-definiteness heuristic and a max-abs reduction for series
//     convergence tests.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loops on the dense view; one allocation at most.

package matrix

import "math"

const (
	opFloorDiagonal = "FloorDiagonal"
	opMaxAbs        = "MaxAbs"
)

// FloorDiagonal returns a copy of the square matrix m with every diagonal
// entry raised to at least lo. Off-diagonal entries are copied unchanged.
// NaN diagonal entries are replaced by lo.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrNaNInf when lo is not finite.
//
// Complexity:
//   - Time O(n^2) for the copy, Space O(n^2).
func FloorDiagonal(m Matrix, lo float64) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFloorDiagonal, err)
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) {
		return nil, matrixErrorf(opFloorDiagonal, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opFloorDiagonal, err)
	}

	out := d.Clone().(*Dense)
	n := d.r
	var v float64
	for i := 0; i < n; i++ {
		v = out.data[i*n+i]
		// !(v >= lo) also floors NaN.
		if !(v >= lo) {
			out.data[i*n+i] = lo
		}
	}

	return out, nil
}

// MaxAbs returns max |m[i,j]|. A NaN entry makes the result NaN.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense.
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	var best float64
	for _, v := range d.data {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}
