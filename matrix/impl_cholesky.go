// SPDX-License-Identifier: MIT

package matrix

import "math"

const opCholesky = "Cholesky"

// Cholesky computes the lower-triangular factor L of a symmetric
// positive-definite matrix so that A = L·Lᵀ.
// MAIN DESCRIPTION:
//   - Cholesky–Banachiewicz, row by row. Only the lower triangle of A is read;
//     symmetry is the caller's contract (see ValidateSymmetric).
//
// Implementation:
//   - Stage 1: ValidateSquare(m); allocate L(n×n) zeroed.
//   - Stage 2: for i=0..n-1, j=0..i:
//     s = A[i,j] - Σ_{k<j} L[i,k]·L[j,k]
//     L[i,i] = sqrt(s) (requires s > 0), L[i,j] = s / L[j,j] for j<i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrNotPositiveDefinite when a diagonal pivot s ≤ 0 or is NaN.
//
// Determinism:
//   - Fixed i→j→k loop order.
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
func Cholesky(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j, k int
		s       float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			s = a.data[i*n+j]
			for k = 0; k < j; k++ {
				s -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				// !(s > 0) also rejects NaN.
				if !(s > 0) || math.IsInf(s, 0) {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[i*n+i] = math.Sqrt(s)
				continue
			}
			l.data[i*n+j] = s / l.data[j*n+j]
		}
	}

	return l, nil
}
