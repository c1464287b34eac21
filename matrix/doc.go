// Package matrix is the dense linear-algebra layer used by the manifold
// geometries.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 storage with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation with flat-slice fast paths.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, Symmetrize, Trace.
//   - Factorizations: LU (Doolittle, no pivoting), Cholesky (L·Lᵀ) and
//     Inverse built on LU.
//   - Central validators (ValidateSquare, ValidateSymmetric, ...) and
//     AllClose for tolerance comparisons.
//
// Every kernel allocates a fresh result and never mutates its operands.
// Errors are package sentinels wrapped with an operation tag; match them
// with errors.Is.
//
// The package is sized for the small matrices of the SPD manifold
// (n ≤ a few dozen); all kernels are O(n³) at worst and fully
// deterministic.
package matrix
