// SPDX-License-Identifier: MIT

// Package spaces provides concrete geometries implementing manifold.Manifold.
//
// Available:
//   - Euclidean: flat R^n, exp = p + v, log = q - p, dot-product metric.
//   - Sphere:    unit sphere S^n embedded in R^{n+1}; great-circle geodesics,
//     exact parallel transport and a normalization retraction.
//   - SPD:       n×n symmetric positive-definite matrices stored as a
//     row-major slice of length n²; affine-invariant metric.
//
// Every geometry is an immutable value holding only its size parameter, so
// a single value may be shared across goroutines.
//
// Tolerances:
//   - Membership and tangency checks use Tolerance (1e-10).
//   - SPD matrix series stop once every entry of the current term is below
//     SeriesTolerance (1e-12).
package spaces

const (
	// Tolerance bounds membership/tangency checks and near-zero guards.
	Tolerance = 1e-10

	// SeriesTolerance is the early-stop threshold of MatrixExp/MatrixLog.
	SeriesTolerance = 1e-12
)
