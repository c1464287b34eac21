// Package riemann is a small toolkit for optimization on Riemannian
// manifolds: spheres, symmetric positive-definite matrices and plain R^n,
// behind one geometry contract.
//
// What's inside:
//
//	• A manifold contract: membership and tangency checks, projections,
//	  exponential and logarithm maps, inner products
//	• Derived geometry: norm, distance, geodesics, retraction, parallel transport
//	• Concrete spaces: Euclidean, Sphere, SPD (affine-invariant metric)
//	• Finite-difference Riemannian gradients, sequential or concurrent
//	• Riemannian gradient descent with YAML configuration and slog logging
//
// Everything is organized under five subpackages:
//
//	matrix/   dense row-major linear algebra (Cholesky, LU inverse, trace, …)
//	manifold/ TangentVector, the Manifold contract, derived operations,
//	            the error taxonomy and Riemannian metrics
//	spaces/   Euclidean, Sphere and SPD geometries
//	gradient/ numerical gradient, Riemannian projection, directional derivative
//	optimize/ GradientDescent, Result/Status reporting, Config
//
// Quick example:
//
//	gd, _ := optimize.NewGradientDescent(0.1, 100, 1e-8)
//	x, err := gd.Minimize(spaces.NewSphere(2), []float64{1, 0, 0}, cost)
//
// finds the point of the unit 2-sphere that minimizes cost.
//
//	go get github.com/katalvlaran/riemann
package riemann
