// SPDX-License-Identifier: MIT

// Package optimize implements first-order Riemannian optimization.
//
// GradientDescent repeats, up to MaxIterations times:
//
//	g    = grad f(x)                (forward differences, tangent projection)
//	x'   = Exp_x(-LearningRate · g)
//	stop when |f(x) - f(x')| < Tolerance
//
// Exhausting the iteration budget is reported through Result.Status; by
// default it is not an error, and WithStrictConvergence turns it into a
// manifold.ErrConvergence failure.
//
// Errors from the manifold or the gradient are returned unchanged and abort
// the run; no partial result is returned alongside an error.
//
// Configuration may come from code (NewGradientDescent + options) or from a
// YAML document (LoadConfig / ParseConfig + NewFromConfig).
package optimize
