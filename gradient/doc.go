// SPDX-License-Identifier: MIT

// Package gradient estimates Riemannian gradients by finite differences.
//
// What:
//   - Numerical / NumericalWith / NumericalContext: forward differences in
//     every ambient coordinate, projected onto the tangent space.
//   - Riemannian: projection of a caller-supplied Euclidean gradient.
//   - Directional: forward difference along a tangent direction via Exp.
//
// Notes:
//   - Forward differences perturb p in the ambient space, so the cost must
//     be defined in a neighbourhood of the manifold, not only on it.
//   - Truncation error is O(eps); round-off error is O(1/eps). The default
//     eps (1e-7) balances both for well-scaled double-precision costs.
package gradient
