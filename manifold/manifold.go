// SPDX-License-Identifier: MIT
// Package manifold: the geometry contract and the operations derived from it.
//
// Contract:
//   - Every method that receives a point or tangent vector validates it first
//     (DimensionMismatch → PointNotOnManifold → InvalidTangentVector) and
//     performs no geometric work on invalid input.
//   - Implementations are immutable value objects; they hold parameters only
//     and are safe for concurrent use.
//
// Derived operations (Norm, Retract, Distance, Geodesic, ParallelTransport)
// are free functions over the interface so that each geometry implements the
// primitives once and nothing more.

package manifold

import "math"

// Manifold is the capability set every geometry must provide.
type Manifold interface {
	// Dim returns the intrinsic dimension.
	Dim() int

	// CheckPoint validates membership of p.
	CheckPoint(p []float64) error

	// CheckTangentVector validates p and then that v lies in T_pM.
	CheckTangentVector(p []float64, v TangentVector) error

	// ProjectToManifold returns the nearest valid point under the geometry's
	// own notion of "nearest".
	ProjectToManifold(p []float64) ([]float64, error)

	// ProjectToTangentSpace returns the tangent component of an arbitrary
	// ambient vector at p.
	ProjectToTangentSpace(p []float64, v TangentVector) (TangentVector, error)

	// Exp is the Riemannian exponential map at p.
	Exp(p []float64, v TangentVector) ([]float64, error)

	// Log is the Riemannian logarithm map at p: Exp(p, Log(p, q)) == q.
	Log(p, q []float64) (TangentVector, error)

	// InnerProduct is the metric at p evaluated on (v1, v2).
	InnerProduct(p []float64, v1, v2 TangentVector) (float64, error)
}

// Retractor is implemented by geometries that provide a cheaper
// approximation of Exp. Retract uses it when present.
type Retractor interface {
	Retract(p []float64, v TangentVector) ([]float64, error)
}

// Transporter is implemented by geometries with an exact (or better than
// first-order) vector transport. ParallelTransport uses it when present.
type Transporter interface {
	ParallelTransport(p []float64, v, direction TangentVector) (TangentVector, error)
}

// Norm returns sqrt(InnerProduct(p, v, v)).
// Complexity: one InnerProduct call.
func Norm(m Manifold, p []float64, v TangentVector) (float64, error) {
	ip, err := m.InnerProduct(p, v, v)
	if err != nil {
		return 0, err
	}
	if ip < 0 {
		// a valid metric is positive-definite; negative values are round-off
		ip = 0
	}

	return math.Sqrt(ip), nil
}

// Retract moves from p along v. It defaults to Exp and defers to the
// geometry's Retractor when it implements one.
func Retract(m Manifold, p []float64, v TangentVector) ([]float64, error) {
	if r, ok := m.(Retractor); ok {
		return r.Retract(p, v)
	}

	return m.Exp(p, v)
}

// Distance returns the geodesic distance ‖Log(p, q)‖_p.
func Distance(m Manifold, p, q []float64) (float64, error) {
	v, err := m.Log(p, q)
	if err != nil {
		return 0, err
	}

	return Norm(m, p, v)
}

// Geodesic evaluates the geodesic t ↦ Exp(p, t·v); t=0 yields p and t=1
// yields Exp(p, v).
func Geodesic(m Manifold, p []float64, v TangentVector, t float64) ([]float64, error) {
	return m.Exp(p, v.Scale(t))
}

// ParallelTransport carries v from T_pM to the tangent space at
// Exp(p, direction).
//
// Implementation:
//   - Stage 1: defer to Transporter when the geometry has one.
//   - Stage 2: otherwise move to q = Exp(p, direction) and project v onto T_qM.
//
// Notes:
//   - The projection fallback is a first-order approximation of parallel
//     transport, which is all the first-order optimizer needs.
func ParallelTransport(m Manifold, p []float64, v, direction TangentVector) (TangentVector, error) {
	if tr, ok := m.(Transporter); ok {
		return tr.ParallelTransport(p, v, direction)
	}
	if err := m.CheckTangentVector(p, v); err != nil {
		return TangentVector{}, err
	}
	q, err := m.Exp(p, direction)
	if err != nil {
		return TangentVector{}, err
	}

	return m.ProjectToTangentSpace(q, v)
}
