// SPDX-License-Identifier: MIT

package manifold

// Geometry wraps a Manifold and exposes the derived operations as methods.
// Overrides (Retractor, Transporter) supplied either by the wrapped manifold
// or through WithRetraction/WithTransport take precedence over the defaults.
//
// Geometry itself satisfies Manifold, so it can be passed anywhere a
// Manifold is accepted (e.g. to the optimizer).
type Geometry struct {
	Manifold

	retract   func(p []float64, v TangentVector) ([]float64, error)
	transport func(p []float64, v, direction TangentVector) (TangentVector, error)
}

var (
	_ Manifold    = Geometry{}
	_ Retractor   = Geometry{}
	_ Transporter = Geometry{}
)

// NewGeometry wraps m. A nil m yields a Geometry whose methods panic, as
// with any nil interface.
func NewGeometry(m Manifold) Geometry {
	return Geometry{Manifold: m}
}

// WithRetraction returns a copy of g that uses fn in place of Exp for Retract.
func (g Geometry) WithRetraction(fn func(p []float64, v TangentVector) ([]float64, error)) Geometry {
	g.retract = fn
	return g
}

// WithTransport returns a copy of g that uses fn for ParallelTransport.
func (g Geometry) WithTransport(fn func(p []float64, v, direction TangentVector) (TangentVector, error)) Geometry {
	g.transport = fn
	return g
}

// Norm returns ‖v‖_p.
func (g Geometry) Norm(p []float64, v TangentVector) (float64, error) {
	return Norm(g.Manifold, p, v)
}

// Retract applies the configured retraction, the wrapped manifold's
// Retractor, or Exp, in that order.
func (g Geometry) Retract(p []float64, v TangentVector) ([]float64, error) {
	if g.retract != nil {
		return g.retract(p, v)
	}

	return Retract(g.Manifold, p, v)
}

// Distance returns the geodesic distance between p and q.
func (g Geometry) Distance(p, q []float64) (float64, error) {
	return Distance(g.Manifold, p, q)
}

// Geodesic evaluates Exp(p, t·v).
func (g Geometry) Geodesic(p []float64, v TangentVector, t float64) ([]float64, error) {
	return Geodesic(g.Manifold, p, v, t)
}

// ParallelTransport carries v from p along direction.
func (g Geometry) ParallelTransport(p []float64, v, direction TangentVector) (TangentVector, error) {
	if g.transport != nil {
		return g.transport(p, v, direction)
	}

	return ParallelTransport(g.Manifold, p, v, direction)
}
