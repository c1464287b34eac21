// SPDX-License-Identifier: MIT

package spaces

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/riemann/manifold"
)

// Sphere is the unit n-sphere embedded in R^{n+1}. Points and tangent
// vectors have n+1 ambient coordinates; the metric is the ambient dot
// product restricted to the tangent space.
type Sphere struct {
	Dimension int
}

var (
	_ manifold.Manifold    = Sphere{}
	_ manifold.Retractor   = Sphere{}
	_ manifold.Transporter = Sphere{}
)

// NewSphere returns S^n.
func NewSphere(n int) Sphere { return Sphere{Dimension: n} }

// Dim returns the intrinsic dimension n.
func (s Sphere) Dim() int { return s.Dimension }

// ambient returns n+1.
func (s Sphere) ambient() int { return s.Dimension + 1 }

// CheckPoint requires len(p) == n+1 and |‖p‖² - 1| ≤ Tolerance.
func (s Sphere) CheckPoint(p []float64) error {
	if len(p) != s.ambient() {
		return manifold.DimensionMismatch(s.ambient(), len(p))
	}
	ns := floats.Dot(p, p)
	// negated form also rejects NaN
	if !(math.Abs(ns-1) <= Tolerance) {
		return manifold.PointNotOnManifold(fmt.Sprintf("point norm is %g instead of 1", math.Sqrt(ns)))
	}

	return nil
}

// CheckTangentVector requires a valid p and |p·v| ≤ Tolerance.
func (s Sphere) CheckTangentVector(p []float64, v manifold.TangentVector) error {
	if err := s.CheckPoint(p); err != nil {
		return err
	}
	if v.Dim() != s.ambient() {
		return manifold.DimensionMismatch(s.ambient(), v.Dim())
	}
	dot := floats.Dot(p, v.Components)
	if !(math.Abs(dot) <= Tolerance) {
		return manifold.InvalidTangentVector(fmt.Sprintf("vector not orthogonal to point, dot product %g", dot))
	}

	return nil
}

// ProjectToManifold normalizes p to unit length.
// Errors: NumericalError when ‖p‖ < Tolerance or ‖p‖ is not finite.
func (s Sphere) ProjectToManifold(p []float64) ([]float64, error) {
	if len(p) != s.ambient() {
		return nil, manifold.DimensionMismatch(s.ambient(), len(p))
	}
	norm := floats.Norm(p, 2)
	// !(norm >= Tolerance) also rejects NaN.
	if !(norm >= Tolerance) || math.IsInf(norm, 0) {
		return nil, manifold.NumericalError(fmt.Sprintf("cannot project vector of norm %g to sphere", norm))
	}

	return floats.ScaleTo(make([]float64, len(p)), 1/norm, p), nil
}

// ProjectToTangentSpace returns v - (p·v)/(p·p)·p, which reduces to
// v - (p·v)·p on the sphere and stays orthogonal to p under round-off.
func (s Sphere) ProjectToTangentSpace(p []float64, v manifold.TangentVector) (manifold.TangentVector, error) {
	if err := s.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}
	if v.Dim() != s.ambient() {
		return manifold.TangentVector{}, manifold.DimensionMismatch(s.ambient(), v.Dim())
	}
	out := v.Clone()
	floats.AddScaled(out.Components, -floats.Dot(p, v.Components)/floats.Dot(p, p), p)

	return out, nil
}

// Exp follows the great circle through p with initial velocity v:
//
//	exp_p(v) = p·cos‖v‖ + (v/‖v‖)·sin‖v‖
//
// For ‖v‖ < Tolerance it returns p unchanged.
func (s Sphere) Exp(p []float64, v manifold.TangentVector) ([]float64, error) {
	if err := s.CheckTangentVector(p, v); err != nil {
		return nil, err
	}
	r := v.Norm()
	out := make([]float64, len(p))
	if r < Tolerance {
		copy(out, p)
		return out, nil
	}
	floats.ScaleTo(out, math.Cos(r), p)
	floats.AddScaled(out, math.Sin(r)/r, v.Components)

	return out, nil
}

// Log returns the initial velocity of the minimizing great circle from p
// to q, with length equal to the angle between them.
//
// Implementation:
//   - Stage 1: c = clamp(p·q, -1, 1), θ = acos c.
//   - Stage 2: θ < Tolerance → zero vector; sin θ < Tolerance → antipodal.
//   - Stage 3: (q - c·p)·θ/sin θ.
//
// Errors: NumericalError for antipodal points, where the log is not unique.
func (s Sphere) Log(p, q []float64) (manifold.TangentVector, error) {
	if err := s.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}
	if err := s.CheckPoint(q); err != nil {
		return manifold.TangentVector{}, err
	}

	c := math.Max(-1, math.Min(1, floats.Dot(p, q)))
	theta := math.Acos(c)
	if math.Abs(theta) < Tolerance {
		return manifold.ZeroTangent(s.ambient()), nil
	}
	sinTheta := math.Sin(theta)
	if math.Abs(sinTheta) < Tolerance {
		return manifold.TangentVector{}, manifold.NumericalError("points are antipodal, logarithm map is not unique")
	}

	out := make([]float64, len(p))
	copy(out, q)
	floats.AddScaled(out, -c, p)
	floats.Scale(theta/sinTheta, out)

	return manifold.TangentVector{Components: out}, nil
}

// InnerProduct returns the ambient dot product v1·v2.
func (s Sphere) InnerProduct(p []float64, v1, v2 manifold.TangentVector) (float64, error) {
	if err := s.CheckTangentVector(p, v1); err != nil {
		return 0, err
	}
	if err := s.CheckTangentVector(p, v2); err != nil {
		return 0, err
	}

	return floats.Dot(v1.Components, v2.Components), nil
}

// Retract is the projective retraction (p + v)/‖p + v‖. It agrees with Exp
// to first order.
func (s Sphere) Retract(p []float64, v manifold.TangentVector) ([]float64, error) {
	if err := s.CheckTangentVector(p, v); err != nil {
		return nil, err
	}

	return s.ProjectToManifold(floats.AddTo(make([]float64, len(p)), p, v.Components))
}

// ParallelTransport carries v along the great circle from p with initial
// velocity direction. With r = ‖direction‖ and u = direction/r:
//
//	Γ(v) = v - (u·v)·(u·(1 - cos r) + p·sin r)
//
// The result is tangent at Exp(p, direction) and has the same norm as v.
func (s Sphere) ParallelTransport(p []float64, v, direction manifold.TangentVector) (manifold.TangentVector, error) {
	if err := s.CheckTangentVector(p, v); err != nil {
		return manifold.TangentVector{}, err
	}
	if err := s.CheckTangentVector(p, direction); err != nil {
		return manifold.TangentVector{}, err
	}
	r := direction.Norm()
	if r < Tolerance {
		return v.Clone(), nil
	}

	u := direction.Scale(1 / r)
	a := floats.Dot(u.Components, v.Components)
	out := v.Clone()
	floats.AddScaled(out.Components, -a*(1-math.Cos(r)), u.Components)
	floats.AddScaled(out.Components, -a*math.Sin(r), p)

	return out, nil
}
