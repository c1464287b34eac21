// SPDX-License-Identifier: MIT

package manifold

import "gonum.org/v1/gonum/floats"

// TangentVector is an element of the tangent space at some base point, in
// the ambient coordinates of its manifold. The base point is not stored.
//
// All operations return fresh values; the receiver and operands are never
// mutated.
type TangentVector struct {
	Components []float64
}

// NewTangentVector copies components into a new TangentVector.
func NewTangentVector(components []float64) TangentVector {
	c := make([]float64, len(components))
	copy(c, components)

	return TangentVector{Components: c}
}

// ZeroTangent returns the zero vector of length n.
func ZeroTangent(n int) TangentVector {
	return TangentVector{Components: make([]float64, n)}
}

// Dim returns the number of ambient components.
func (v TangentVector) Dim() int { return len(v.Components) }

// Clone returns a deep copy.
func (v TangentVector) Clone() TangentVector { return NewTangentVector(v.Components) }

// Add returns v + w.
// Errors: DimensionMismatch when lengths differ.
func (v TangentVector) Add(w TangentVector) (TangentVector, error) {
	if len(v.Components) != len(w.Components) {
		return TangentVector{}, DimensionMismatch(len(v.Components), len(w.Components))
	}
	out := make([]float64, len(v.Components))

	return TangentVector{Components: floats.AddTo(out, v.Components, w.Components)}, nil
}

// Sub returns v - w.
// Errors: DimensionMismatch when lengths differ.
func (v TangentVector) Sub(w TangentVector) (TangentVector, error) {
	if len(v.Components) != len(w.Components) {
		return TangentVector{}, DimensionMismatch(len(v.Components), len(w.Components))
	}
	out := make([]float64, len(v.Components))

	return TangentVector{Components: floats.SubTo(out, v.Components, w.Components)}, nil
}

// Scale returns alpha·v.
func (v TangentVector) Scale(alpha float64) TangentVector {
	out := make([]float64, len(v.Components))

	return TangentVector{Components: floats.ScaleTo(out, alpha, v.Components)}
}

// Dot returns the ambient (Euclidean) dot product v·w. This is not the
// Riemannian inner product; use InnerProduct on the manifold for that.
func (v TangentVector) Dot(w TangentVector) (float64, error) {
	if len(v.Components) != len(w.Components) {
		return 0, DimensionMismatch(len(v.Components), len(w.Components))
	}

	return floats.Dot(v.Components, w.Components), nil
}

// NormSquared returns v·v.
func (v TangentVector) NormSquared() float64 {
	return floats.Dot(v.Components, v.Components)
}

// Norm returns the ambient Euclidean length of v.
func (v TangentVector) Norm() float64 {
	if len(v.Components) == 0 {
		return 0
	}

	return floats.Norm(v.Components, 2)
}
