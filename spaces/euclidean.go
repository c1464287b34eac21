// SPDX-License-Identifier: MIT

package spaces

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/riemann/manifold"
	"github.com/katalvlaran/riemann/matrix"
)

// Euclidean is flat R^n with the standard dot product.
type Euclidean struct {
	Dimension int
}

var (
	_ manifold.Manifold = Euclidean{}
	_ manifold.Metric   = Euclidean{}
)

// NewEuclidean returns R^n.
func NewEuclidean(n int) Euclidean { return Euclidean{Dimension: n} }

// Dim returns n.
func (e Euclidean) Dim() int { return e.Dimension }

// CheckPoint accepts any slice of length n.
func (e Euclidean) CheckPoint(p []float64) error {
	if len(p) != e.Dimension {
		return manifold.DimensionMismatch(e.Dimension, len(p))
	}

	return nil
}

// CheckTangentVector accepts any vector of length n at a valid point.
func (e Euclidean) CheckTangentVector(p []float64, v manifold.TangentVector) error {
	if err := e.CheckPoint(p); err != nil {
		return err
	}
	if v.Dim() != e.Dimension {
		return manifold.DimensionMismatch(e.Dimension, v.Dim())
	}

	return nil
}

// ProjectToManifold returns a copy of p.
func (e Euclidean) ProjectToManifold(p []float64) ([]float64, error) {
	if err := e.CheckPoint(p); err != nil {
		return nil, err
	}
	out := make([]float64, len(p))
	copy(out, p)

	return out, nil
}

// ProjectToTangentSpace returns a copy of v; every vector is tangent.
func (e Euclidean) ProjectToTangentSpace(p []float64, v manifold.TangentVector) (manifold.TangentVector, error) {
	if err := e.CheckTangentVector(p, v); err != nil {
		return manifold.TangentVector{}, err
	}

	return v.Clone(), nil
}

// Exp returns p + v.
func (e Euclidean) Exp(p []float64, v manifold.TangentVector) ([]float64, error) {
	if err := e.CheckTangentVector(p, v); err != nil {
		return nil, err
	}

	return floats.AddTo(make([]float64, e.Dimension), p, v.Components), nil
}

// Log returns q - p.
func (e Euclidean) Log(p, q []float64) (manifold.TangentVector, error) {
	if err := e.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}
	if err := e.CheckPoint(q); err != nil {
		return manifold.TangentVector{}, err
	}

	return manifold.TangentVector{Components: floats.SubTo(make([]float64, e.Dimension), q, p)}, nil
}

// InnerProduct returns the dot product v1·v2; the metric does not depend on p.
func (e Euclidean) InnerProduct(p []float64, v1, v2 manifold.TangentVector) (float64, error) {
	if err := e.CheckTangentVector(p, v1); err != nil {
		return 0, err
	}
	if err := e.CheckTangentVector(p, v2); err != nil {
		return 0, err
	}

	return floats.Dot(v1.Components, v2.Components), nil
}

// MetricTensor returns the identity, making Euclidean a manifold.Metric.
func (e Euclidean) MetricTensor(p []float64) (matrix.Matrix, error) {
	if err := e.CheckPoint(p); err != nil {
		return nil, err
	}

	return manifold.EuclideanMetric{}.MetricTensor(p)
}
