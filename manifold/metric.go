// SPDX-License-Identifier: MIT

package manifold

import (
	"math"

	"github.com/katalvlaran/riemann/matrix"
)

// Metric associates each point with a symmetric positive-definite metric
// tensor G(p) acting on ambient tangent coordinates.
type Metric interface {
	MetricTensor(p []float64) (matrix.Matrix, error)
}

// MetricInnerProduct returns v1ᵀ·G(p)·v2.
//
// Errors:
//   - DimensionMismatch when v1, v2 and G(p) disagree in size.
//   - Errors from MetricTensor are returned unchanged.
//
// Complexity: O(n²) for an n×n tensor.
func MetricInnerProduct(g Metric, p []float64, v1, v2 TangentVector) (float64, error) {
	if v1.Dim() != v2.Dim() {
		return 0, DimensionMismatch(v1.Dim(), v2.Dim())
	}
	tensor, err := g.MetricTensor(p)
	if err != nil {
		return 0, err
	}
	n := v1.Dim()
	if tensor.Rows() != n || tensor.Cols() != n {
		return 0, DimensionMismatch(n, tensor.Rows())
	}

	var (
		sum, gij float64
		i, j     int
	)
	for i = 0; i < n; i++ {
		if v1.Components[i] == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if gij, err = tensor.At(i, j); err != nil {
				return 0, LinearAlgebraErrorf("metric tensor", err)
			}
			sum += v1.Components[i] * gij * v2.Components[j]
		}
	}

	return sum, nil
}

// MetricNorm returns sqrt(MetricInnerProduct(g, p, v, v)).
func MetricNorm(g Metric, p []float64, v TangentVector) (float64, error) {
	ip, err := MetricInnerProduct(g, p, v, v)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(math.Max(ip, 0)), nil
}

// EuclideanMetric is the identity tensor on len(p) coordinates.
type EuclideanMetric struct{}

// MetricTensor returns I_{len(p)}.
// Errors: DimensionMismatch for an empty point.
func (EuclideanMetric) MetricTensor(p []float64) (matrix.Matrix, error) {
	id, err := matrix.NewIdentity(len(p))
	if err != nil {
		return nil, DimensionMismatch(1, len(p))
	}

	return id, nil
}
