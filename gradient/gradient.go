// SPDX-License-Identifier: MIT

package gradient

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/riemann/manifold"
)

// Numerical estimates the Riemannian gradient of cost at p with step eps.
// Equivalent to NumericalWith(m, p, cost, WithEpsilon(eps)).
func Numerical(m manifold.Manifold, p []float64, cost CostFunc, eps float64) (manifold.TangentVector, error) {
	return NumericalWith(m, p, cost, WithEpsilon(eps))
}

// NumericalWith is Numerical configured through options.
func NumericalWith(m manifold.Manifold, p []float64, cost CostFunc, opts ...Option) (manifold.TangentVector, error) {
	return NumericalContext(context.Background(), m, p, cost, opts...)
}

// NumericalContext estimates the Riemannian gradient of cost at p.
//
// Implementation:
//   - Stage 1: validate eps and cost; CheckPoint(p); f0 = cost(p).
//   - Stage 2: gᵢ = (cost(p + eps·eᵢ) - f0)/eps for every ambient
//     coordinate i, sequentially or on an errgroup bounded by Parallel.
//   - Stage 3: return ProjectToTangentSpace(p, g).
//
// Errors:
//   - InvalidParameter for a bad eps or nil cost.
//   - Point validation and projection errors from m, unchanged.
//   - ctx.Err() when ctx is cancelled before every coordinate is evaluated.
//
// Determinism:
//   - Every coordinate is written by exactly one evaluation, so the parallel
//     and sequential paths return identical vectors.
//
// Complexity:
//   - len(p)+1 cost evaluations, O(len(p)) extra space per goroutine.
func NumericalContext(ctx context.Context, m manifold.Manifold, p []float64, cost CostFunc, opts ...Option) (manifold.TangentVector, error) {
	o := gatherOptions(opts...)
	if err := validateEpsilon(o.Epsilon); err != nil {
		return manifold.TangentVector{}, err
	}
	if cost == nil {
		return manifold.TangentVector{}, manifold.InvalidParameter("cost function is nil")
	}
	if err := m.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}

	f0 := cost(p)
	grad := make([]float64, len(p))
	partial := func(i int) {
		shifted := make([]float64, len(p))
		copy(shifted, p)
		shifted[i] += o.Epsilon
		grad[i] = (cost(shifted) - f0) / o.Epsilon
	}

	if o.Parallel > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Parallel)
		for i := range p {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				partial(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return manifold.TangentVector{}, err
		}
	} else {
		for i := range p {
			if err := ctx.Err(); err != nil {
				return manifold.TangentVector{}, err
			}
			partial(i)
		}
	}

	return m.ProjectToTangentSpace(p, manifold.TangentVector{Components: grad})
}

// Riemannian converts a Euclidean gradient into the Riemannian gradient at p
// by tangent-space projection. The input slice is not retained.
func Riemannian(m manifold.Manifold, p []float64, euclidean []float64) (manifold.TangentVector, error) {
	if err := m.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}

	return m.ProjectToTangentSpace(p, manifold.NewTangentVector(euclidean))
}

// Directional estimates the derivative of cost at p along direction:
//
//	(cost(Exp(p, eps·direction)) - cost(p)) / eps
//
// Errors: InvalidParameter for a bad eps or nil cost; tangent validation
// and Exp errors from m.
func Directional(m manifold.Manifold, p []float64, direction manifold.TangentVector, cost CostFunc, eps float64) (float64, error) {
	if err := validateEpsilon(eps); err != nil {
		return 0, err
	}
	if cost == nil {
		return 0, manifold.InvalidParameter("cost function is nil")
	}
	if err := m.CheckTangentVector(p, direction); err != nil {
		return 0, err
	}
	shifted, err := m.Exp(p, direction.Scale(eps))
	if err != nil {
		return 0, err
	}

	return (cost(shifted) - cost(p)) / eps, nil
}
