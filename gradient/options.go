// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"
	"math"

	"github.com/katalvlaran/riemann/manifold"
)

// DefaultEpsilon is the forward-difference step.
const DefaultEpsilon = 1e-7

// CostFunc maps an ambient point to a scalar cost. It must be
// deterministic; with WithParallel it must also be safe for concurrent use.
type CostFunc func(point []float64) float64

// Options holds the resolved configuration of NumericalWith.
type Options struct {
	Epsilon  float64 // forward-difference step, > 0
	Parallel int     // 0 = sequential; > 0 = at most Parallel concurrent cost calls
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sequential evaluation with DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon sets the forward-difference step. Validation happens when the
// options are used, so an invalid eps surfaces as InvalidParameter.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithParallel evaluates the per-coordinate perturbations on up to limit
// goroutines. limit ≤ 0 keeps the sequential path.
func WithParallel(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			limit = 0
		}
		o.Parallel = limit
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validateEpsilon requires a finite, strictly positive step.
func validateEpsilon(eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return manifold.InvalidParameter(fmt.Sprintf("epsilon must be finite and > 0, got %g", eps))
	}

	return nil
}
