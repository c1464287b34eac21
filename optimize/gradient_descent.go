// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/riemann/gradient"
	"github.com/katalvlaran/riemann/manifold"
)

// GradientDescent is Riemannian gradient descent with a fixed step size.
// A configured value is immutable and safe for concurrent use.
type GradientDescent struct {
	LearningRate  float64
	MaxIterations int
	Tolerance     float64

	epsilon  float64
	parallel int
	strict   bool
	logger   *slog.Logger
}

var _ Optimizer = (*GradientDescent)(nil)

// Option configures a GradientDescent.
type Option func(*GradientDescent)

// WithLogger routes per-iteration (Debug) and summary (Info) records to l.
// A nil l keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(gd *GradientDescent) {
		if l != nil {
			gd.logger = l
		}
	}
}

// WithEpsilon sets the finite-difference step of the gradient
// (default gradient.DefaultEpsilon).
func WithEpsilon(eps float64) Option {
	return func(gd *GradientDescent) { gd.epsilon = eps }
}

// WithParallelGradient evaluates gradient coordinates on up to limit
// goroutines. The cost must then be safe for concurrent use.
func WithParallelGradient(limit int) Option {
	return func(gd *GradientDescent) { gd.parallel = limit }
}

// WithStrictConvergence makes an exhausted iteration budget fail with
// manifold.ErrConvergence instead of returning the last iterate.
func WithStrictConvergence() Option {
	return func(gd *GradientDescent) { gd.strict = true }
}

// NewGradientDescent validates the parameters and applies opts.
//
// Errors:
//   - InvalidParameter when learningRate or tolerance is not finite and > 0,
//     maxIterations < 1, or the gradient epsilon is not finite and > 0.
func NewGradientDescent(learningRate float64, maxIterations int, tolerance float64, opts ...Option) (*GradientDescent, error) {
	gd := &GradientDescent{
		LearningRate:  learningRate,
		MaxIterations: maxIterations,
		Tolerance:     tolerance,
		epsilon:       gradient.DefaultEpsilon,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(gd)
		}
	}
	if err := gd.validate(); err != nil {
		return nil, err
	}

	return gd, nil
}

func (gd *GradientDescent) validate() error {
	switch {
	case !positiveFinite(gd.LearningRate):
		return manifold.InvalidParameter(fmt.Sprintf("learning rate must be finite and > 0, got %g", gd.LearningRate))
	case gd.MaxIterations < 1:
		return manifold.InvalidParameter(fmt.Sprintf("max iterations must be >= 1, got %d", gd.MaxIterations))
	case !positiveFinite(gd.Tolerance):
		return manifold.InvalidParameter(fmt.Sprintf("tolerance must be finite and > 0, got %g", gd.Tolerance))
	case !positiveFinite(gd.epsilon):
		return manifold.InvalidParameter(fmt.Sprintf("epsilon must be finite and > 0, got %g", gd.epsilon))
	case gd.parallel < 0:
		return manifold.InvalidParameter(fmt.Sprintf("parallel gradient limit must be >= 0, got %d", gd.parallel))
	}

	return nil
}

func positiveFinite(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

// Minimize runs gradient descent and returns the final point.
// See Run for the algorithm and error semantics.
func (gd *GradientDescent) Minimize(m manifold.Manifold, x0 []float64, cost gradient.CostFunc) ([]float64, error) {
	res, err := gd.Run(context.Background(), m, x0, cost)
	if err != nil {
		return nil, err
	}

	return res.Point, nil
}

// Run minimizes cost over m starting at x0 and reports the whole run.
//
// Implementation:
//   - Stage 1: CheckPoint(x0); prev = cost(x0).
//   - Stage 2: for up to MaxIterations steps: g = numerical gradient at x;
//     x = Exp(x, -LearningRate·g); cur = cost(x); stop when |prev-cur| < Tolerance.
//   - Stage 3: report StatusConverged or StatusIterationLimit. In strict mode
//     the latter becomes ConvergenceError(MaxIterations).
//
// Errors:
//   - InvalidParameter for a nil cost; any error from m or the gradient,
//     unchanged; ctx.Err() when ctx is cancelled between or during steps.
//
// Complexity:
//   - Each step costs len(x)+2 cost evaluations plus one Exp.
func (gd *GradientDescent) Run(ctx context.Context, m manifold.Manifold, x0 []float64, cost gradient.CostFunc) (*Result, error) {
	if cost == nil {
		return nil, manifold.InvalidParameter("cost function is nil")
	}
	if err := m.CheckPoint(x0); err != nil {
		return nil, err
	}

	x := make([]float64, len(x0))
	copy(x, x0)
	prev := cost(x)
	res := &Result{
		Status:      StatusIterationLimit,
		CostHistory: append(make([]float64, 0, gd.MaxIterations+1), prev),
	}
	gradOpts := []gradient.Option{gradient.WithEpsilon(gd.epsilon), gradient.WithParallel(gd.parallel)}

	var (
		g    manifold.TangentVector
		next []float64
		cur  = prev
		err  error
	)
	for res.Iterations < gd.MaxIterations {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if g, err = gradient.NumericalContext(ctx, m, x, cost, gradOpts...); err != nil {
			return nil, err
		}
		if next, err = m.Exp(x, g.Scale(-gd.LearningRate)); err != nil {
			return nil, err
		}
		x = next
		cur = cost(x)
		res.Iterations++
		res.CostHistory = append(res.CostHistory, cur)
		gd.logger.Debug("gradient descent step",
			"iteration", res.Iterations, "cost", cur, "gradient_norm", g.Norm())

		if math.Abs(prev-cur) < gd.Tolerance {
			res.Status = StatusConverged
			break
		}
		prev = cur
	}
	res.Point, res.Cost = x, cur

	gd.logger.Info("gradient descent finished",
		"status", res.Status.String(), "iterations", res.Iterations, "cost", res.Cost)
	if res.Status == StatusIterationLimit && gd.strict {
		return nil, manifold.ConvergenceError(res.Iterations)
	}

	return res, nil
}
