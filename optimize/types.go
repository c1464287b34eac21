// SPDX-License-Identifier: MIT

package optimize

import (
	"github.com/katalvlaran/riemann/gradient"
	"github.com/katalvlaran/riemann/manifold"
)

// Optimizer minimizes a cost over a manifold starting from x0.
type Optimizer interface {
	Minimize(m manifold.Manifold, x0 []float64, cost gradient.CostFunc) ([]float64, error)
}

// Status describes how a run terminated.
type Status int

const (
	// StatusConverged: the cost change fell below Tolerance.
	StatusConverged Status = iota + 1
	// StatusIterationLimit: MaxIterations steps were taken without converging.
	StatusIterationLimit
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusIterationLimit:
		return "iteration limit"
	default:
		return "unknown"
	}
}

// Result is the full report of a run.
type Result struct {
	Point       []float64 // final iterate
	Cost        float64   // cost at Point
	Iterations  int       // steps taken
	Status      Status    // termination reason
	CostHistory []float64 // cost at x0 followed by the cost after each step
}
