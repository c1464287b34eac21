// SPDX-License-Identifier: MIT
// Package manifold: failure taxonomy.
// Every fallible operation in this module returns either a value or exactly
// one *Error. Callers match the kind with errors.Is against the sentinels
// below, or extract the fields with errors.As.

package manifold

import (
	"errors"
	"fmt"
)

// Kind enumerates the failure classes shared by all components.
type Kind int

const (
	// KindDimensionMismatch: a shape precondition was violated.
	KindDimensionMismatch Kind = iota + 1
	// KindPointNotOnManifold: a membership check failed.
	KindPointNotOnManifold
	// KindInvalidTangentVector: a tangency check failed.
	KindInvalidTangentVector
	// KindNumerical: the operation is mathematically undefined at the input.
	KindNumerical
	// KindConvergence: an iterative procedure exhausted its budget.
	KindConvergence
	// KindInvalidParameter: a configuration value is out of range.
	KindInvalidParameter
	// KindLinearAlgebra: a decomposition or inversion failed.
	KindLinearAlgebra
)

// Sentinels matched through (*Error).Is. Do not return them directly;
// use the constructors so the structured fields are populated.
var (
	ErrDimensionMismatch    = errors.New("manifold: dimension mismatch")
	ErrPointNotOnManifold   = errors.New("manifold: point not on manifold")
	ErrInvalidTangentVector = errors.New("manifold: tangent vector not in tangent space")
	ErrNumerical            = errors.New("manifold: numerical error")
	ErrConvergence          = errors.New("manifold: convergence failed")
	ErrInvalidParameter     = errors.New("manifold: invalid parameter")
	ErrLinearAlgebra        = errors.New("manifold: linear algebra error")
	errUnknownKind          = errors.New("manifold: unknown error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindDimensionMismatch:
		return ErrDimensionMismatch
	case KindPointNotOnManifold:
		return ErrPointNotOnManifold
	case KindInvalidTangentVector:
		return ErrInvalidTangentVector
	case KindNumerical:
		return ErrNumerical
	case KindConvergence:
		return ErrConvergence
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindLinearAlgebra:
		return ErrLinearAlgebra
	default:
		return errUnknownKind
	}
}

// String returns the sentinel message without the package prefix.
func (k Kind) String() string {
	return k.sentinel().Error()[len("manifold: "):]
}

// Error is the structured failure value.
//   - Expected, Got: populated for KindDimensionMismatch.
//   - Iterations   : populated for KindConvergence.
//   - Reason       : free-form detail for the remaining kinds.
//   - Err          : optional underlying cause (e.g. a matrix sentinel).
type Error struct {
	Kind       Kind
	Expected   int
	Got        int
	Iterations int
	Reason     string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDimensionMismatch:
		return fmt.Sprintf("%v: expected %d, got %d", ErrDimensionMismatch, e.Expected, e.Got)
	case KindConvergence:
		return fmt.Sprintf("%v after %d iterations", ErrConvergence, e.Iterations)
	default:
		return fmt.Sprintf("%v: %s", e.Kind.sentinel(), e.Reason)
	}
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool { return target == e.Kind.sentinel() }

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// DimensionMismatch reports a length/shape precondition violation.
func DimensionMismatch(expected, got int) error {
	return &Error{Kind: KindDimensionMismatch, Expected: expected, Got: got}
}

// PointNotOnManifold reports a failed membership check.
func PointNotOnManifold(reason string) error {
	return &Error{Kind: KindPointNotOnManifold, Reason: reason}
}

// InvalidTangentVector reports a failed tangency check.
func InvalidTangentVector(reason string) error {
	return &Error{Kind: KindInvalidTangentVector, Reason: reason}
}

// NumericalError reports an operation that is undefined at its input.
func NumericalError(msg string) error {
	return &Error{Kind: KindNumerical, Reason: msg}
}

// ConvergenceError reports an iteration budget exhausted without convergence.
func ConvergenceError(iterations int) error {
	return &Error{Kind: KindConvergence, Iterations: iterations}
}

// InvalidParameter reports an invalid configuration value.
func InvalidParameter(msg string) error {
	return &Error{Kind: KindInvalidParameter, Reason: msg}
}

// LinearAlgebraError reports a failed decomposition or inversion.
func LinearAlgebraError(msg string) error {
	return &Error{Kind: KindLinearAlgebra, Reason: msg}
}

// LinearAlgebraErrorf wraps a collaborator failure (typically a matrix
// sentinel) as KindLinearAlgebra while keeping it reachable via errors.Is.
func LinearAlgebraErrorf(msg string, cause error) error {
	return &Error{Kind: KindLinearAlgebra, Reason: fmt.Sprintf("%s: %v", msg, cause), Err: cause}
}
