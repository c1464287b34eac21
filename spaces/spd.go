// SPDX-License-Identifier: MIT

package spaces

import (
	"github.com/katalvlaran/riemann/manifold"
	"github.com/katalvlaran/riemann/matrix"
)

// Series budgets: MatrixExp sums terms k=1..19, MatrixLog k=1..49.
const (
	expSeriesTerms = 20
	logSeriesTerms = 50
)

// SPD is the manifold of n×n symmetric positive-definite matrices with the
// affine-invariant metric ⟨V₁,V₂⟩_P = trace(P⁻¹V₁P⁻¹V₂).
//
// Points and tangent vectors are flattened row-major into slices of length
// n²; tangent vectors are symmetric matrices.
type SPD struct {
	Size int
}

var _ manifold.Manifold = SPD{}

// NewSPD returns the manifold of n×n SPD matrices.
func NewSPD(n int) SPD { return SPD{Size: n} }

// Dim returns n(n+1)/2, the number of free entries of a symmetric matrix.
func (s SPD) Dim() int { return s.Size * (s.Size + 1) / 2 }

func (s SPD) ambient() int { return s.Size * s.Size }

// dense imports a flat row-major slice after the length check.
func (s SPD) dense(x []float64) (*matrix.Dense, error) {
	if s.Size <= 0 || len(x) != s.ambient() {
		return nil, manifold.DimensionMismatch(s.ambient(), len(x))
	}
	d, err := matrix.NewDenseFrom(s.Size, s.Size, x)
	if err != nil {
		return nil, manifold.DimensionMismatch(s.ambient(), len(x))
	}

	return d, nil
}

// CheckPoint requires a symmetric matrix (within Tolerance) that admits a
// Cholesky factorization.
func (s SPD) CheckPoint(p []float64) error {
	pm, err := s.dense(p)
	if err != nil {
		return err
	}
	if err = matrix.ValidateSymmetric(pm, Tolerance); err != nil {
		return manifold.PointNotOnManifold("matrix is not symmetric")
	}
	if _, err = matrix.Cholesky(pm); err != nil {
		return manifold.PointNotOnManifold("matrix is not positive definite")
	}

	return nil
}

// CheckTangentVector requires a valid p and a symmetric v.
func (s SPD) CheckTangentVector(p []float64, v manifold.TangentVector) error {
	if err := s.CheckPoint(p); err != nil {
		return err
	}
	vm, err := s.dense(v.Components)
	if err != nil {
		return err
	}
	if err = matrix.ValidateSymmetric(vm, Tolerance); err != nil {
		return manifold.InvalidTangentVector("tangent matrix is not symmetric")
	}

	return nil
}

// ProjectToManifold symmetrizes p and floors every diagonal entry at
// Tolerance.
//
// Notes:
//   - This is a heuristic: the result is symmetric but not guaranteed to be
//     positive definite (e.g. large off-diagonal entries survive). Callers
//     that need membership should CheckPoint the result.
func (s SPD) ProjectToManifold(p []float64) ([]float64, error) {
	pm, err := s.dense(p)
	if err != nil {
		return nil, err
	}
	sym, err := matrix.Symmetrize(pm)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("symmetrize", err)
	}
	floored, err := matrix.FloorDiagonal(sym, Tolerance)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("floor diagonal", err)
	}

	return flatten(floored), nil
}

// ProjectToTangentSpace returns the symmetric part (V + Vᵀ)/2.
func (s SPD) ProjectToTangentSpace(p []float64, v manifold.TangentVector) (manifold.TangentVector, error) {
	if err := s.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}
	vm, err := s.dense(v.Components)
	if err != nil {
		return manifold.TangentVector{}, err
	}
	sym, err := matrix.Symmetrize(vm)
	if err != nil {
		return manifold.TangentVector{}, manifold.LinearAlgebraErrorf("symmetrize", err)
	}

	return manifold.TangentVector{Components: flatten(sym)}, nil
}

// Exp maps V at P to L·exp(L⁻¹·V·L⁻ᵀ)·Lᵀ where P = L·Lᵀ.
//
// Implementation:
//   - Stage 1: CheckTangentVector(P, V).
//   - Stage 2: Cholesky P = L·Lᵀ; whiten W = L⁻¹·V·L⁻ᵀ.
//   - Stage 3: E = MatrixExp(W); return L·E·Lᵀ.
//
// Errors: LinearAlgebraError when the factorization or inversion fails.
//
// Complexity: O(n³) per series term.
func (s SPD) Exp(p []float64, v manifold.TangentVector) ([]float64, error) {
	if err := s.CheckTangentVector(p, v); err != nil {
		return nil, err
	}
	pm, err := s.dense(p)
	if err != nil {
		return nil, err
	}
	vm, err := s.dense(v.Components)
	if err != nil {
		return nil, err
	}

	l, w, err := whiten(pm, vm)
	if err != nil {
		return nil, err
	}
	e, err := MatrixExp(w)
	if err != nil {
		return nil, err
	}
	out, err := congruence(l, e)
	if err != nil {
		return nil, err
	}
	// the chained products drift off symmetric in proportion to the entries
	if out, err = matrix.Symmetrize(out); err != nil {
		return nil, manifold.LinearAlgebraErrorf("symmetrize", err)
	}

	return flatten(out), nil
}

// Log maps Q to L·log(L⁻¹·Q·L⁻ᵀ)·Lᵀ at P = L·Lᵀ.
//
// Notes:
//   - MatrixLog is a truncated Mercator series around I, accurate when the
//     whitened matrix has eigenvalues in (0, 2), i.e. Q is "close" to P.
func (s SPD) Log(p, q []float64) (manifold.TangentVector, error) {
	if err := s.CheckPoint(p); err != nil {
		return manifold.TangentVector{}, err
	}
	if err := s.CheckPoint(q); err != nil {
		return manifold.TangentVector{}, err
	}
	pm, err := s.dense(p)
	if err != nil {
		return manifold.TangentVector{}, err
	}
	qm, err := s.dense(q)
	if err != nil {
		return manifold.TangentVector{}, err
	}

	l, w, err := whiten(pm, qm)
	if err != nil {
		return manifold.TangentVector{}, err
	}
	lw, err := MatrixLog(w)
	if err != nil {
		return manifold.TangentVector{}, err
	}
	out, err := congruence(l, lw)
	if err != nil {
		return manifold.TangentVector{}, err
	}
	if out, err = matrix.Symmetrize(out); err != nil {
		return manifold.TangentVector{}, manifold.LinearAlgebraErrorf("symmetrize", err)
	}

	return manifold.TangentVector{Components: flatten(out)}, nil
}

// InnerProduct returns trace(P⁻¹·V₁·P⁻¹·V₂).
func (s SPD) InnerProduct(p []float64, v1, v2 manifold.TangentVector) (float64, error) {
	if err := s.CheckTangentVector(p, v1); err != nil {
		return 0, err
	}
	if err := s.CheckTangentVector(p, v2); err != nil {
		return 0, err
	}
	pm, err := s.dense(p)
	if err != nil {
		return 0, err
	}
	a, err := s.dense(v1.Components)
	if err != nil {
		return 0, err
	}
	b, err := s.dense(v2.Components)
	if err != nil {
		return 0, err
	}

	pinv, err := matrix.Inverse(pm)
	if err != nil {
		return 0, manifold.LinearAlgebraErrorf("matrix inversion failed", err)
	}
	prod, err := chainMul(pinv, a, pinv, b)
	if err != nil {
		return 0, err
	}
	tr, err := matrix.Trace(prod)
	if err != nil {
		return 0, manifold.LinearAlgebraErrorf("trace", err)
	}

	return tr, nil
}

// MatrixExp returns the truncated Taylor series I + Σ_{k=1}^{19} Wᵏ/k!,
// stopping early once every entry of the current term is below
// SeriesTolerance.
//
// Errors: LinearAlgebraError for a nil or non-square W.
func MatrixExp(w matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, manifold.LinearAlgebraErrorf("matrix exponential", err)
	}
	n := w.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("matrix exponential", err)
	}

	var (
		result matrix.Matrix = id
		term   matrix.Matrix = id
	)
	for k := 1; k < expSeriesTerms; k++ {
		if term, err = matrix.Mul(term, w); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix exponential", err)
		}
		if term, err = matrix.Scale(term, 1/float64(k)); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix exponential", err)
		}
		if result, err = matrix.Add(result, term); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix exponential", err)
		}
		if negligible(term) {
			break
		}
	}

	return result, nil
}

// MatrixLog returns the truncated Mercator series
// Σ_{k=1}^{49} (-1)^{k+1}·Aᵏ/k with A = W - I, stopping early once every
// entry of the next power of A is below SeriesTolerance.
//
// The series converges only for a spectrum of W inside (0, 2); outside that
// range the result is inaccurate and no error is reported.
//
// Errors: LinearAlgebraError for a nil or non-square W.
func MatrixLog(w matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
	}
	n := w.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
	}
	a, err := matrix.Sub(w, id)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
	}
	zero, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
	}

	var (
		result matrix.Matrix = zero
		term                 = a.Clone()
		scaled matrix.Matrix
		sign   float64
	)
	for k := 1; k < logSeriesTerms; k++ {
		sign = 1
		if k%2 == 0 {
			sign = -1
		}
		if scaled, err = matrix.Scale(term, sign/float64(k)); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
		}
		if result, err = matrix.Add(result, scaled); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
		}
		if term, err = matrix.Mul(term, a); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix logarithm", err)
		}
		if negligible(term) {
			break
		}
	}

	return result, nil
}

// whiten factors P = L·Lᵀ and returns L together with L⁻¹·X·L⁻ᵀ.
func whiten(p, x matrix.Matrix) (l, w matrix.Matrix, err error) {
	if l, err = matrix.Cholesky(p); err != nil {
		return nil, nil, manifold.LinearAlgebraErrorf("cholesky decomposition failed", err)
	}
	linv, err := matrix.Inverse(l)
	if err != nil {
		return nil, nil, manifold.LinearAlgebraErrorf("matrix inversion failed", err)
	}
	linvT, err := matrix.Transpose(linv)
	if err != nil {
		return nil, nil, manifold.LinearAlgebraErrorf("transpose", err)
	}
	if w, err = chainMul(linv, x, linvT); err != nil {
		return nil, nil, err
	}

	return l, w, nil
}

// congruence returns L·X·Lᵀ.
func congruence(l, x matrix.Matrix) (matrix.Matrix, error) {
	lt, err := matrix.Transpose(l)
	if err != nil {
		return nil, manifold.LinearAlgebraErrorf("transpose", err)
	}

	return chainMul(l, x, lt)
}

// chainMul multiplies left to right: ((m₀·m₁)·m₂)···.
func chainMul(ms ...matrix.Matrix) (matrix.Matrix, error) {
	var (
		acc = ms[0]
		err error
	)
	for _, m := range ms[1:] {
		if acc, err = matrix.Mul(acc, m); err != nil {
			return nil, manifold.LinearAlgebraErrorf("matrix multiplication", err)
		}
	}

	return acc, nil
}

// negligible reports whether every entry of m is below SeriesTolerance in
// absolute value. NaN entries are never negligible.
func negligible(m matrix.Matrix) bool {
	maxAbs, err := matrix.MaxAbs(m)

	return err == nil && maxAbs < SeriesTolerance
}

// flatten exports m as a row-major slice owned by the caller.
func flatten(m matrix.Matrix) []float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Data()
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j], _ = m.At(i, j)
		}
	}

	return out
}
