// SPDX-License-Identifier: MIT
// Package spline: cardinal B-spline coefficient matrices.
//
// Convention: in a (k+1)×(k+1) coefficient matrix M, entry (p, j) is the
// coefficient of u^p in basis function j, so B_j(u) = Σ_p M[p][j]·u^p.
// The cumulative form B̃_j(u) = Σ_{i≥j} B_i(u) is a right-to-left running
// column sum; B̃_0 ≡ 1 on [0, 1).
//
// The matrices depend only on the degree. They are built once by the de
// Boor blending recursion, cached under a lock, and treated as immutable
// from then on — concurrent readers share them freely, and the exported
// accessors hand out copies so the cache can never be aliased.

package spline

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// coeffCache holds the per-degree matrices. Guarded by coeffMu; entries
// are never mutated after insertion.
var (
	coeffMu    sync.Mutex
	coeffCache = map[int]*coeffPair{}
)

type coeffPair struct {
	card *mat.Dense // basis coefficients
	cum  *mat.Dense // cumulative basis coefficients
}

// CoeffMatrix returns a copy of the degree-k cardinal B-spline
// coefficient matrix. Returns ErrDegree if k < 0.
func CoeffMatrix(k int) (*mat.Dense, error) {
	c, err := coeffs(k)
	if err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(c.card), nil
}

// CumCoeffMatrix returns a copy of the degree-k cumulative coefficient
// matrix, the one the evaluator consumes. Returns ErrDegree if k < 0.
func CumCoeffMatrix(k int) (*mat.Dense, error) {
	c, err := coeffs(k)
	if err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(c.cum), nil
}

// coeffs returns the cached pair for degree k, building every missing
// degree up from 0 on first use.
func coeffs(k int) (*coeffPair, error) {
	if k < 0 {
		return nil, ErrDegree
	}

	coeffMu.Lock()
	defer coeffMu.Unlock()

	if c, ok := coeffCache[k]; ok {
		return c, nil
	}

	card := cardMatrix(k)
	coeffCache[k] = &coeffPair{card: card, cum: cumMatrix(card, k)}

	return coeffCache[k], nil
}

// cardMatrix builds the degree-k coefficient matrix by the de Boor
// recursion specialized to uniform (cardinal) knots:
//
//	M_0 = [1]
//	M_k = low(M_{k-1})·left_k + high(M_{k-1})·right_k
//
// where low/high pad the previous matrix to k+1 rows (top- and
// bottom-aligned) and left/right are the fixed k×(k+1) blending
// stencils of the recursion.
func cardMatrix(k int) *mat.Dense {
	if k == 0 {
		return mat.NewDense(1, 1, []float64{1})
	}

	prev := cardMatrix(k - 1)

	low := mat.NewDense(k+1, k, nil)
	high := mat.NewDense(k+1, k, nil)
	for i := 0; i != k; i++ {
		for j := 0; j != k; j++ {
			low.Set(i, j, prev.At(i, j))
			high.Set(i+1, j, prev.At(i, j))
		}
	}

	left := mat.NewDense(k, k+1, nil)
	right := mat.NewDense(k, k+1, nil)
	for r := 0; r != k; r++ {
		left.Set(r, r+1, float64(k-(r+1))/float64(k))
		left.Set(r, r, 1-left.At(r, r+1))
		right.Set(r, r+1, 1/float64(k))
		right.Set(r, r, -1/float64(k))
	}

	ret := mat.NewDense(k+1, k+1, nil)
	tmp := mat.NewDense(k+1, k+1, nil)
	ret.Mul(low, left)
	tmp.Mul(high, right)
	ret.Add(ret, tmp)

	return ret
}

// cumMatrix folds basis columns right-to-left into their running sums,
// turning B_j into B̃_j = Σ_{i≥j} B_i.
func cumMatrix(card *mat.Dense, k int) *mat.Dense {
	cum := mat.DenseCopyOf(card)
	for p := 0; p != k+1; p++ {
		for j := 0; j != k; j++ {
			cum.Set(p, k-1-j, cum.At(p, k-1-j)+cum.At(p, k-j))
		}
	}

	return cum
}

// basisWeight evaluates Σ_p pow[p]·m[p][j], i.e. basis j of m at the
// power vector pow.
func basisWeight(m *mat.Dense, j int, pow []float64) float64 {
	var ret float64
	for p, x := range pow {
		ret += x * m.At(p, j)
	}

	return ret
}
