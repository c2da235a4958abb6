// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
)

// Options selects which derivatives an evaluation computes beyond the
// curve value. Acceleration implies Velocity, since the acceleration
// recurrence consumes the running velocity.
//
// Example:
//
//	opts := spline.DefaultOptions()
//	opts.Velocity = true
//	res, err := spline.Eval(3, ctrl, u, opts)
type Options struct {
	Velocity     bool
	Acceleration bool
	Jacobian     bool
}

// DefaultOptions returns the value-only configuration.
func DefaultOptions() Options { return Options{} }

// Result carries an evaluation's outputs. Fields for derivatives that
// were not requested are nil.
//
// Jacobian is Dof×(Dof·(K+1)): block j (columns j·Dof … (j+1)·Dof−1) is
// the derivative of the curve value with respect to a right-perturbation
// of control point j. Each control point influences exactly two adjacent
// cumulative weights, so each block has at most two terms.
type Result[G lie.Group[G]] struct {
	Value        G
	Velocity     *mat.VecDense
	Acceleration *mat.VecDense
	Jacobian     *mat.Dense
}

// EvalDiffs — cardinal B-spline evaluation from tangent differences.
//
// Description:
//
//	Evaluates g(u) = g0 ∘ ∏_{i=1..K} exp(B̃_i(u)·v_i) for degree k = K,
//	base element g0 and tangent differences v_1…v_K, at local parameter
//	u ∈ [0, 1). u is NOT range-checked; callers clamp (the BSpline
//	container does).
//
// Algorithm outline:
//  1. Build power vectors [1, u, …, u^K] and, if derivatives were
//     requested, their first and second u-derivatives.
//  2. Per segment i: weight B̃_i = uvec·basis_i, value g ∘= exp(B̃_i·v_i).
//  3. Velocity/acceleration are transported into the current frame with
//     Ad(exp(−B̃_i·v_i)) before adding the segment terms dB̃_i·v_i and
//     dB̃_i·[vel, v_i] + d²B̃_i·v_i. This right-to-left adjoint transport
//     differentiates the exponential product without ever forming the
//     full product's derivative.
//  4. Control-point Jacobians in one reverse sweep j = K…0, combining a
//     running transport element z2inv with dr_exp/dr_expinv (own weight)
//     and dr_exp/dl_expinv (next weight); B̃_0 ≡ 1 collapses block 0's
//     own term to Ad(z2inv).
//
// Complexity: O(K) group operations, O(K²) scalar work.
//
// Errors:
//   - ErrDegree    — k < 0.
//   - ErrDiffCount — len(diffs) != k (wrapped with expected vs actual).
func EvalDiffs[G lie.Group[G]](k int, g0 G, diffs []*mat.VecDense, u float64, opts Options) (*Result[G], error) {
	if k < 0 {
		return nil, ErrDegree
	}
	if len(diffs) != k {
		return nil, fmt.Errorf("degree %d needs %d tangent differences, got %d: %w",
			k, k, len(diffs), ErrDiffCount)
	}
	c, err := coeffs(k)
	if err != nil {
		return nil, err
	}

	needVel := opts.Velocity || opts.Acceleration
	n := g0.Dof()

	// Power vectors for B̃, dB̃/du and d²B̃/du².
	uvec := make([]float64, k+1)
	duvec := make([]float64, k+1)
	d2uvec := make([]float64, k+1)
	uvec[0] = 1
	for p := 1; p != k+1; p++ {
		uvec[p] = u * uvec[p-1]
		duvec[p] = float64(p) * uvec[p-1]
		d2uvec[p] = float64(p) * duvec[p-1]
	}

	res := &Result[G]{Value: g0.Clone()}
	var vel, acc *mat.VecDense
	if needVel {
		vel = mat.NewVecDense(n, nil)
	}
	if opts.Acceleration {
		acc = mat.NewVecDense(n, nil)
	}

	for j := 1; j != k+1; j++ {
		v := diffs[j-1]
		bt := basisWeight(c.cum, j, uvec)

		sv := mat.NewVecDense(n, nil)
		sv.ScaleVec(bt, v)
		res.Value = res.Value.Compose(g0.Exp(sv))

		if !needVel {
			continue
		}

		// Transport the running derivatives into the new frame.
		sv.ScaleVec(-1, sv)
		ad := g0.Exp(sv).Ad()
		dbt := basisWeight(c.cum, j, duvec)

		next := mat.NewVecDense(n, nil)
		next.MulVec(ad, vel)
		next.AddScaledVec(next, dbt, v)

		if opts.Acceleration {
			bracket := mat.NewVecDense(n, nil)
			bracket.MulVec(g0.Bracket(next), v)

			anext := mat.NewVecDense(n, nil)
			anext.MulVec(ad, acc)
			anext.AddScaledVec(anext, dbt, bracket)
			anext.AddScaledVec(anext, basisWeight(c.cum, j, d2uvec), v)
			acc = anext
		}
		vel = next
	}

	if opts.Velocity || opts.Acceleration {
		res.Velocity = vel
	}
	res.Acceleration = acc

	if opts.Jacobian {
		res.Jacobian = evalJacobian(k, g0, diffs, uvec, c.cum)
	}

	return res, nil
}

// evalJacobian runs the reverse sweep of step 4 above. z2inv accumulates
// exp(−B̃_K·v_K)∘…∘exp(−B̃_{j+1}·v_{j+1}); the own-weight term of block j
// reads it after the update, the next-weight term before.
func evalJacobian[G lie.Group[G]](k int, g0 G, diffs []*mat.VecDense, uvec []float64, cum *mat.Dense) *mat.Dense {
	n := g0.Dof()
	jac := mat.NewDense(n, n*(k+1), nil)
	z2inv := lie.Identity(g0)

	blk := mat.NewDense(n, n, nil)
	tmp := mat.NewDense(n, n, nil)
	for j := k; j >= 0; j-- {
		blk.Zero()

		if j != k {
			btp := basisWeight(cum, j+1, uvec)
			vjp := diffs[j]
			sjp := mat.NewVecDense(n, nil)
			sjp.ScaleVec(btp, vjp)

			tmp.Mul(z2inv.Ad(), g0.DrExp(sjp))
			blk.Mul(tmp, lie.DlExpinv(g0, vjp))
			blk.Scale(-btp, blk)

			sjp.ScaleVec(-1, sjp)
			z2inv = z2inv.Compose(g0.Exp(sjp))
		}

		if j == 0 {
			// B̃_0 ≡ 1 and dr_exp(v)·dr_expinv(v) = I, whatever v.
			blk.Add(blk, z2inv.Ad())
		} else {
			btj := basisWeight(cum, j, uvec)
			vj := diffs[j-1]
			sj := mat.NewVecDense(n, nil)
			sj.ScaleVec(btj, vj)

			own := mat.NewDense(n, n, nil)
			tmp.Mul(z2inv.Ad(), g0.DrExp(sj))
			own.Mul(tmp, g0.DrExpinv(vj))
			own.Scale(btj, own)
			blk.Add(blk, own)
		}

		view := jac.Slice(0, n, j*n, (j+1)*n).(*mat.Dense)
		view.Copy(blk)
	}

	return jac
}

// Eval — cardinal B-spline evaluation from control points.
//
// Derives the K tangent differences v_i = log(g_{i-1}⁻¹ ∘ g_i) from the
// K+1 control points, then delegates to EvalDiffs. See EvalDiffs for the
// algorithm, options and u semantics.
//
// Errors:
//   - ErrDegree    — k < 0.
//   - ErrCtrlCount — len(ctrl) != k+1 (wrapped with expected vs actual).
func Eval[G lie.Group[G]](k int, ctrl []G, u float64, opts Options) (*Result[G], error) {
	if k < 0 {
		return nil, ErrDegree
	}
	if len(ctrl) != k+1 {
		return nil, fmt.Errorf("degree %d needs %d control points, got %d: %w",
			k, k+1, len(ctrl), ErrCtrlCount)
	}

	diffs := make([]*mat.VecDense, k)
	for i := 0; i != k; i++ {
		diffs[i] = lie.RMinus(ctrl[i+1], ctrl[i])
	}

	return EvalDiffs(k, ctrl[0], diffs, u, opts)
}
