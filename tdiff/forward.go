// SPDX-License-Identifier: MIT

package tdiff

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"

	"github.com/katalvlaran/liegroups/lie"
)

// JacobianForward computes f at args and the tangent-space Jacobian by
// forward-mode automatic differentiation: the arguments are lifted to
// their dual-number twins, one tangent direction at a time receives a
// unit dual perturbation, and the residual log's dual parts form the
// corresponding Jacobian column. Exact to machine precision; ΣDof(args)
// evaluations of f.
//
// f is supplied in lifted form, written against the lie.DualGroup
// surface; the returned value is the lifted f(args) with zero dual
// parts. Returns ErrNoArgs for an empty argument list.
func JacobianForward[G interface {
	lie.Group[G]
	lie.Liftable[D]
}, D lie.DualGroup[D]](f func([]D) D, args []G) (D, *mat.Dense, error) {
	if len(args) == 0 {
		var zero D
		return zero, nil, ErrNoArgs
	}

	base := make([]D, len(args))
	nx := 0
	for i, g := range args {
		base[i] = g.Lift()
		nx += g.Dof()
	}

	val := f(base)
	valInv := val.Inverse()
	ny := val.Dof()

	jac := mat.NewDense(ny, nx, nil)
	col := 0
	for i := range args {
		d := args[i].Dof()
		for k := 0; k != d; k++ {
			// Unit dual in direction k of argument i, zero elsewhere.
			e := make([]dual.Number, d)
			e[k] = dual.Number{Emag: 1}

			cur := make([]D, len(base))
			copy(cur, base)
			cur[i] = base[i].Compose(base[i].Exp(e))

			r := valInv.Compose(f(cur)).Log()
			for row := 0; row != ny; row++ {
				jac.Set(row, col, r[row].Emag)
			}
			col++
		}
	}

	return val, jac, nil
}
