// SPDX-License-Identifier: MIT

package tdiff

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
)

// Options configures the central-difference backend.
//
// Step is the finite-difference step in tangent coordinates; 0 means the
// formula's default. Larger steps lose truncation accuracy (error is
// O(step²)), smaller steps lose cancellation accuracy; the default is a
// reasonable middle for well-scaled problems.
type Options struct {
	Step float64
}

// DefaultOptions returns the default-step configuration.
func DefaultOptions() Options { return Options{} }

// Jacobian computes f(args) and the Jacobian of the tangent-space
// residual r(x) = f(args ⊕ x) ⊖ f(args) at x = 0, by central differences
// (gonum diff/fd). The result is Dof(f)×ΣDof(args); columns follow the
// arguments in order.
//
// f must be pure: it is re-evaluated at perturbed arguments and must not
// mutate them. Returns ErrNoArgs for an empty argument list.
func Jacobian[G lie.Group[G]](f func([]G) G, args []G, opts Options) (G, *mat.Dense, error) {
	if len(args) == 0 {
		var zero G
		return zero, nil, ErrNoArgs
	}

	val := f(args)
	ny := val.Dof()

	nx := 0
	for _, g := range args {
		nx += g.Dof()
	}

	resid := func(y, x []float64) {
		pert := make([]G, len(args))
		off := 0
		for i, g := range args {
			d := g.Dof()
			pert[i] = lie.RPlus(g, mat.NewVecDense(d, x[off:off+d]))
			off += d
		}

		r := lie.RMinus(f(pert), val)
		for i := 0; i != ny; i++ {
			y[i] = r.AtVec(i)
		}
	}

	jac := mat.NewDense(ny, nx, nil)
	fd.Jacobian(jac, resid, make([]float64, nx), &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    opts.Step,
	})

	return val, jac, nil
}
