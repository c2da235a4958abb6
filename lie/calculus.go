// SPDX-License-Identifier: MIT
// Package lie: manifold calculus derived from the Group contract.
// Everything here is a free generic function — no state, no allocation
// beyond the returned values — so any concrete group gets the full surface
// by satisfying Group[G] alone.

package lie

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the identity element of proto's group, backed by fresh
// owning storage. The prototype carries only dimensions; its value is
// ignored.
func Identity[G Group[G]](proto G) G {
	ret := proto.Clone()
	ret.SetIdentity()

	return ret
}

// Random returns a random element of proto's group drawn from r, backed
// by fresh owning storage.
func Random[G Group[G]](proto G, r *rand.Rand) G {
	ret := proto.Clone()
	ret.SetRandom(r)

	return ret
}

// IsApprox compares two elements by relative coordinate distance:
// it reports whether ‖a−b‖ ≤ eps·min(‖a‖, ‖b‖) over the coordinate
// buffers. The tolerance scales with the operands, so elements of any
// magnitude compare consistently; it is NOT an absolute distance.
// If eps <= 0, DefaultEpsilon is used.
func IsApprox[G Group[G]](a, b G, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	ca, cb := a.Coeffs(), b.Coeffs()
	var na2, nb2, nd2 float64
	for i := 0; i != ca.Len(); i++ {
		na2 += ca.At(i) * ca.At(i)
		nb2 += cb.At(i) * cb.At(i)
		nd2 += (ca.At(i) - cb.At(i)) * (ca.At(i) - cb.At(i))
	}

	return math.Sqrt(nd2) <= eps*math.Min(math.Sqrt(na2), math.Sqrt(nb2))
}

// RPlus is the right-plus operator: g ⊕ a = g ∘ exp(a).
func RPlus[G Group[G]](g G, a *mat.VecDense) G {
	return g.Compose(g.Exp(a))
}

// RMinus is the right-minus operator: g1 ⊖ g2 = log(g2⁻¹ ∘ g1).
// It inverts RPlus: (g ⊕ a) ⊖ g = a.
func RMinus[G Group[G]](g1, g2 G) *mat.VecDense {
	return g2.Inverse().Compose(g1).Log()
}

// DlExp returns the left Jacobian of exp at v, derived from the right
// primitives via dl_exp(v) = Ad(exp(v)) · dr_exp(v). Concrete groups
// never implement it directly.
func DlExp[G Group[G]](proto G, v *mat.VecDense) *mat.Dense {
	n := proto.Dof()
	ret := mat.NewDense(n, n, nil)
	ret.Mul(proto.Exp(v).Ad(), proto.DrExp(v))

	return ret
}

// DlExpinv returns the inverse left Jacobian of exp at v, derived via
// dl_expinv(v) = −ad(v) + dr_expinv(v).
func DlExpinv[G Group[G]](proto G, v *mat.VecDense) *mat.Dense {
	n := proto.Dof()
	ret := mat.NewDense(n, n, nil)
	ret.Sub(proto.DrExpinv(v), proto.Bracket(v))

	return ret
}
