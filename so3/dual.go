// SPDX-License-Identifier: MIT
// Package so3: forward-mode twin of SO3 over dual quaternions.
// A rotation with dual-number coordinates is exactly a dual quaternion
// (gonum num/dualquat): the Real quaternion carries the value, the Dual
// quaternion carries the directional derivative, and dualquat.Mul is the
// product rule for quaternion composition.

package so3

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/liegroups/lie"
)

// Dual is an SO(3) element with dual-number coordinates, satisfying
// lie.DualGroup[*Dual].
type Dual struct {
	q dualquat.Number
}

// Lift embeds g as a dual quaternion with zero derivative part.
func (g *SO3) Lift() *Dual {
	return &Dual{q: dualquat.Number{Real: g.Quat()}}
}

// Real returns the value (real-part) rotation.
func (g *Dual) Real() quat.Number { return g.q.Real }

// Deriv returns the derivative (dual-part) quaternion.
func (g *Dual) Deriv() quat.Number { return g.q.Dual }

// Dof returns 3.
func (g *Dual) Dof() int { return dof }

// Compose returns the rotation product g ∘ o.
func (g *Dual) Compose(o *Dual) *Dual {
	return &Dual{q: dualquat.Mul(g.q, o.q)}
}

// Inverse returns the inverse rotation.
func (g *Dual) Inverse() *Dual {
	return &Dual{q: dualquat.Inv(g.q)}
}

// Exp returns the rotation with dual rotation vector v, mirroring
// (*SO3).Exp coefficient for coefficient with dual arithmetic.
// Prototype receiver.
func (g *Dual) Exp(v []dual.Number) *Dual {
	t2 := dual.Add(dual.Mul(v[0], v[0]), dual.Add(dual.Mul(v[1], v[1]), dual.Mul(v[2], v[2])))

	var w, s dual.Number
	if t2.Real < lie.SmallAngle2 {
		w = dual.Add(dual.Number{Real: 1}, dual.Scale(-1.0/8.0, t2))
		s = dual.Add(dual.Number{Real: 0.5}, dual.Scale(-1.0/48.0, t2))
	} else {
		th := dual.Sqrt(t2)
		w = dual.Cos(dual.Scale(0.5, th))
		s = dual.Mul(dual.Sin(dual.Scale(0.5, th)), dual.Inv(th))
	}

	x, y, z := dual.Mul(s, v[0]), dual.Mul(s, v[1]), dual.Mul(s, v[2])

	return &Dual{q: dualquat.Number{
		Real: quat.Number{Real: w.Real, Imag: x.Real, Jmag: y.Real, Kmag: z.Real},
		Dual: quat.Number{Real: w.Emag, Imag: x.Emag, Jmag: y.Emag, Kmag: z.Emag},
	}}
}

// Log returns the dual rotation vector of the receiver, mirroring
// (*SO3).Log with dual arithmetic.
func (g *Dual) Log() []dual.Number {
	x := dual.Number{Real: g.q.Real.Imag, Emag: g.q.Dual.Imag}
	y := dual.Number{Real: g.q.Real.Jmag, Emag: g.q.Dual.Jmag}
	z := dual.Number{Real: g.q.Real.Kmag, Emag: g.q.Dual.Kmag}
	w := dual.Number{Real: g.q.Real.Real, Emag: g.q.Dual.Real}

	n2 := dual.Add(dual.Mul(x, x), dual.Add(dual.Mul(y, y), dual.Mul(z, z)))

	var f dual.Number
	if n2.Real < lie.SmallAngle2 {
		corr := dual.Sub(dual.Number{Real: 1}, dual.Mul(dual.Scale(1.0/3.0, n2), dual.Inv(dual.Mul(w, w))))
		f = dual.Mul(dual.Scale(2, dual.Inv(w)), corr)
	} else {
		n := dual.Sqrt(n2)
		f = dual.Mul(dual.Scale(2, atan2Dual(n, w)), dual.Inv(n))
	}

	return []dual.Number{dual.Mul(f, x), dual.Mul(f, y), dual.Mul(f, z)}
}

// atan2Dual is atan2 lifted to dual numbers: the derivative of
// atan2(y, x) is (x·dy − y·dx)/(x² + y²).
func atan2Dual(y, x dual.Number) dual.Number {
	return dual.Number{
		Real: math.Atan2(y.Real, x.Real),
		Emag: (x.Real*y.Emag - y.Real*x.Emag) / (x.Real*x.Real + y.Real*y.Real),
	}
}
