// SPDX-License-Identifier: MIT
// Package tn: forward-mode twin of Tn over dual-number coordinates.

package tn

import (
	"gonum.org/v1/gonum/num/dual"
)

// Dual is a T(n) element with dual-number coordinates, satisfying
// lie.DualGroup[*Dual]. Arithmetic on it carries one directional
// derivative alongside the value; see the tdiff package.
type Dual struct {
	d []dual.Number
}

// Lift embeds g's coordinates as real parts with zero dual parts.
func (g *Tn) Lift() *Dual {
	d := make([]dual.Number, g.Dof())
	for i, x := range g.s.Data() {
		d[i] = dual.Number{Real: x}
	}

	return &Dual{d: d}
}

// Dof returns n.
func (g *Dual) Dof() int { return len(g.d) }

// Real returns the value (real-part) coordinates.
func (g *Dual) Real() []float64 {
	ret := make([]float64, len(g.d))
	for i, x := range g.d {
		ret[i] = x.Real
	}

	return ret
}

// Compose returns the elementwise dual sum g + o.
func (g *Dual) Compose(o *Dual) *Dual {
	d := make([]dual.Number, len(g.d))
	for i := range d {
		d[i] = dual.Add(g.d[i], o.d[i])
	}

	return &Dual{d: d}
}

// Inverse returns the elementwise negation.
func (g *Dual) Inverse() *Dual {
	d := make([]dual.Number, len(g.d))
	for i := range d {
		d[i] = dual.Scale(-1, g.d[i])
	}

	return &Dual{d: d}
}

// Exp returns the element with coordinates v. Prototype receiver.
func (g *Dual) Exp(v []dual.Number) *Dual {
	d := make([]dual.Number, len(v))
	copy(d, v)

	return &Dual{d: d}
}

// Log returns the coordinates as a tangent vector.
func (g *Dual) Log() []dual.Number {
	d := make([]dual.Number, len(g.d))
	copy(d, g.d)

	return d
}
