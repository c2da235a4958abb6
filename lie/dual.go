// SPDX-License-Identifier: MIT
// Package lie: the dual-number contract for forward-mode differentiation.
// A group that wants to participate in tdiff.JacobianForward provides a
// "lifted" twin of its element type whose coordinates are dual numbers
// (gonum num/dual): ordinary arithmetic on them carries one directional
// derivative alongside the value.

package lie

import "gonum.org/v1/gonum/num/dual"

// DualGroup is the contract of a lifted element: the subset of group
// operations the tangent-space differentiation helper needs, evaluated
// over dual-number coordinates. Tangent vectors are plain []dual.Number
// of length Dof.
//
// Implementations mirror their float64 counterparts formula for formula;
// only the scalar type changes. In particular the same small-angle
// series switch applies, branched on the real part of the squared norm.
type DualGroup[D any] interface {
	// Dof returns the tangent-space dimension.
	Dof() int
	// Compose returns the group product receiver ∘ o.
	Compose(o D) D
	// Inverse returns the group inverse.
	Inverse() D
	// Exp returns exp(v) as a new lifted element. Prototype receiver.
	Exp(v []dual.Number) D
	// Log returns the tangent vector log(receiver).
	Log() []dual.Number
}

// Liftable marks a float64 element type whose group provides a lifted
// twin D. Lift embeds the element's coordinates as the real parts of a
// lifted element with zero dual parts; it is the scalar cast of this
// library, producing an independently owned element of the new scalar
// type.
type Liftable[D any] interface {
	// Lift returns the dual-number twin of the receiver.
	Lift() D
}
