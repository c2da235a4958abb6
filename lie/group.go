// SPDX-License-Identifier: MIT
// Package lie: the group capability contract.
// This file defines ONLY the Group constraint that every concrete group type
// must satisfy. The derived calculus built on top of it lives in calculus.go.

package lie

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SmallAngle2 is the squared-tangent-norm cutoff below which concrete
// groups switch their closed-form exp/log/Jacobian formulas to small-angle
// series. Staying on the closed form under this cutoff divides by a
// near-zero angle; the switch is silent policy, not an error.
const SmallAngle2 = 1e-8

// DefaultEpsilon is the comparison tolerance used by IsApprox when the
// caller passes eps <= 0.
const DefaultEpsilon = 1e-12

// Group is the capability contract of a Lie group element. A concrete
// type G (always a pointer type, since identity/random construction
// mutates the receiver) satisfies Group[G] by supplying the primitive
// operations below; the calculus in this package and the algorithms in
// spline/ and tdiff/ consume nothing else.
//
// Two of the methods deserve a note on receivers. Go has no static
// methods, so Exp, Bracket, DrExp and DrExpinv — which depend only on a
// tangent vector — are defined on an element receiver. They ignore the
// receiver's value and use it purely as a dimension prototype, so any
// element of the right group (e.g. the identity) works.
//
// Dimension conventions:
//   - Dof      — tangent-space (Lie algebra) dimension
//   - RepSize  — coordinate-buffer length (Coeffs().Len())
//
// Tangent vectors are Dof-length *mat.VecDense; Ad, Bracket, DrExp and
// DrExpinv return Dof×Dof *mat.Dense. Returned vectors and matrices are
// freshly allocated and never alias internal state.
type Group[G any] interface {
	// Dof returns the tangent-space dimension.
	Dof() int
	// RepSize returns the coordinate-buffer length.
	RepSize() int
	// Coeffs exposes the coordinate buffer.
	Coeffs() Storage
	// Clone returns a deep copy backed by fresh owning storage,
	// regardless of whether the receiver maps external memory.
	Clone() G
	// SetIdentity overwrites the receiver with the group identity.
	SetIdentity()
	// SetRandom overwrites the receiver with a random element drawn
	// from r. Determinism is the caller's: seed r and keep it private.
	SetRandom(r *rand.Rand)
	// Compose returns the group product receiver ∘ o.
	Compose(o G) G
	// Inverse returns the group inverse.
	Inverse() G
	// Log returns the tangent vector log(receiver).
	Log() *mat.VecDense
	// Exp returns exp(v) as a new element. Prototype receiver.
	Exp(v *mat.VecDense) G
	// Ad returns the adjoint matrix of the receiver: the linear map
	// satisfying g∘exp(a) = exp(Ad(g)·a)∘g.
	Ad() *mat.Dense
	// Bracket returns the algebra's ad map at v, i.e. the matrix of
	// a ↦ [v, a]. Prototype receiver.
	Bracket(v *mat.VecDense) *mat.Dense
	// DrExp returns the right Jacobian of exp at v:
	// exp(v+dv) ≈ exp(v) ∘ exp(DrExp(v)·dv). Prototype receiver.
	DrExp(v *mat.VecDense) *mat.Dense
	// DrExpinv returns the inverse right Jacobian, the matrix inverse
	// of DrExp(v). Prototype receiver.
	DrExpinv(v *mat.VecDense) *mat.Dense
}
