// SPDX-License-Identifier: MIT

package tn

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
)

// Tn is an element of the translation group T(n). The zero value is not
// usable; construct via Zero, FromSlice, FromVec or Map.
//
// Tn satisfies lie.Group[*Tn] and lie.Liftable[*Dual].
type Tn struct {
	s lie.MappedStorage
}

// Zero returns the identity of T(n) with owning storage.
// n < 1 is a programmer error and panics.
func Zero(n int) *Tn {
	if n < 1 {
		panic("tn: dimension must be >= 1")
	}

	return &Tn{s: lie.NewArray(n)}
}

// FromSlice returns an element with owning storage initialized to a copy
// of vals. len(vals) < 1 is a programmer error and panics.
func FromSlice(vals []float64) *Tn {
	if len(vals) < 1 {
		panic("tn: dimension must be >= 1")
	}

	return &Tn{s: lie.ArrayOf(vals...)}
}

// FromVec returns an element with owning storage copied from v.
func FromVec(v *mat.VecDense) *Tn {
	return FromSlice(v.RawVector().Data)
}

// Map returns an element that aliases data (view storage): writes to the
// element are visible in data and vice versa, and data must outlive the
// element. len(data) < 1 is a programmer error and panics.
func Map(data []float64) *Tn {
	if len(data) < 1 {
		panic("tn: dimension must be >= 1")
	}

	return &Tn{s: lie.NewView(data)}
}

// Dof returns n.
func (g *Tn) Dof() int { return g.s.Len() }

// RepSize returns n.
func (g *Tn) RepSize() int { return g.s.Len() }

// Coeffs exposes the coordinate buffer.
func (g *Tn) Coeffs() lie.Storage { return g.s }

// Clone returns a deep copy with fresh owning storage.
func (g *Tn) Clone() *Tn {
	return &Tn{s: lie.ArrayOf(g.s.Data()...)}
}

// SetIdentity zeroes the coordinates.
func (g *Tn) SetIdentity() {
	d := g.s.Data()
	for i := range d {
		d[i] = 0
	}
}

// SetRandom fills the coordinates with standard normal draws from r.
func (g *Tn) SetRandom(r *rand.Rand) {
	d := g.s.Data()
	for i := range d {
		d[i] = r.NormFloat64()
	}
}

// Compose returns the vector sum g + o.
func (g *Tn) Compose(o *Tn) *Tn {
	ret := Zero(g.Dof())
	floats.AddTo(ret.s.Data(), g.s.Data(), o.s.Data())

	return ret
}

// Inverse returns the negation −g.
func (g *Tn) Inverse() *Tn {
	ret := g.Clone()
	floats.Scale(-1, ret.s.Data())

	return ret
}

// Log returns the coordinates as a tangent vector.
func (g *Tn) Log() *mat.VecDense {
	d := make([]float64, g.Dof())
	copy(d, g.s.Data())

	return mat.NewVecDense(g.Dof(), d)
}

// Exp returns the element with coordinates v. Prototype receiver.
func (g *Tn) Exp(v *mat.VecDense) *Tn {
	return FromVec(v)
}

// Ad returns the identity matrix: translations commute with tangents.
func (g *Tn) Ad() *mat.Dense {
	return eye(g.Dof())
}

// Bracket returns the zero matrix: T(n) is abelian. Prototype receiver.
func (g *Tn) Bracket(_ *mat.VecDense) *mat.Dense {
	n := g.Dof()

	return mat.NewDense(n, n, nil)
}

// DrExp returns the identity matrix. Prototype receiver.
func (g *Tn) DrExp(_ *mat.VecDense) *mat.Dense {
	return eye(g.Dof())
}

// DrExpinv returns the identity matrix. Prototype receiver.
func (g *Tn) DrExpinv(_ *mat.VecDense) *mat.Dense {
	return eye(g.Dof())
}

// eye returns the n×n identity.
func eye(n int) *mat.Dense {
	ret := mat.NewDense(n, n, nil)
	for i := 0; i != n; i++ {
		ret.Set(i, i, 1)
	}

	return ret
}
