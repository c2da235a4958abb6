// SPDX-License-Identifier: MIT

package so3

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/liegroups/lie"
)

// repSize is the coordinate-buffer length: x, y, z, w.
const repSize = 4

// dof is the tangent-space dimension of SO(3).
const dof = 3

// unitTol is the norm slack accepted by Map before rejecting a buffer.
const unitTol = 1e-9

// SO3 is a 3-D rotation stored as a unit quaternion [x y z w]. The zero
// value is not a valid rotation; construct via Identity, Random, FromQuat,
// FromSlice or Map.
//
// SO3 satisfies lie.Group[*SO3] and lie.Liftable[*Dual].
type SO3 struct {
	s lie.MappedStorage
}

// Identity returns the identity rotation with owning storage.
func Identity() *SO3 {
	return &SO3{s: lie.ArrayOf(0, 0, 0, 1)}
}

// Random returns a rotation drawn uniformly over SO(3) from r.
func Random(r *rand.Rand) *SO3 {
	g := Identity()
	g.SetRandom(r)

	return g
}

// FromQuat returns the rotation of q, normalized to unit length, with
// owning storage. Returns ErrZeroNorm if q is too small to normalize.
func FromQuat(q quat.Number) (*SO3, error) {
	n := quat.Abs(q)
	if n < unitTol {
		return nil, ErrZeroNorm
	}
	q = quat.Scale(1/n, q)

	return &SO3{s: lie.ArrayOf(q.Imag, q.Jmag, q.Kmag, q.Real)}, nil
}

// FromSlice returns the rotation with coordinates [x y z w] copied from
// vals and normalized. Returns ErrCoeffSize or ErrZeroNorm.
func FromSlice(vals []float64) (*SO3, error) {
	if len(vals) != repSize {
		return nil, ErrCoeffSize
	}

	return FromQuat(quat.Number{Real: vals[3], Imag: vals[0], Jmag: vals[1], Kmag: vals[2]})
}

// Map returns a rotation that aliases data (view storage): the element
// reads and writes data directly, and data must outlive the element.
// The buffer must already hold a unit quaternion [x y z w]; Map returns
// ErrCoeffSize or ErrNotUnit instead of touching caller memory.
func Map(data []float64) (*SO3, error) {
	if len(data) != repSize {
		return nil, ErrCoeffSize
	}
	n := math.Sqrt(data[0]*data[0] + data[1]*data[1] + data[2]*data[2] + data[3]*data[3])
	if math.Abs(n-1) > unitTol {
		return nil, ErrNotUnit
	}

	return &SO3{s: lie.NewView(data)}, nil
}

// Quat returns the receiver as a gonum quaternion.
func (g *SO3) Quat() quat.Number {
	d := g.s.Data()

	return quat.Number{Real: d[3], Imag: d[0], Jmag: d[1], Kmag: d[2]}
}

// setQuat overwrites the coordinate buffer from q.
func (g *SO3) setQuat(q quat.Number) {
	d := g.s.Data()
	d[0], d[1], d[2], d[3] = q.Imag, q.Jmag, q.Kmag, q.Real
}

// Dof returns 3.
func (g *SO3) Dof() int { return dof }

// RepSize returns 4.
func (g *SO3) RepSize() int { return repSize }

// Coeffs exposes the coordinate buffer.
func (g *SO3) Coeffs() lie.Storage { return g.s }

// Clone returns a deep copy with fresh owning storage.
func (g *SO3) Clone() *SO3 {
	return &SO3{s: lie.ArrayOf(g.s.Data()...)}
}

// SetIdentity overwrites the receiver with the identity rotation.
func (g *SO3) SetIdentity() {
	g.setQuat(quat.Number{Real: 1})
}

// SetRandom overwrites the receiver with a uniform random rotation:
// a standard Gaussian 4-vector, normalized, is uniform on the unit
// 3-sphere and therefore uniform over SO(3).
func (g *SO3) SetRandom(r *rand.Rand) {
	var q quat.Number
	var n float64
	for n < unitTol {
		q = quat.Number{Real: r.NormFloat64(), Imag: r.NormFloat64(), Jmag: r.NormFloat64(), Kmag: r.NormFloat64()}
		n = quat.Abs(q)
	}
	g.setQuat(quat.Scale(1/n, q))
}

// Compose returns the rotation product g ∘ o, renormalized to keep the
// unit-quaternion invariant through long chains.
func (g *SO3) Compose(o *SO3) *SO3 {
	q := quat.Mul(g.Quat(), o.Quat())
	q = quat.Scale(1/quat.Abs(q), q)

	return &SO3{s: lie.ArrayOf(q.Imag, q.Jmag, q.Kmag, q.Real)}
}

// Inverse returns the inverse rotation, the quaternion conjugate.
func (g *SO3) Inverse() *SO3 {
	q := quat.Conj(g.Quat())

	return &SO3{s: lie.ArrayOf(q.Imag, q.Jmag, q.Kmag, q.Real)}
}

// Log returns the rotation vector of the receiver: 2·atan2(‖im‖, w)
// scaled onto the imaginary axis, with a series fallback once the
// imaginary norm is below the small-angle cutoff.
func (g *SO3) Log() *mat.VecDense {
	d := g.s.Data()
	x, y, z, w := d[0], d[1], d[2], d[3]

	n2 := x*x + y*y + z*z
	var f float64
	if n2 < lie.SmallAngle2 {
		// atan2(n, w)/n ≈ (1 − n²/(3w²))/w near n = 0
		f = 2 / w * (1 - n2/(3*w*w))
	} else {
		n := math.Sqrt(n2)
		f = 2 * math.Atan2(n, w) / n
	}

	return mat.NewVecDense(dof, []float64{f * x, f * y, f * z})
}

// Exp returns the rotation with rotation vector v, via the half-angle
// quaternion formula with a series fallback near zero. Prototype
// receiver.
func (g *SO3) Exp(v *mat.VecDense) *SO3 {
	vx, vy, vz := v.AtVec(0), v.AtVec(1), v.AtVec(2)
	t2 := vx*vx + vy*vy + vz*vz

	var w, s float64
	if t2 < lie.SmallAngle2 {
		// cos(θ/2) ≈ 1 − θ²/8, sin(θ/2)/θ ≈ 1/2 − θ²/48
		w = 1 - t2/8
		s = 0.5 - t2/48
	} else {
		th := math.Sqrt(t2)
		w = math.Cos(th / 2)
		s = math.Sin(th/2) / th
	}

	return &SO3{s: lie.ArrayOf(s*vx, s*vy, s*vz, w)}
}

// Ad returns the adjoint of the receiver, which for SO(3) is its 3×3
// rotation matrix.
func (g *SO3) Ad() *mat.Dense {
	return g.RotationMatrix()
}

// RotationMatrix returns the receiver as a 3×3 rotation matrix.
func (g *SO3) RotationMatrix() *mat.Dense {
	d := g.s.Data()
	x, y, z, w := d[0], d[1], d[2], d[3]

	return mat.NewDense(dof, dof, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// Bracket returns the hat map [v]× of the rotation vector v, the matrix
// of a ↦ v × a. Prototype receiver.
func (g *SO3) Bracket(v *mat.VecDense) *mat.Dense {
	return hat(v)
}

// hat returns the skew-symmetric cross-product matrix of v.
func hat(v *mat.VecDense) *mat.Dense {
	x, y, z := v.AtVec(0), v.AtVec(1), v.AtVec(2)

	return mat.NewDense(dof, dof, []float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	})
}
