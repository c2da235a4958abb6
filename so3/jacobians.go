// SPDX-License-Identifier: MIT
// Package so3: right Jacobians of the exponential.
// Closed forms in terms of the hat matrix H = [v]× and the angle θ = ‖v‖:
//
//	dr_exp(v)    = I − c₁·H + c₂·H²,  c₁ = (1−cos θ)/θ²,  c₂ = (θ−sin θ)/θ³
//	dr_expinv(v) = I + H/2 + c₃·H²,   c₃ = 1/θ² − (1+cos θ)/(2θ·sin θ)
//
// Below the small-angle cutoff the coefficients continue analytically:
//
//	c₁ ≈ 1/2 − θ²/24,  c₂ ≈ 1/6 − θ²/120,  c₃ ≈ 1/12 + θ²/720

package so3

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
)

// DrExp returns the right Jacobian of exp at v. Prototype receiver.
func (g *SO3) DrExp(v *mat.VecDense) *mat.Dense {
	t2 := mat.Dot(v, v)

	var c1, c2 float64
	if t2 < lie.SmallAngle2 {
		c1 = 0.5 - t2/24
		c2 = 1.0/6.0 - t2/120
	} else {
		th := math.Sqrt(t2)
		c1 = (1 - math.Cos(th)) / t2
		c2 = (th - math.Sin(th)) / (t2 * th)
	}

	return hatPoly(v, 1, -c1, c2)
}

// DrExpinv returns the inverse right Jacobian of exp at v, the matrix
// inverse of DrExp(v). Prototype receiver.
func (g *SO3) DrExpinv(v *mat.VecDense) *mat.Dense {
	t2 := mat.Dot(v, v)

	var c3 float64
	if t2 < lie.SmallAngle2 {
		c3 = 1.0/12.0 + t2/720
	} else {
		th := math.Sqrt(t2)
		c3 = 1/t2 - (1+math.Cos(th))/(2*th*math.Sin(th))
	}

	return hatPoly(v, 1, 0.5, c3)
}

// hatPoly returns a·I + b·[v]× + c·[v]×².
func hatPoly(v *mat.VecDense, a, b, c float64) *mat.Dense {
	h := hat(v)
	h2 := mat.NewDense(dof, dof, nil)
	h2.Mul(h, h)

	ret := mat.NewDense(dof, dof, nil)
	for i := 0; i != dof; i++ {
		for j := 0; j != dof; j++ {
			x := b*h.At(i, j) + c*h2.At(i, j)
			if i == j {
				x += a
			}
			ret.Set(i, j, x)
		}
	}

	return ret
}
