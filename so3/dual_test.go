package so3_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"

	"github.com/katalvlaran/liegroups/lie"
	"github.com/katalvlaran/liegroups/so3"
)

// liftVec embeds a float64 tangent as dual numbers with zero dual parts.
func liftVec(v *mat.VecDense) []dual.Number {
	ret := make([]dual.Number, v.Len())
	for i := range ret {
		ret[i] = dual.Number{Real: v.AtVec(i)}
	}

	return ret
}

// TestDualRealPartsMatch checks that the lifted operations reproduce the
// float64 ones in their real parts: exp, log, compose, inverse.
func TestDualRealPartsMatch(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	proto := so3.Identity()

	for i := 0; i != 20; i++ {
		g, h := so3.Random(rnd), so3.Random(rnd)
		v := randTangent(rnd, 0.7)

		// compose
		wantQ := g.Compose(h).Quat()
		gotQ := g.Lift().Compose(h.Lift()).Real()
		assert.InDelta(t, wantQ.Real, gotQ.Real, 1e-12)
		assert.InDelta(t, wantQ.Imag, gotQ.Imag, 1e-12)
		assert.InDelta(t, wantQ.Jmag, gotQ.Jmag, 1e-12)
		assert.InDelta(t, wantQ.Kmag, gotQ.Kmag, 1e-12)

		// inverse ∘ self = identity
		e := g.Lift().Inverse().Compose(g.Lift()).Real()
		assert.InDelta(t, 1, e.Real, 1e-12)

		// log ∘ exp round trip through the lifted path
		r := proto.Lift().Exp(liftVec(v)).Log()
		for k := 0; k != 3; k++ {
			assert.InDelta(t, v.AtVec(k), r[k].Real, 1e-12)
			assert.InDelta(t, 0, r[k].Emag, 1e-12, "unperturbed input must carry no derivative")
		}
	}
}

// TestDualExpDerivative compares the dual parts of exp against central
// differences of the float64 exp, across both formula branches.
func TestDualExpDerivative(t *testing.T) {
	proto := so3.Identity()
	const h = 1e-7

	for _, v := range []*mat.VecDense{
		mat.NewVecDense(3, []float64{0.4, -0.2, 0.9}),
		mat.NewVecDense(3, []float64{1e-6, -2e-6, 1e-6}),
	} {
		for k := 0; k != 3; k++ {
			// Dual evaluation: perturb direction k.
			dv := liftVec(v)
			dv[k].Emag = 1
			got := proto.Lift().Exp(dv)

			// Central difference of the quaternion coordinates.
			vp, vm := mat.NewVecDense(3, nil), mat.NewVecDense(3, nil)
			vp.CopyVec(v)
			vm.CopyVec(v)
			vp.SetVec(k, v.AtVec(k)+h)
			vm.SetVec(k, v.AtVec(k)-h)
			qp, qm := proto.Exp(vp).Quat(), proto.Exp(vm).Quat()

			d := got.Deriv()
			assert.InDelta(t, (qp.Real-qm.Real)/(2*h), d.Real, 1e-6)
			assert.InDelta(t, (qp.Imag-qm.Imag)/(2*h), d.Imag, 1e-6)
			assert.InDelta(t, (qp.Jmag-qm.Jmag)/(2*h), d.Jmag, 1e-6)
			assert.InDelta(t, (qp.Kmag-qm.Kmag)/(2*h), d.Kmag, 1e-6)
		}
	}
}

// TestDualLogDerivative does the same for log: perturb a rotation on the
// right and compare the log's dual parts with dr_expinv-style finite
// differences of the float64 log.
func TestDualLogDerivative(t *testing.T) {
	proto := so3.Identity()
	g := proto.Exp(mat.NewVecDense(3, []float64{0.3, 0.1, -0.6}))
	const h = 1e-7

	for k := 0; k != 3; k++ {
		e := make([]dual.Number, 3)
		e[k] = dual.Number{Emag: 1}

		lifted := g.Lift()
		r := lifted.Compose(lifted.Exp(e)).Log()

		// Central difference of log(g ∘ exp(±h·e_k)).
		step := mat.NewVecDense(3, nil)
		step.SetVec(k, h)
		lp := lie.RPlus(g, step).Log()
		step.SetVec(k, -h)
		lm := lie.RPlus(g, step).Log()

		for row := 0; row != 3; row++ {
			assert.InDelta(t, (lp.AtVec(row)-lm.AtVec(row))/(2*h), r[row].Emag, 1e-6,
				"log derivative, direction %d row %d", k, row)
		}
	}
}
