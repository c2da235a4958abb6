package spline_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/lie"
	"github.com/katalvlaran/liegroups/so3"
	"github.com/katalvlaran/liegroups/spline"
	"github.com/katalvlaran/liegroups/tdiff"
	"github.com/katalvlaran/liegroups/tn"
)

// allOpts requests every output.
func allOpts() spline.Options {
	return spline.Options{Velocity: true, Acceleration: true, Jacobian: true}
}

// randomRotations draws n rotations spread moderately apart.
func randomRotations(rnd *rand.Rand, n int) []*so3.SO3 {
	ctrl := make([]*so3.SO3, n)
	g := so3.Identity()
	for i := range ctrl {
		step := mat.NewVecDense(3, []float64{
			0.4 * rnd.NormFloat64(),
			0.4 * rnd.NormFloat64(),
			0.4 * rnd.NormFloat64(),
		})
		g = lie.RPlus(g, step)
		ctrl[i] = g
	}

	return ctrl
}

// TestEvalSizeErrors: wrong-sized inputs fail with the sentinel wrapped
// in an expected-vs-actual message; the degree itself is validated first.
func TestEvalSizeErrors(t *testing.T) {
	g0 := tn.Zero(2)
	one := []*mat.VecDense{mat.NewVecDense(2, nil)}

	_, err := spline.EvalDiffs(2, g0, one, 0.5, spline.DefaultOptions())
	assert.ErrorIs(t, err, spline.ErrDiffCount, "K-1 differences must be rejected")
	assert.ErrorContains(t, err, "needs 2")
	assert.ErrorContains(t, err, "got 1")

	three := []*mat.VecDense{mat.NewVecDense(2, nil), mat.NewVecDense(2, nil), mat.NewVecDense(2, nil)}
	_, err = spline.EvalDiffs(2, g0, three, 0.5, spline.DefaultOptions())
	assert.ErrorIs(t, err, spline.ErrDiffCount, "K+1 differences must be rejected")
	assert.ErrorContains(t, err, "got 3")

	_, err = spline.Eval(1, []*tn.Tn{g0}, 0.5, spline.DefaultOptions())
	assert.ErrorIs(t, err, spline.ErrCtrlCount)
	assert.ErrorContains(t, err, "needs 2")

	_, err = spline.EvalDiffs(-1, g0, nil, 0, spline.DefaultOptions())
	assert.ErrorIs(t, err, spline.ErrDegree)
}

// TestEvalDegree0: the curve is the base element; derivatives vanish and
// the single Jacobian block is the identity.
func TestEvalDegree0(t *testing.T) {
	g0 := tn.FromSlice([]float64{3, -1})
	res, err := spline.EvalDiffs(0, g0, nil, 0.7, allOpts())
	require.NoError(t, err)

	assert.True(t, lie.IsApprox(res.Value, g0, 1e-15))
	assert.Equal(t, 0.0, mat.Norm(res.Velocity, 1))
	assert.Equal(t, 0.0, mat.Norm(res.Acceleration, 1))

	r, c := res.Jacobian.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.True(t, mat.EqualApprox(res.Jacobian, mat.NewDense(2, 2, []float64{1, 0, 0, 1}), 1e-15))
}

// TestEvalQuadraticTn checks value, velocity and acceleration against
// the degree-2 closed forms on T(2), where the exponential product
// collapses to B̃-weighted sums:
//
//	value = p0 + B̃_1·v1 + B̃_2·v2,  B̃_1 = ½ + u − u²/2,  B̃_2 = u²/2
//	vel   = (1−u)·v1 + u·v2
//	acc   = v2 − v1
func TestEvalQuadraticTn(t *testing.T) {
	p0 := tn.FromSlice([]float64{0, 0})
	p1 := tn.FromSlice([]float64{2, -1})
	p2 := tn.FromSlice([]float64{3, 4})
	ctrl := []*tn.Tn{p0, p1, p2}
	v1 := []float64{2, -1}
	v2 := []float64{1, 5}

	for _, u := range []float64{0, 0.25, 0.5, 0.99} {
		res, err := spline.Eval(2, ctrl, u, allOpts())
		require.NoError(t, err)

		bt1 := 0.5 + u - u*u/2
		bt2 := u * u / 2
		for i := 0; i != 2; i++ {
			assert.InDelta(t, bt1*v1[i]+bt2*v2[i], res.Value.Coeffs().At(i), 1e-12, "value at u=%v", u)
			assert.InDelta(t, (1-u)*v1[i]+u*v2[i], res.Velocity.AtVec(i), 1e-12, "velocity at u=%v", u)
			assert.InDelta(t, v2[i]-v1[i], res.Acceleration.AtVec(i), 1e-12, "acceleration at u=%v", u)
		}
	}
}

// TestEvalDerivativesFD_SO3 validates the adjoint-transport recurrences
// on a noncommutative group: the returned velocity must match the
// central difference of the value (in the body frame), and the
// acceleration the central difference of the velocity.
func TestEvalDerivativesFD_SO3(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	ctrl := randomRotations(rnd, 4)
	const h = 1e-6

	for _, u := range []float64{0.15, 0.5, 0.85} {
		res, err := spline.Eval(3, ctrl, u, allOpts())
		require.NoError(t, err)

		plus, err := spline.Eval(3, ctrl, u+h, allOpts())
		require.NoError(t, err)
		minus, err := spline.Eval(3, ctrl, u-h, allOpts())
		require.NoError(t, err)

		d := lie.RMinus(plus.Value, minus.Value)
		for i := 0; i != 3; i++ {
			assert.InDelta(t, res.Velocity.AtVec(i), d.AtVec(i)/(2*h), 1e-5,
				"velocity vs FD at u=%v", u)
			assert.InDelta(t, res.Acceleration.AtVec(i),
				(plus.Velocity.AtVec(i)-minus.Velocity.AtVec(i))/(2*h), 1e-4,
				"acceleration vs FD at u=%v", u)
		}
	}
}

// TestEvalJacobian_SO3 cross-checks the reverse-sweep control-point
// Jacobian against the tdiff central-difference backend applied to the
// evaluator as a black box.
func TestEvalJacobian_SO3(t *testing.T) {
	rnd := rand.New(rand.NewSource(22))
	ctrl := randomRotations(rnd, 4)
	const u = 0.4

	res, err := spline.Eval(3, ctrl, u, spline.Options{Jacobian: true})
	require.NoError(t, err)

	f := func(cs []*so3.SO3) *so3.SO3 {
		r, ferr := spline.Eval(3, cs, u, spline.DefaultOptions())
		require.NoError(t, ferr)

		return r.Value
	}
	_, want, err := tdiff.Jacobian(f, ctrl, tdiff.DefaultOptions())
	require.NoError(t, err)

	r, c := res.Jacobian.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 12, c)
	for i := 0; i != r; i++ {
		for j := 0; j != c; j++ {
			assert.InDelta(t, want.At(i, j), res.Jacobian.At(i, j), 1e-5, "entry (%d,%d)", i, j)
		}
	}
}

// TestEvalJacobianChainRule: perturbing every control point by the same
// right-translation must, by the chain rule, see a Jacobian equal to the
// sum of the per-point blocks.
func TestEvalJacobianChainRule(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	ctrl := randomRotations(rnd, 3)
	const u = 0.6

	res, err := spline.Eval(2, ctrl, u, spline.Options{Jacobian: true})
	require.NoError(t, err)

	sum := mat.NewDense(3, 3, nil)
	for j := 0; j != 3; j++ {
		sum.Add(sum, res.Jacobian.Slice(0, 3, j*3, (j+1)*3))
	}

	f := func(ds []*so3.SO3) *so3.SO3 {
		shifted := make([]*so3.SO3, len(ctrl))
		for i, g := range ctrl {
			shifted[i] = g.Compose(ds[0])
		}
		r, ferr := spline.Eval(2, shifted, u, spline.DefaultOptions())
		require.NoError(t, ferr)

		return r.Value
	}
	_, want, err := tdiff.Jacobian(f, []*so3.SO3{so3.Identity()}, tdiff.DefaultOptions())
	require.NoError(t, err)

	for i := 0; i != 3; i++ {
		for j := 0; j != 3; j++ {
			assert.InDelta(t, want.At(i, j), sum.At(i, j), 1e-5, "entry (%d,%d)", i, j)
		}
	}
}

// TestEvalIdentityControls: identical control points make a constant
// curve — all tangent differences vanish, so value is the control point
// and every derivative is zero, at any u and degree.
func TestEvalIdentityControls(t *testing.T) {
	g := so3.Identity()
	for _, k := range []int{1, 2, 3} {
		ctrl := make([]*so3.SO3, k+1)
		for i := range ctrl {
			ctrl[i] = so3.Identity()
		}

		res, err := spline.Eval(k, ctrl, 0.5, allOpts())
		require.NoError(t, err)
		assert.True(t, lie.IsApprox(res.Value, g, 1e-12), "degree %d", k)
		assert.InDelta(t, 0, mat.Norm(res.Velocity, 1), 1e-15)
		assert.InDelta(t, 0, mat.Norm(res.Acceleration, 1), 1e-15)
	}
}
