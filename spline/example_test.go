package spline_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/liegroups/so3"
	"github.com/katalvlaran/liegroups/spline"
	"github.com/katalvlaran/liegroups/tn"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEval
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate a degree-1 curve through two points of T(1) at u = 0.25.
//	On a vector space the exponential product collapses to ordinary
//	linear interpolation, so value and velocity are easy to read off.
//
// Options:
//   - Velocity = true (first derivative in the unit parameter)
//
// Complexity: O(K) group operations.
func ExampleEval() {
	ctrl := []*tn.Tn{
		tn.FromSlice([]float64{0}),
		tn.FromSlice([]float64{4}),
	}

	opts := spline.DefaultOptions()
	opts.Velocity = true

	res, err := spline.Eval(1, ctrl, 0.25, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.2f\nvelocity=%.2f\n", res.Value.Coeffs().At(0), res.Velocity.AtVec(0))
	// Output:
	// value=1.00
	// velocity=4.00
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEval_rotation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Interpolate halfway between two rotations about the x-axis. Degree 1
//	on a Lie group is geodesic interpolation: the midpoint carries half
//	the rotation vector, and the body-frame velocity is the constant
//	difference.
func ExampleEval_rotation() {
	ctrl := []*so3.SO3{
		so3.Identity(),
		so3.Identity().Exp(mat.NewVecDense(3, []float64{0.6, 0, 0})),
	}

	opts := spline.DefaultOptions()
	opts.Velocity = true

	res, err := spline.Eval(1, ctrl, 0.5, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v := res.Value.Log()
	fmt.Printf("twist=[%.4f %.4f %.4f]\n", v.AtVec(0), v.AtVec(1), v.AtVec(2))
	fmt.Printf("velocity=[%.4f %.4f %.4f]\n",
		res.Velocity.AtVec(0), res.Velocity.AtVec(1), res.Velocity.AtVec(2))
	// Output:
	// twist=[0.3000 0.0000 0.0000]
	// velocity=[0.6000 0.0000 0.0000]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBSpline_Eval
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A time-parameterized degree-1 spline over three points of T(1),
//	starting at t0 = 0 with knot spacing dt = 1. The support ends at
//	TMax = t0 + (N−K)·dt; t = 1.5 falls in the second segment.
func ExampleBSpline_Eval() {
	ctrl := []*tn.Tn{
		tn.FromSlice([]float64{0}),
		tn.FromSlice([]float64{1}),
		tn.FromSlice([]float64{3}),
	}

	b, err := spline.New(1, 0, 1, ctrl)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := spline.DefaultOptions()
	opts.Velocity = true

	res, err := b.Eval(1.5, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("support=[%.0f, %.0f)\n", b.TMin(), b.TMax())
	fmt.Printf("value=%.2f\nvelocity=%.2f\n", res.Value.Coeffs().At(0), res.Velocity.AtVec(0))
	// Output:
	// support=[0, 2)
	// value=2.00
	// velocity=2.00
}
