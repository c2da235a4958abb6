// Package spline evaluates cardinal B-splines on arbitrary Lie groups,
// together with their first two time-derivatives and their Jacobians with
// respect to the control points.
//
// 🚀 What is a Lie-group B-spline?
//
//	The product-of-exponentials curve
//
//	    g(u) = g_0 ∘ ∏_{i=1..K} exp( B̃_i(u) · v_i ),   u ∈ [0, 1)
//
//	where v_i = log(g_{i-1}⁻¹ ∘ g_i) are tangent differences between
//	consecutive control points and B̃_i are cumulative cardinal B-spline
//	basis functions of degree K. On T(n) this reduces to the ordinary
//	B-spline; on SO(3) it yields smooth rotation trajectories. Widely
//	used for continuous-time trajectory estimation and camera/IMU
//	calibration.
//
// ✨ Key features:
//   - any group — the evaluator sees only the lie.Group contract
//   - velocity & acceleration via adjoint transport (no product expansion)
//   - control-point Jacobians in a single reverse sweep
//   - coefficient matrices computed once per degree and cached, immutable
//     and safe for concurrent readers
//   - BSpline container mapping wall-clock time to spline windows, with
//     constant extrapolation outside the support
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/liegroups/spline"
//
//	b, err := spline.New(3, t0, dt, ctrlPts)       // cubic
//	opts := spline.DefaultOptions()
//	opts.Velocity = true
//	res, err := b.Eval(t, opts)
//	// res.Value, res.Velocity (rescaled to wall-clock time)
//
// Performance: one exp and one (k+1)-dot per segment; Jacobians add two
// Dof×Dof multiplies per control point. Everything is O(K) per call with
// O(K²) cached coefficients.
package spline
