// Package tn implements T(n), the Lie group of n-dimensional translations.
//
// 🚀 What is T(n)?
//
//	Plain vector addition, dressed as a Lie group: group coordinates and
//	tangent coordinates coincide, composition is addition, exp and log
//	are the identity maps, the adjoint is the identity matrix and the
//	bracket vanishes. In homogeneous-matrix form an element is
//
//	    ⎡ I  t ⎤
//	    ⎣ 0  1 ⎦
//
// Why bother? Because T(n) is the simplest type satisfying lie.Group, so
// every group-agnostic algorithm (splines, tangent-space Jacobians) can
// be validated against ordinary linear-space closed forms before being
// trusted on curved groups like so3. It is also genuinely useful for
// spline-smoothing plain trajectories with the same API.
//
// Memory layout: group = tangent = [x_1 … x_n].
//
// ⚙️ Usage:
//
//	p := tn.Zero(3)                     // identity of T(3)
//	q := tn.FromSlice([]float64{1, 2, 3})
//	r := p.Compose(q)                   // vector sum
//	v := r.Log()                        // the coordinates themselves
//
// Map wraps caller-owned memory without copying (view storage); the
// memory must outlive the element.
package tn
