// Package tdiff computes tangent-space Jacobians of group-valued
// functions: the local linearization of f at its arguments, decoupled
// from the nonlinear manifold structure.
//
// 🚀 What is a tangent-space Jacobian?
//
//	For f over one or more group-valued arguments, each argument is
//	perturbed in its own tangent space and the residual
//
//	    r(x) = f(args ⊕ x) ⊖ f(args)
//
//	is differentiated at x = 0 with respect to the stacked perturbation
//	vector. The result is the Dof(f)×ΣDof(args) matrix that optimizers
//	and filters on manifolds consume. Right-perturbation conventions
//	throughout (⊕/⊖ as in the lie package).
//
// Two interchangeable backends:
//
//   - Jacobian — central differences via gonum's diff/fd. Works for any
//     lie.Group with no extra implementation effort; truncation error is
//     O(step²), so expect ~1e-8…1e-10 accuracy at the default step
//     rather than machine precision.
//
//   - JacobianForward — forward-mode dual numbers (gonum num/dual). The
//     group supplies a lifted twin (lie.DualGroup, e.g. so3.Dual over
//     dual quaternions); one directional derivative per evaluation, exact
//     to machine precision. The function is supplied in its lifted form —
//     write it once against the DualGroup surface.
//
// ⚙️ Usage:
//
//	f := func(gs []*so3.SO3) *so3.SO3 { return gs[0].Compose(c) }
//	val, jac, err := tdiff.Jacobian(f, []*so3.SO3{g}, tdiff.DefaultOptions())
//	// jac ≈ Ad(c⁻¹), the closed form
//
// The combined tangent dimension is the sum of the arguments' Dofs;
// dimension bookkeeping is runtime here (Go has no value-level type
// arithmetic), and an empty argument list is rejected with ErrNoArgs.
package tdiff
