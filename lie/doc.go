// Package lie defines the group capability contract at the heart of
// liegroups, the coordinate-storage abstraction behind every element,
// and the manifold calculus derived from the contract.
//
// 🚀 What is lie?
//
//	The group-agnostic core. A concrete group type (so3.SO3, tn.Tn, or
//	your own) supplies only the primitive operations — identity, compose,
//	inverse, exp/log, adjoint, bracket and the right Jacobians of exp —
//	and this package layers the rest on top:
//	  • Identity / Random construction
//	  • IsApprox — scale-relative element comparison
//	  • RPlus / RMinus — the ⊕ / ⊖ operators of manifold calculus
//	  • DlExp / DlExpinv — left Jacobians derived from the right ones
//
// ✨ Key design points:
//   - Static dispatch – every algorithm is generic over Group[G], so the
//     compiler monomorphizes; no interface boxing on hot paths
//   - Storage split – elements either own their coordinate buffer (Array)
//     or alias external memory (View); capability mismatch is a
//     compile-time interface error, never a runtime check
//   - Conventions – right-plus g ⊕ a = g∘exp(a) and right-minus
//     g1 ⊖ g2 = log(g2⁻¹∘g1). Do not change the ordering: left/right
//     convention mix-ups are the classic silent bug of Lie-group code
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/liegroups/lie"
//
//	g := lie.Random(so3.Identity(), rnd)
//	h := lie.RPlus(g, v)           // g ∘ exp(v)
//	d := lie.RMinus(h, g)          // ≈ v
//	ok := lie.IsApprox(lie.RPlus(g, d), h, 0)
//
// See lie_test.go for the group-law test suite every concrete group must
// pass, and the so3/tn packages for reference implementations.
package lie
