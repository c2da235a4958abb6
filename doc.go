// Package liegroups is your in-memory toolkit for calculus on Lie groups —
// the rotation and rigid-motion manifolds of robotics, computer vision and
// control — from core group primitives to smooth curves on manifolds.
//
// 🚀 What is liegroups?
//
//	A modern library, built on gonum, that brings together:
//		• Group primitives: identity, composition, inverse, exp/log
//		• Manifold calculus: right-plus/right-minus, adjoints, brackets
//		• Exp Jacobians: dr_exp / dr_expinv and their left variants
//		• Cardinal B-splines: curves on any group, with velocity,
//		  acceleration and control-point Jacobians
//		• Tangent-space differentiation: central differences or
//		  forward-mode dual numbers
//
// ✨ Why choose liegroups?
//
//   - Group-agnostic – algorithms see only the lie.Group contract
//   - Rock-solid guarantees – sentinel errors on bad data, in-code docs
//   - Deterministic – no global state, randomness is injected
//   - Extensible – plug in your own group by satisfying one interface
//
// Under the hood, everything is organized under five subpackages:
//
//	lie/    — storage, the Group contract, and the derived calculus
//	spline/ — cardinal B-spline coefficients, evaluator and container
//	tdiff/  — tangent-space Jacobians of group-valued functions
//	tn/     — the translation group T(n)
//	so3/    — the 3-D rotation group, stored as unit quaternions
//
// Quick ASCII example:
//
//	    g0───g1───g2───g3        control points on a manifold
//	      ╲   │    │   ╱
//	       ╰──┴─●──┴──╯          spline curve g(t), velocity, acceleration
//
// Dive into the per-package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/liegroups
package liegroups
