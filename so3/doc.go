// Package so3 implements SO(3), the Lie group of 3-D rotations, stored as
// unit quaternions on top of gonum's num/quat.
//
// 🚀 What is SO(3)?
//
//	The rotation group of three-dimensional space. Elements are unit
//	quaternions q = (x, y, z, w); tangent vectors are rotation vectors
//	(axis × angle) in ℝ³. It is the smallest noncommutative group in
//	this library, which makes it the one that exercises every adjoint
//	transport and Jacobian term the group-agnostic algorithms have.
//
// Memory layout
//
//	Group:   [x y z w]   (imaginary parts first, scalar last)
//	Tangent: [ωx ωy ωz]  (rotation vector)
//
// ✨ Numerics:
//   - exp/log and the exp Jacobians switch to small-angle series once the
//     squared tangent norm drops below lie.SmallAngle2, so there is no
//     division by a near-zero angle anywhere
//   - Compose renormalizes the product, so long composition chains cannot
//     drift off the unit sphere
//   - SetRandom draws uniformly over SO(3) (normalized Gaussian 4-vector)
//
// ⚙️ Usage:
//
//	g := so3.Identity()
//	h := so3.Random(rand.New(rand.NewSource(1)))
//	v := lie.RMinus(h, g)          // rotation vector from g to h
//	k := lie.RPlus(g, v)           // ≈ h
//
// The Dual type is the forward-mode twin over dual quaternions
// (num/dualquat); see the tdiff package.
package so3
