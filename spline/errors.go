// SPDX-License-Identifier: MIT
// Package spline: sentinel error set. All entry points return these
// sentinels (wrapped with expected-vs-actual context where sizes are
// involved) and tests match them via errors.Is. No panics on
// user-triggered conditions.

package spline

import "errors"

var (
	// ErrDegree is returned when a negative spline degree is requested.
	ErrDegree = errors.New("spline: degree must be >= 0")

	// ErrDiffCount is returned when the tangent-difference sequence does
	// not have exactly K elements for declared degree K. The wrapping
	// message reports expected and actual counts.
	ErrDiffCount = errors.New("spline: wrong number of tangent differences")

	// ErrCtrlCount is returned when the control-point sequence is shorter
	// than an evaluation window (K+1 points). The wrapping message reports
	// expected and actual counts.
	ErrCtrlCount = errors.New("spline: wrong number of control points")

	// ErrTimeStep is returned when a BSpline is constructed with a
	// non-positive knot spacing dt.
	ErrTimeStep = errors.New("spline: knot spacing must be > 0")
)
