// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/liegroups/lie"
)

// BSpline is a time-parameterized cardinal B-spline over a window of
// control points on a Lie group. It owns its control points (they are
// cloned on construction) and is immutable afterwards; concurrent Eval
// calls on one instance are safe.
//
// The control-point / knot correspondence is
//
//	KNOT  -K  -K+1  -K+2  ...   0    1  ...  N-K
//	CTRL   0    1     2   ...   K  K+1         N
//	                            ^              ^
//	                          TMin           TMax
//
// The first K control points are exterior: they shape the curve but lie
// outside its support [TMin, TMax). For interpolation use an odd degree
// and set t0 = (timestamp of first control point) + dt·K/2, which aligns
// control points with the maxima of their basis functions.
type BSpline[G lie.Group[G]] struct {
	k      int
	t0, dt float64
	ctrl   []G
}

// New creates a degree-k spline starting at t0 with uniform knot spacing
// dt over ctrl. Control points are deep-copied.
//
// Errors:
//   - ErrDegree    — k < 0.
//   - ErrTimeStep  — dt <= 0.
//   - ErrCtrlCount — fewer than k+1 control points (wrapped with
//     expected vs actual).
func New[G lie.Group[G]](k int, t0, dt float64, ctrl []G) (*BSpline[G], error) {
	if k < 0 {
		return nil, ErrDegree
	}
	if dt <= 0 {
		return nil, ErrTimeStep
	}
	if len(ctrl) < k+1 {
		return nil, fmt.Errorf("degree %d needs at least %d control points, got %d: %w",
			k, k+1, len(ctrl), ErrCtrlCount)
	}

	own := make([]G, len(ctrl))
	for i, g := range ctrl {
		own[i] = g.Clone()
	}

	return &BSpline[G]{k: k, t0: t0, dt: dt, ctrl: own}, nil
}

// NewConstant returns the constant identity spline of degree k on [0, 1):
// k+1 identity control points, t0 = 0, dt = 1. The prototype carries only
// dimensions. k < 0 is a programmer error and panics.
func NewConstant[G lie.Group[G]](k int, proto G) *BSpline[G] {
	if k < 0 {
		panic("spline: degree must be >= 0")
	}

	ctrl := make([]G, k+1)
	for i := range ctrl {
		ctrl[i] = lie.Identity(proto)
	}

	return &BSpline[G]{k: k, t0: 0, dt: 1, ctrl: ctrl}
}

// Degree returns the spline degree K.
func (b *BSpline[G]) Degree() int { return b.k }

// Len returns the number of control points.
func (b *BSpline[G]) Len() int { return len(b.ctrl) }

// TMin returns the start of the spline support.
func (b *BSpline[G]) TMin() float64 { return b.t0 }

// TMax returns the end of the spline support,
// t0 + (N−K)·dt for N+1 control points.
func (b *BSpline[G]) TMax() float64 {
	return b.t0 + float64(len(b.ctrl)-b.k)*b.dt
}

// Eval evaluates the spline at wall-clock time t.
//
// The window index is istar = ⌊(t−t0)/dt⌋, clamped to the first or last
// valid window with u pinned to 0 or 1: outside [TMin, TMax) the curve
// is constant-extrapolated, never overshot by basis functions. Velocity
// and acceleration are rescaled by 1/dt and 1/dt² to wall-clock units;
// the control-point Jacobian (if requested) refers to the K+1 points of
// the active window.
func (b *BSpline[G]) Eval(t float64, opts Options) (*Result[G], error) {
	istar := int(math.Floor((t - b.t0) / b.dt))

	var u float64
	switch {
	case istar < 0:
		istar, u = 0, 0
	case istar+b.k+1 > len(b.ctrl):
		istar, u = len(b.ctrl)-b.k-1, 1
	default:
		u = (t - b.t0 - float64(istar)*b.dt) / b.dt
	}

	res, err := Eval(b.k, b.ctrl[istar:istar+b.k+1], u, opts)
	if err != nil {
		return nil, err
	}

	if res.Velocity != nil {
		res.Velocity.ScaleVec(1/b.dt, res.Velocity)
	}
	if res.Acceleration != nil {
		res.Acceleration.ScaleVec(1/(b.dt*b.dt), res.Acceleration)
	}

	return res, nil
}
