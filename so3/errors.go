// SPDX-License-Identifier: MIT
// Package so3: sentinel error set. Constructors MUST return these
// sentinels for data-dependent failures and tests check them via
// errors.Is; panics are reserved for programmer errors.

package so3

import "errors"

var (
	// ErrZeroNorm is returned when a quaternion with (near-)zero norm is
	// offered as a rotation; it has no direction and cannot be normalized.
	ErrZeroNorm = errors.New("so3: zero-norm quaternion")

	// ErrCoeffSize is returned when a coordinate slice does not have
	// exactly 4 entries.
	ErrCoeffSize = errors.New("so3: coordinate buffer must have 4 entries")

	// ErrNotUnit is returned by Map when the aliased buffer does not hold
	// a unit quaternion; mapped storage is never silently renormalized
	// because that would write to caller-owned memory.
	ErrNotUnit = errors.New("so3: mapped buffer is not a unit quaternion")
)
