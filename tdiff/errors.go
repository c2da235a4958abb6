// SPDX-License-Identifier: MIT
// Package tdiff: sentinel error set.

package tdiff

import "errors"

// ErrNoArgs is returned when a Jacobian is requested with respect to an
// empty argument list; the stacked tangent space would be 0-dimensional.
var ErrNoArgs = errors.New("tdiff: no arguments to differentiate with respect to")
