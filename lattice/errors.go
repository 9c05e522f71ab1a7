// SPDX-License-Identifier: MIT
// Package: hopblocks/lattice
//
// errors.go — sentinel errors for the lattice package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w via latticeErrorf.
//   • Build never panics on bad input; option constructors (WithX) may panic.

package lattice

import (
	"errors"
	"fmt"
)

// ErrBadDims indicates a lattice dimensionality outside [1, MaxDims].
var ErrBadDims = errors.New("lattice: dimensions out of range")

// ErrEmptyName indicates a sublattice declared without a name.
var ErrEmptyName = errors.New("lattice: empty sublattice name")

// ErrDuplicateSublattice indicates that a sublattice name is already taken.
var ErrDuplicateSublattice = errors.New("lattice: duplicate sublattice")

// ErrUnknownSublattice indicates a hopping endpoint that names no sublattice.
var ErrUnknownSublattice = errors.New("lattice: unknown sublattice")

// ErrBadRelativeIndex indicates a relative index with a non-zero component
// along a direction the lattice does not have.
var ErrBadRelativeIndex = errors.New("lattice: relative index exceeds lattice dimensions")

// ErrOnsiteHopping indicates a hopping from a site to itself (zero offset,
// same sublattice); onsite terms belong to Sublattice.Onsite.
var ErrOnsiteHopping = errors.New("lattice: hopping connects a site to itself")

// ErrDuplicateHopping indicates a second family with the same offset and
// sublattice pair, which would register identical (row, col) pairs twice.
var ErrDuplicateHopping = errors.New("lattice: duplicate hopping")

// ErrInvalidEnergy indicates a NaN or ±Inf energy.
var ErrInvalidEnergy = errors.New("lattice: energy must be finite")

// ErrNoSublattices indicates that Build was called on an empty lattice.
var ErrNoSublattices = errors.New("lattice: no sublattices")

// ErrBadShape indicates a box size < 1 along a lattice direction, a size > 1
// along a missing direction, or a site count beyond the index range.
var ErrBadShape = errors.New("lattice: invalid shape")

// latticeErrorf returns "<method>: <formatted message>: <err>" keeping err for errors.Is.
func latticeErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
