// SPDX-License-Identifier: MIT

package hamiltonian

import "errors"

var (
	// ErrMissingEnergy indicates a family ID with no entry in the energy table.
	ErrMissingEnergy = errors.New("hamiltonian: family has no energy")

	// ErrDimensionMismatch indicates a vector whose length differs from N.
	ErrDimensionMismatch = errors.New("hamiltonian: dimension mismatch")

	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("hamiltonian: nil matrix")

	// ErrEmptyMatrix indicates a 0×0 matrix where a dense copy was requested.
	ErrEmptyMatrix = errors.New("hamiltonian: empty matrix")
)
