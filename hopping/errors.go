// SPDX-License-Identifier: MIT
// Package hopping: sentinel error set.
//
// Error policy:
//   • Hot-path insertion (Add, Append) never returns errors; misuse panics.
//   • Constructors and validators return ONLY these sentinels, wrapped with
//     method context via %w. Callers branch with errors.Is.

package hopping

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a site or family count is negative.
	ErrBadShape = errors.New("hopping: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, NumSites()).
	ErrOutOfRange = errors.New("hopping: site index out of range")

	// ErrDuplicateEntry indicates that the same (row, col) pair was registered
	// more than once, within one family or across families.
	ErrDuplicateEntry = errors.New("hopping: duplicate coordinate")

	// ErrMalformedCSR indicates a CSR whose row pointer, column or value arrays
	// violate the compressed-row layout (lengths, monotonicity, ordering).
	ErrMalformedCSR = errors.New("hopping: malformed csr")

	// ErrTooManyViolations marks a truncated validation report.
	ErrTooManyViolations = errors.New("hopping: too many violations")
)

// Method tags used as error prefixes.
const (
	methodNew        = "New"
	methodFromBlocks = "FromBlocks"
	methodValidate   = "Validate"
	methodCSR        = "CSR.Validate"
)

// hoppingErrorf prefixes err with the method tag, keeping err matchable by errors.Is.
func hoppingErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
