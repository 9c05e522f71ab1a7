// SPDX-License-Identifier: MIT

package hopping

import (
	"github.com/hashicorp/go-multierror"
)

// MaxReportedViolations bounds the size of a Validate report. Past the limit a
// single ErrTooManyViolations entry is appended and scanning stops.
const MaxReportedViolations = 32

// Validate checks the caller contracts that Add and Append do not enforce:
// every index lies in [0, NumSites()) and no (row, col) pair is registered
// twice, inside one family or across families. It is meant for tests and
// debug builds; production assembly should not pay for it.
//
// All violations (up to MaxReportedViolations) are returned as a
// *multierror.Error; each wraps ErrOutOfRange or ErrDuplicateEntry.
// Complexity: O(NNZ) time, O(NNZ) extra memory for the duplicate index.
func (s *Store) Validate() error {
	var result *multierror.Error
	seen := make(map[COO]int, s.nnz) // coordinate -> first family that used it

	reported := 0
	report := func(err error) bool {
		if reported >= MaxReportedViolations {
			result = multierror.Append(result, ErrTooManyViolations)
			return false
		}
		result = multierror.Append(result, err)
		reported++
		return true
	}

	for family, b := range s.blocks {
		for k, c := range b {
			if c.Row < 0 || int(c.Row) >= s.numSites || c.Col < 0 || int(c.Col) >= s.numSites {
				if !report(hoppingErrorf(methodValidate, "family %d entry %d (%d,%d), sites=%d",
					ErrOutOfRange, family, k, c.Row, c.Col, s.numSites)) {
					return result.ErrorOrNil()
				}
				continue
			}
			if first, dup := seen[c]; dup {
				if !report(hoppingErrorf(methodValidate, "(%d,%d) in family %d, first seen in family %d",
					ErrDuplicateEntry, c.Row, c.Col, family, first)) {
					return result.ErrorOrNil()
				}
				continue
			}
			seen[c] = family
		}
	}

	return result.ErrorOrNil()
}
