// SPDX-License-Identifier: MIT

package hopping

// Index is the storage type of site indices and family IDs.
// 32 bits halve the footprint of multi-million entry blocks compared to int.
type Index = int32

// COO is a single (row, col) coordinate of the hopping matrix.
type COO struct {
	Row Index // source site
	Col Index // target site
}

// Less orders coordinates by row, then column (compressed-row order).
// Complexity: O(1).
func (a COO) Less(b COO) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

// Compare returns -1, 0 or +1 following (row, col) order; usable with slices.SortFunc.
func (a COO) Compare(b COO) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Block is the ordered list of coordinates belonging to one hopping family.
// Order is insertion order and carries no meaning beyond conversion cost.
type Block []COO

// Blocks is the block collection indexed by family ID.
// The family ID of a block is its position; no separate ID is stored.
type Blocks []Block

// NNZ returns the total number of coordinates across all blocks.
// Complexity: O(len(bs)).
func (bs Blocks) NNZ() int {
	n := 0
	for _, b := range bs {
		n += len(b)
	}

	return n
}
