// SPDX-License-Identifier: MIT

package hopping

import (
	"fmt"
	"iter"
)

// Store holds hopping coordinates arranged in per-family blocks.
// It represents a square NumSites()×NumSites() matrix whose implicit value for
// every entry of block i is i itself.
type Store struct {
	numSites int    // number of lattice sites, i.e. the size of the square matrix
	blocks   Blocks // coordinate blocks indexed by family ID
	nnz      int    // running total of len(blocks[i])
}

// New allocates a Store for numSites sites with one empty block per family.
// Returns ErrBadShape if either count is negative.
// Complexity: O(numFamilies).
func New(numSites, numFamilies int) (*Store, error) {
	// Validate sizes (constructor only; the insertion path stays unchecked).
	if numSites < 0 || numFamilies < 0 {
		return nil, hoppingErrorf(methodNew, "numSites=%d, numFamilies=%d", ErrBadShape, numSites, numFamilies)
	}

	// Blocks start nil; Reserve or the first append allocates them.
	return &Store{numSites: numSites, blocks: make(Blocks, numFamilies)}, nil
}

// FromBlocks wraps a pre-built block collection (e.g. a decoded snapshot).
// The Store takes ownership of blocks; callers must not mutate them afterwards.
// Indices are not validated here; call Validate when the source is untrusted.
// Complexity: O(len(blocks)).
func FromBlocks(numSites int, blocks Blocks) (*Store, error) {
	if numSites < 0 {
		return nil, hoppingErrorf(methodFromBlocks, "numSites=%d", ErrBadShape, numSites)
	}

	return &Store{numSites: numSites, blocks: blocks, nnz: blocks.NNZ()}, nil
}

// NumSites returns the dimension of the square matrix.
func (s *Store) NumSites() int { return s.numSites }

// NumFamilies returns the number of blocks.
func (s *Store) NumFamilies() int { return len(s.blocks) }

// NNZ returns the number of non-zeros, i.e. the total number of hoppings.
// Complexity: O(1).
func (s *Store) NNZ() int { return s.nnz }

// Len returns the number of coordinates in the given family's block.
func (s *Store) Len(family int) int { return len(s.blocks[family]) }

// Cap returns the reserved capacity of the given family's block.
func (s *Store) Cap(family int) int { return cap(s.blocks[family]) }

// Blocks returns the raw block collection. The result aliases the Store and
// must be treated as read-only.
func (s *Store) Blocks() Blocks { return s.blocks }

// Reserve pre-allocates capacity for counts[i] coordinates in block i.
// Counts are estimates: inserting more costs reallocation, inserting fewer
// wastes capacity, neither corrupts content. Blocks that already have enough
// capacity are untouched; counts beyond NumFamilies() are ignored.
// Complexity: O(Σ len(block)) in the worst case (copy into the new backing array).
func (s *Store) Reserve(counts []int) {
	for i, c := range counts {
		if i >= len(s.blocks) {
			break // extra estimates have no block to apply to
		}
		b := s.blocks[i]
		if c <= cap(b) {
			continue // already large enough (covers c <= 0)
		}
		// Exact-size allocation keeps Cap() predictable for callers.
		nb := make(Block, len(b), c)
		copy(nb, b)
		s.blocks[i] = nb
	}
}

// Add appends a single coordinate pair to the given family block.
// row and col are not validated (caller contract). A family outside
// [0, NumFamilies()) panics with an index-out-of-range runtime error.
// Complexity: amortized O(1).
func (s *Store) Add(family, row, col int) {
	s.blocks[family] = append(s.blocks[family], COO{Row: Index(row), Col: Index(col)})
	s.nnz++
}

// Append adds len(rows) coordinates (rows[k], cols[k]) to the given family
// block in one step. It is equivalent to calling Add for each k in order.
// Panics if len(rows) != len(cols) or the family is out of range.
// Complexity: O(k) plus at most one reallocation.
func (s *Store) Append(family int, rows, cols []Index) {
	if len(rows) != len(cols) {
		panic(fmt.Sprintf("hopping: Append: len(rows)=%d != len(cols)=%d", len(rows), len(cols)))
	}
	b := s.blocks[family]
	// Grow once for the whole batch instead of per element.
	if need := len(b) + len(rows); need > cap(b) {
		nb := make(Block, len(b), need)
		copy(nb, b)
		b = nb
	}
	for k := range rows {
		b = append(b, COO{Row: rows[k], Col: cols[k]})
	}
	s.blocks[family] = b
	s.nnz += len(rows)
}

// All returns a restartable sequence of (family ID, block) pairs in ID order.
// The yielded blocks alias the Store and must not be modified.
//
//	for id, block := range store.All() { ... }
func (s *Store) All() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for id, b := range s.blocks {
			if !yield(id, b) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the Store. Capacities are not preserved.
// Complexity: O(NNZ() + NumFamilies()).
func (s *Store) Clone() *Store {
	blocks := make(Blocks, len(s.blocks))
	for i, b := range s.blocks {
		if b != nil {
			blocks[i] = append(Block(nil), b...)
		}
	}

	return &Store{numSites: s.numSites, blocks: blocks, nnz: s.nnz}
}

// String implements fmt.Stringer with a one-line summary.
func (s *Store) String() string {
	return fmt.Sprintf("hopping.Store{sites=%d families=%d nnz=%d}", s.numSites, len(s.blocks), s.nnz)
}
