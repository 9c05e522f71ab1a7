// SPDX-License-Identifier: MIT
// Package hopping: compressed sparse row conversion.
//
// Conversion pipeline (ToCSR):
//   1) Count entries per row and prefix-sum into IndPtr (length N+1).
//   2) Scatter (col, family) pairs into their row segment, visiting blocks in
//      family order. Scattering is stable: within a row, entries keep their
//      block-then-insertion order.
//   3) Stable-sort each row segment by column.
// The result equals a stable sort of all (row, col, family) triples by
// (row, col), without sorting rows against each other.
//
// Complexity: O(NNZ + N) for steps 1-2, O(Σ r·log r) for step 3 where r is the
// row length (lattice rows are short, bounded by the coordination number).

package hopping

import (
	"cmp"
	"slices"
	"sort"
)

// CSR is a square compressed-row sparse matrix whose values are family IDs.
type CSR struct {
	N       int     // number of rows and columns
	IndPtr  []int   // row pointer, len N+1; row i spans [IndPtr[i], IndPtr[i+1])
	Indices []Index // column index per entry, ascending within each row
	Data    []Index // family ID per entry
}

// csrEntry carries the family ID next to its column during the sort and is
// discarded once Indices/Data are emitted.
type csrEntry struct {
	col    Index
	family Index
}

// ToCSR returns the matrix in CSR format. The result shares no memory with
// the Store. Duplicate coordinates are kept as separate entries.
func (s *Store) ToCSR() *CSR {
	n := s.numSites
	nnz := s.nnz

	// 1) Row counts shifted by one, then prefix sum.
	indPtr := make([]int, n+1)
	for _, b := range s.blocks {
		for _, c := range b {
			indPtr[c.Row+1]++
		}
	}
	for i := 0; i < n; i++ {
		indPtr[i+1] += indPtr[i]
	}

	// 2) Stable scatter by row; next[i] is the write cursor of row i.
	entries := make([]csrEntry, nnz)
	next := make([]int, n)
	copy(next, indPtr[:n])
	for family, b := range s.blocks {
		for _, c := range b {
			entries[next[c.Row]] = csrEntry{col: c.Col, family: Index(family)}
			next[c.Row]++
		}
	}

	// 3) Column order inside each row.
	for i := 0; i < n; i++ {
		row := entries[indPtr[i]:indPtr[i+1]]
		if len(row) > 1 {
			slices.SortStableFunc(row, func(a, b csrEntry) int { return cmp.Compare(a.col, b.col) })
		}
	}

	// 4) Split into the parallel output arrays.
	indices := make([]Index, nnz)
	data := make([]Index, nnz)
	for k, e := range entries {
		indices[k] = e.col
		data[k] = e.family
	}

	return &CSR{N: n, IndPtr: indPtr, Indices: indices, Data: data}
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.Indices) }

// Row returns the column indices and family IDs of row i. Both slices alias m.
// Complexity: O(1).
func (m *CSR) Row(i int) (cols, families []Index) {
	lo, hi := m.IndPtr[i], m.IndPtr[i+1]

	return m.Indices[lo:hi], m.Data[lo:hi]
}

// At returns the family ID stored at (i, j) and whether the entry exists.
// With duplicate coordinates the first one in column order is returned.
// Complexity: O(log r) binary search within the row.
func (m *CSR) At(i, j int) (Index, bool) {
	if i < 0 || i >= m.N || j < 0 || j >= m.N {
		return 0, false
	}
	cols, families := m.Row(i)
	k := sort.Search(len(cols), func(k int) bool { return cols[k] >= Index(j) })
	if k < len(cols) && cols[k] == Index(j) {
		return families[k], true
	}

	return 0, false
}

// Validate checks the compressed-row layout: len(IndPtr) == N+1, IndPtr
// starts at 0, is non-decreasing and ends at NNZ, columns are inside [0, N)
// and strictly ascending within each row. Returns ErrMalformedCSR on the first
// violation; strict ordering also reports duplicates as ErrDuplicateEntry.
// Complexity: O(N + NNZ).
func (m *CSR) Validate() error {
	if m.N < 0 {
		return hoppingErrorf(methodCSR, "N=%d", ErrMalformedCSR, m.N)
	}
	if len(m.IndPtr) != m.N+1 {
		return hoppingErrorf(methodCSR, "len(IndPtr)=%d, want %d", ErrMalformedCSR, len(m.IndPtr), m.N+1)
	}
	if len(m.Indices) != len(m.Data) {
		return hoppingErrorf(methodCSR, "len(Indices)=%d != len(Data)=%d", ErrMalformedCSR, len(m.Indices), len(m.Data))
	}
	if m.IndPtr[0] != 0 || m.IndPtr[m.N] != len(m.Indices) {
		return hoppingErrorf(methodCSR, "IndPtr bounds [%d, %d], want [0, %d]", ErrMalformedCSR, m.IndPtr[0], m.IndPtr[m.N], len(m.Indices))
	}
	for i := 0; i < m.N; i++ {
		lo, hi := m.IndPtr[i], m.IndPtr[i+1]
		if lo > hi || hi > len(m.Indices) {
			return hoppingErrorf(methodCSR, "IndPtr decreases at row %d", ErrMalformedCSR, i)
		}
		for k := lo; k < hi; k++ {
			c := m.Indices[k]
			if c < 0 || int(c) >= m.N {
				return hoppingErrorf(methodCSR, "row %d col %d", ErrOutOfRange, i, c)
			}
			if k > lo && m.Indices[k-1] >= c {
				if m.Indices[k-1] == c {
					return hoppingErrorf(methodCSR, "row %d col %d", ErrDuplicateEntry, i, c)
				}

				return hoppingErrorf(methodCSR, "row %d columns not ascending", ErrMalformedCSR, i)
			}
		}
	}

	return nil
}

// ToBlocks regroups the entries by family ID, recovering a block collection.
// The number of families is max(Data)+1. Within each block entries appear in
// (row, col) order, not in the original insertion order.
// Complexity: O(N + NNZ).
func (m *CSR) ToBlocks() Blocks {
	numFamilies := 0
	for _, f := range m.Data {
		numFamilies = max(numFamilies, int(f)+1)
	}

	return m.ToBlocksN(numFamilies)
}

// ToBlocksN is ToBlocks with an explicit family count, so trailing empty
// families survive the round trip. Entries whose family ID is >= numFamilies
// panic (caller error).
func (m *CSR) ToBlocksN(numFamilies int) Blocks {
	// Size every block exactly before filling.
	counts := make([]int, numFamilies)
	for _, f := range m.Data {
		counts[f]++
	}
	blocks := make(Blocks, numFamilies)
	for f, c := range counts {
		if c > 0 {
			blocks[f] = make(Block, 0, c)
		}
	}
	for i := 0; i < m.N; i++ {
		for k := m.IndPtr[i]; k < m.IndPtr[i+1]; k++ {
			f := m.Data[k]
			blocks[f] = append(blocks[f], COO{Row: Index(i), Col: m.Indices[k]})
		}
	}

	return blocks
}
