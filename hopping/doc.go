// SPDX-License-Identifier: MIT

// Package hopping stores the sparsity pattern of a lattice hopping matrix as
// per-family coordinate blocks and converts it to compressed sparse rows.
//
// Each block is a COO sparse matrix whose (implicit) data array is constant and
// equal to the block index, i.e. the hopping family ID:
//
//	    block 0            block 1            block 2
//	row | col | data   row | col | data   row | col | data
//	----------------   ----------------   ----------------
//	 0  |  1  |  0      0  |  4  |  1      1  |  3  |  2
//	 0  |  4  |  0      2  |  3  |  1      4  |  4  |  2
//	 1  |  2  |  0      2  |  0  |  1      7  |  9  |  2
//	 3  |  2  |  0     ----------------     8  |  1  |  2
//	 7  |  5  |  0                         ----------------
//	----------------
//
// Because the data array is trivial it is never stored. The full COO matrix is
// recovered by concatenating the blocks and tagging every entry with the index
// of the block it came from; ToCSR does exactly that.
//
// Lifecycle:
//
//   - New(numSites, numFamilies) allocates one empty block per family.
//   - Reserve(counts) pre-sizes blocks from (possibly inexact) estimates.
//   - Add / Append insert coordinates during lattice assembly (hot path, unchecked).
//   - Validate (optional, tests and debug builds) checks bounds and duplicates.
//   - ToCSR produces an independent CSR copy for matrix consumers.
//
// Contracts:
//
//   - Row and column indices lie in [0, NumSites()). Not checked by Add/Append.
//   - No (row, col) pair is registered twice. ToCSR does not merge duplicates;
//     both entries are kept as separate slots of the same row.
//   - A family ID outside [0, NumFamilies()) is a programmer error and panics.
//
// Concurrency:
//
//   - Store is not safe for concurrent mutation. Read-only traversal (All,
//     Blocks, ToCSR) may run concurrently once assembly has finished.
package hopping
