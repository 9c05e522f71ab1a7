// SPDX-License-Identifier: MIT

// Package hamiltonian is the numeric consumer of hopping structure: it maps
// the family IDs of a hopping.CSR to physical energies, producing a real
// sparse matrix, and bridges it to gonum dense matrices.
//
// No solver lives here; eigenvalue and Green's function routines belong to
// the caller (e.g. gonum/mat.EigenSym on the result of Dense).
package hamiltonian
