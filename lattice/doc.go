// Package lattice describes a tight-binding lattice (sublattices and hopping
// families) and assembles its hopping blocks over a finite box of unit cells.
//
// It plays the role of the geometry collaborator of package hopping: it knows
// how many sites and families exist, estimates per-family entry counts for
// Reserve, and streams the (row, col) pairs of each family with Append.
//
// Model:
//
//   - A Lattice has 1..3 primitive directions (Dims).
//   - Each Sublattice is one site per unit cell, with an onsite energy.
//   - Each Hopping (family) connects sublattice From in cell R to sublattice To
//     in cell R+RelIndex, with a hopping energy. The family ID is the order in
//     which hoppings were added.
//   - A Shape is a box of Size[d] cells along each direction; sites outside the
//     box are dropped (open boundaries).
//
// Site numbering is cell-major: site = cell*NumSublattices + sublattice, with
// cells enumerated row-major over (x, y, z).
//
// Families are directed exactly as declared. The Hermitian partner of a
// hopping is added by the consumer (see package hamiltonian) or declared as a
// separate family.
package lattice
