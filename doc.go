// Package hopblocks builds the sparse connectivity ("hopping matrix") of
// tight-binding lattice models.
//
// The hopping matrix of a large crystal has millions of non-zeros but only a
// handful of distinct values: one per hopping family. hopblocks stores the
// coordinates grouped per family and never stores the values; they are
// recovered from block membership when the structure is converted to CSR.
//
// Under the hood, everything is organized in subpackages:
//
//	hopping/     — per-family coordinate blocks (Store) and CSR conversion
//	lattice/     — sublattices, hopping families and box assembly into a Store
//	hamiltonian/ — family IDs -> energies, sparse products, gonum dense bridge
//	codec/       — deterministic CBOR snapshots of a Store
//	cmd/hopblocks — command line: build from TOML, inspect snapshots
//
// Quick ASCII example (SSH chain, two families):
//
//	A0 ─0─ B0 ─1─ A1 ─0─ B1 ─1─ A2 ─0─ B2
//
// family 0 holds the intra-cell pairs (A,B), family 1 the inter-cell pairs.
//
//	go get github.com/katalvlaran/hopblocks
package hopblocks
