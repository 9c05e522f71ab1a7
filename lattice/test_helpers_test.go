// SPDX-License-Identifier: MIT
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopblocks/lattice"
)

// sshChain is a two-sublattice 1D chain:
//
//	family 0: A(n) -> B(n),   energy -1.0 (intra-cell)
//	family 1: B(n) -> A(n+1), energy -0.5 (inter-cell)
func sshChain(tb testing.TB) *lattice.Lattice {
	tb.Helper()
	l, err := lattice.New(1)
	require.NoError(tb, err)
	a, err := l.AddSublattice("A", 0.1)
	require.NoError(tb, err)
	b, err := l.AddSublattice("B", -0.1)
	require.NoError(tb, err)
	_, err = l.AddHopping(nil, a, b, -1.0)
	require.NoError(tb, err)
	_, err = l.AddHopping([]int{1}, b, a, -0.5)
	require.NoError(tb, err)

	return l
}

// squareLattice is a one-sublattice 2D lattice with +x and +y hoppings.
func squareLattice(tb testing.TB) *lattice.Lattice {
	tb.Helper()
	l, err := lattice.New(2)
	require.NoError(tb, err)
	_, err = l.AddSublattice("A", 0)
	require.NoError(tb, err)
	_, err = l.AddHopping([]int{1, 0}, 0, 0, -1)
	require.NoError(tb, err)
	_, err = l.AddHopping([]int{0, 1}, 0, 0, -1)
	require.NoError(tb, err)

	return l
}
