// SPDX-License-Identifier: MIT
package hopping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopblocks/hopping"
)

// fillScenario inserts the reference 5-site fixture:
//
//	family 0 = {(0,1), (0,4), (1,2)}
//	family 1 = {(2,0), (2,3)}
func fillScenario(s *hopping.Store) {
	s.Add(0, 0, 1)
	s.Add(0, 0, 4)
	s.Add(0, 1, 2)
	s.Add(1, 2, 0)
	s.Add(1, 2, 3)
}

// scenarioStore builds the reference fixture in a fresh Store.
func scenarioStore(tb testing.TB) *hopping.Store {
	tb.Helper()
	s, err := hopping.New(5, 2)
	require.NoError(tb, err)
	fillScenario(s)

	return s
}

// ringStore builds an n-site ring with two families (forward, backward),
// inserting entries in a scrambled order so conversion has sorting to do.
func ringStore(tb testing.TB, n int) *hopping.Store {
	tb.Helper()
	s, err := hopping.New(n, 2)
	require.NoError(tb, err)
	s.Reserve([]int{n, n})

	fwdRows := make([]hopping.Index, 0, n)
	fwdCols := make([]hopping.Index, 0, n)
	for i := n - 1; i >= 0; i-- { // reverse order on purpose
		fwdRows = append(fwdRows, hopping.Index(i))
		fwdCols = append(fwdCols, hopping.Index((i+1)%n))
	}
	s.Append(0, fwdRows, fwdCols)
	for i := 0; i < n; i++ {
		s.Add(1, (i+1)%n, i)
	}

	return s
}

// sortedBlock returns a copy of b ordered by (row, col).
func sortedBlock(b hopping.Block) hopping.Block {
	out := append(hopping.Block(nil), b...)
	for i := 1; i < len(out); i++ { // insertion sort; fixtures are tiny
		for j := i; j > 0 && out[j].Less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
