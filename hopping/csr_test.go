// SPDX-License-Identifier: MIT
package hopping_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopblocks/hopping"
)

// TestToCSRScenario checks the reference 5-site fixture end to end.
func TestToCSRScenario(t *testing.T) {
	s := scenarioStore(t)
	m := s.ToCSR()

	require.Equal(t, 5, m.N)
	require.Equal(t, []int{0, 2, 3, 5, 5, 5}, m.IndPtr)
	require.Equal(t, []hopping.Index{1, 4, 2, 0, 3}, m.Indices)
	require.Equal(t, []hopping.Index{0, 0, 0, 1, 1}, m.Data)
	require.NoError(t, m.Validate())
}

// TestToCSRSortsColumnsAcrossFamilies interleaves families inside one row.
func TestToCSRSortsColumnsAcrossFamilies(t *testing.T) {
	s, err := hopping.New(4, 3)
	require.NoError(t, err)
	s.Add(2, 1, 3)
	s.Add(0, 1, 2)
	s.Add(1, 1, 0)
	s.Add(2, 0, 0)

	m := s.ToCSR()
	require.Equal(t, []int{0, 1, 4, 4, 4}, m.IndPtr)
	require.Equal(t, []hopping.Index{0, 0, 2, 3}, m.Indices)
	require.Equal(t, []hopping.Index{2, 1, 0, 2}, m.Data)
}

// TestToCSRProperties checks pointer and ordering invariants on a larger store.
func TestToCSRProperties(t *testing.T) {
	const n = 257
	s := ringStore(t, n)
	m := s.ToCSR()

	require.Len(t, m.IndPtr, n+1)
	require.Equal(t, s.NNZ(), m.IndPtr[n])
	for i := 0; i < n; i++ {
		require.LessOrEqual(t, m.IndPtr[i], m.IndPtr[i+1]) // non-decreasing
		cols, _ := m.Row(i)
		for k := 1; k < len(cols); k++ {
			require.Less(t, cols[k-1], cols[k]) // strictly ascending
		}
	}
	require.NoError(t, m.Validate())
}

// TestToCSREmpty covers num_families=0 and all-empty blocks.
func TestToCSREmpty(t *testing.T) {
	for _, families := range []int{0, 3} {
		s, err := hopping.New(4, families)
		require.NoError(t, err)

		require.Equal(t, 0, s.NNZ())
		m := s.ToCSR()
		require.Equal(t, []int{0, 0, 0, 0, 0}, m.IndPtr)
		require.Empty(t, m.Indices)
		require.Empty(t, m.Data)
		require.NoError(t, m.Validate())
	}

	// Zero sites is a valid (degenerate) matrix.
	s, err := hopping.New(0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0}, s.ToCSR().IndPtr)
}

// TestToCSRKeepsDuplicates documents the no-merge policy.
func TestToCSRKeepsDuplicates(t *testing.T) {
	s, err := hopping.New(2, 2)
	require.NoError(t, err)
	s.Add(1, 0, 1)
	s.Add(0, 0, 1)

	m := s.ToCSR()
	require.Equal(t, []int{0, 2, 2}, m.IndPtr)
	require.Equal(t, []hopping.Index{1, 1}, m.Indices)
	require.Equal(t, []hopping.Index{0, 1}, m.Data) // stable: family order
	require.ErrorIs(t, m.Validate(), hopping.ErrDuplicateEntry)
}

// TestToCSRIsIndependentCopy mutates the store after conversion.
func TestToCSRIsIndependentCopy(t *testing.T) {
	s := scenarioStore(t)
	m := s.ToCSR()

	s.Add(0, 4, 4)
	s.Blocks()[0][0] = hopping.COO{Row: 3, Col: 3}

	require.Equal(t, 5, m.NNZ())
	require.Equal(t, []int{0, 2, 3, 5, 5, 5}, m.IndPtr)
	require.Equal(t, hopping.Index(1), m.Indices[0])
}

// TestCSRAt looks up present and absent entries.
func TestCSRAt(t *testing.T) {
	m := scenarioStore(t).ToCSR()

	fam, ok := m.At(2, 3)
	require.True(t, ok)
	require.Equal(t, hopping.Index(1), fam)

	fam, ok = m.At(0, 4)
	require.True(t, ok)
	require.Equal(t, hopping.Index(0), fam)

	_, ok = m.At(0, 2)
	require.False(t, ok)
	_, ok = m.At(4, 0) // empty row
	require.False(t, ok)
	_, ok = m.At(9, 0) // outside the matrix
	require.False(t, ok)
	_, ok = m.At(0, -1)
	require.False(t, ok)
	_, ok = m.At(0, 5)
	require.False(t, ok)
	_, ok = m.At(0, 1<<32+4) // would alias column 4 once narrowed to Index
	require.False(t, ok)
}

// TestCSRRoundTrip regroups by family and compares order-independently.
func TestCSRRoundTrip(t *testing.T) {
	for name, s := range map[string]*hopping.Store{
		"scenario": scenarioStore(t),
		"ring":     ringStore(t, 31),
	} {
		t.Run(name, func(t *testing.T) {
			back := s.ToCSR().ToBlocks()
			require.Len(t, back, s.NumFamilies())
			require.Equal(t, s.NNZ(), back.NNZ())
			for f, b := range s.All() {
				if diff := cmp.Diff(sortedBlock(b), back[f]); diff != "" {
					t.Fatalf("family %d mismatch (-want +got):\n%s", f, diff)
				}
			}
		})
	}
}

// TestCSRToBlocksNKeepsTrailingFamilies preserves empty trailing blocks.
func TestCSRToBlocksNKeepsTrailingFamilies(t *testing.T) {
	s, err := hopping.New(3, 4)
	require.NoError(t, err)
	s.Add(1, 0, 2)

	require.Len(t, s.ToCSR().ToBlocks(), 2)
	back := s.ToCSR().ToBlocksN(4)
	require.Len(t, back, 4)
	require.Equal(t, hopping.Block{{Row: 0, Col: 2}}, back[1])
}

// TestCSRValidateRejectsMalformed exercises each layout check.
func TestCSRValidateRejectsMalformed(t *testing.T) {
	cases := map[string]*hopping.CSR{
		"negative size":   {N: -1},
		"short indptr":    {N: 2, IndPtr: []int{0, 0}},
		"length mismatch": {N: 1, IndPtr: []int{0, 1}, Indices: []hopping.Index{0}},
		"bad tail":        {N: 1, IndPtr: []int{0, 2}, Indices: []hopping.Index{0}, Data: []hopping.Index{0}},
		"decreasing": {N: 2, IndPtr: []int{0, 2, 1},
			Indices: []hopping.Index{0}, Data: []hopping.Index{0}},
		"unsorted": {N: 2, IndPtr: []int{0, 2, 2},
			Indices: []hopping.Index{1, 0}, Data: []hopping.Index{0, 0}},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, m.Validate(), hopping.ErrMalformedCSR)
		})
	}

	oob := &hopping.CSR{N: 1, IndPtr: []int{0, 1}, Indices: []hopping.Index{3}, Data: []hopping.Index{0}}
	require.ErrorIs(t, oob.Validate(), hopping.ErrOutOfRange)
}
