// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hopblocks/hopping"
)

// Matrix is a real square CSR matrix with an optional onsite diagonal.
// Hopping entries and the diagonal are kept apart so the structure stays the
// one produced by hopping.Store.ToCSR.
type Matrix struct {
	N       int
	IndPtr  []int
	Indices []hopping.Index
	Values  []float64
	Onsite  []float64 // nil or len N
}

// FromCSR replaces every family ID of m with energies[family].
// Complexity: O(NNZ); the index arrays are copied, not aliased.
func FromCSR(m *hopping.CSR, energies []float64) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	values := make([]float64, len(m.Data))
	for k, f := range m.Data {
		if f < 0 || int(f) >= len(energies) {
			return nil, fmt.Errorf("FromCSR: entry %d family %d (have %d energies): %w", k, f, len(energies), ErrMissingEnergy)
		}
		values[k] = energies[f]
	}

	return &Matrix{
		N:       m.N,
		IndPtr:  append([]int(nil), m.IndPtr...),
		Indices: append([]hopping.Index(nil), m.Indices...),
		Values:  values,
	}, nil
}

// SetOnsite installs the diagonal; v is copied. A nil v clears it.
func (h *Matrix) SetOnsite(v []float64) error {
	if v == nil {
		h.Onsite = nil
		return nil
	}
	if len(v) != h.N {
		return fmt.Errorf("SetOnsite: len=%d, N=%d: %w", len(v), h.N, ErrDimensionMismatch)
	}
	h.Onsite = append([]float64(nil), v...)

	return nil
}

// NNZ returns the number of stored hopping entries (diagonal excluded).
func (h *Matrix) NNZ() int { return len(h.Indices) }

// Transpose returns Hᵀ with ascending columns in every row.
// Complexity: O(N + NNZ) via a counting pass over columns.
func (h *Matrix) Transpose() *Matrix {
	indPtr := make([]int, h.N+1)
	for _, c := range h.Indices {
		indPtr[c+1]++
	}
	for i := 0; i < h.N; i++ {
		indPtr[i+1] += indPtr[i]
	}

	indices := make([]hopping.Index, len(h.Indices))
	values := make([]float64, len(h.Values))
	next := append([]int(nil), indPtr[:h.N]...)
	// Rows are visited in ascending order, so each transposed row fills sorted.
	for i := 0; i < h.N; i++ {
		for k := h.IndPtr[i]; k < h.IndPtr[i+1]; k++ {
			c := h.Indices[k]
			indices[next[c]] = hopping.Index(i)
			values[next[c]] = h.Values[k]
			next[c]++
		}
	}

	t := &Matrix{N: h.N, IndPtr: indPtr, Indices: indices, Values: values}
	if h.Onsite != nil {
		t.Onsite = append([]float64(nil), h.Onsite...)
	}

	return t
}

// Hermitian returns H + Hᵀ for the hopping part, summing entries that land on
// the same cell; the onsite diagonal is kept once. Use it when each hopping
// is declared in one direction only; declaring both directions and calling
// Hermitian doubles the energies.
// Complexity: O(N + NNZ).
func (h *Matrix) Hermitian() *Matrix {
	t := h.Transpose()
	out := &Matrix{
		N:       h.N,
		IndPtr:  make([]int, h.N+1),
		Indices: make([]hopping.Index, 0, 2*len(h.Indices)),
		Values:  make([]float64, 0, 2*len(h.Values)),
		Onsite:  t.Onsite,
	}

	for i := 0; i < h.N; i++ {
		a, aEnd := h.IndPtr[i], h.IndPtr[i+1]
		b, bEnd := t.IndPtr[i], t.IndPtr[i+1]
		// Two-way merge of sorted rows.
		for a < aEnd || b < bEnd {
			var c hopping.Index
			var v float64
			switch {
			case b >= bEnd || (a < aEnd && h.Indices[a] < t.Indices[b]):
				c, v = h.Indices[a], h.Values[a]
				a++
			case a >= aEnd || t.Indices[b] < h.Indices[a]:
				c, v = t.Indices[b], t.Values[b]
				b++
			default: // equal columns
				c, v = h.Indices[a], h.Values[a]+t.Values[b]
				a++
				b++
			}
			// Fold into the previous entry when the column repeats (duplicates).
			if n := len(out.Indices); n > out.IndPtr[i] && out.Indices[n-1] == c {
				out.Values[n-1] += v
				continue
			}
			out.Indices = append(out.Indices, c)
			out.Values = append(out.Values, v)
		}
		out.IndPtr[i+1] = len(out.Indices)
	}

	return out
}

// MulVec returns y = H·x.
// Complexity: O(N + NNZ).
func (h *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != h.N {
		return nil, fmt.Errorf("MulVec: len(x)=%d, N=%d: %w", len(x), h.N, ErrDimensionMismatch)
	}
	y := make([]float64, h.N)
	for i := 0; i < h.N; i++ {
		var sum float64
		if h.Onsite != nil {
			sum = h.Onsite[i] * x[i]
		}
		for k := h.IndPtr[i]; k < h.IndPtr[i+1]; k++ {
			sum += h.Values[k] * x[h.Indices[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// Dense returns the matrix as a gonum *mat.Dense, diagonal included.
// Duplicate coordinates are summed. Returns ErrEmptyMatrix for N == 0 since
// gonum has no zero-sized dense matrices.
// Complexity: O(N² + NNZ) memory and time.
func (h *Matrix) Dense() (*mat.Dense, error) {
	if h.N == 0 {
		return nil, ErrEmptyMatrix
	}
	d := mat.NewDense(h.N, h.N, nil)
	for i := 0; i < h.N; i++ {
		if h.Onsite != nil {
			d.Set(i, i, h.Onsite[i])
		}
		for k := h.IndPtr[i]; k < h.IndPtr[i+1]; k++ {
			j := int(h.Indices[k])
			d.Set(i, j, d.At(i, j)+h.Values[k])
		}
	}

	return d, nil
}
