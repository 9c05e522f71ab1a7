// SPDX-License-Identifier: MIT

package lattice

import "math"

// maxCells keeps every site number of a box representable as hopping.Index.
const maxCells = math.MaxInt32

// Shape is a box of unit cells; Size[d] cells along direction d.
type Shape struct {
	Size [MaxDims]int
}

// NewBox returns a box with the given per-direction sizes. Missing trailing
// sizes default to 1; every size must be >= 1.
func NewBox(sizes ...int) (Shape, error) {
	var s Shape
	if len(sizes) == 0 || len(sizes) > MaxDims {
		return s, latticeErrorf(methodNewBox, ErrBadShape, "sizes=%v", sizes)
	}
	for d := range s.Size {
		s.Size[d] = 1
	}
	for d, n := range sizes {
		if n < 1 {
			return Shape{}, latticeErrorf(methodNewBox, ErrBadShape, "sizes=%v", sizes)
		}
		s.Size[d] = n
	}
	if _, ok := s.cells(); !ok {
		return Shape{}, latticeErrorf(methodNewBox, ErrBadShape, "sizes=%v: more than %d cells", sizes, maxCells)
	}

	return s, nil
}

// NumCells returns the number of unit cells in the box. Only meaningful for
// shapes accepted by NewBox or Build.
func (s Shape) NumCells() int {
	return s.Size[0] * s.Size[1] * s.Size[2]
}

// cells returns the cell count, or false if a size is below 1 or the product
// exceeds maxCells. The bound is checked per direction before multiplying.
func (s Shape) cells() (int, bool) {
	n := 1
	for _, size := range s.Size {
		if size < 1 || n > maxCells/size {
			return 0, false
		}
		n *= size
	}

	return n, true
}

// cellIndex maps cell coordinates to the row-major cell number.
func (s Shape) cellIndex(x, y, z int) int {
	return (x*s.Size[1]+y)*s.Size[2] + z
}

// span returns the source range [lo, hi) along one direction for offset r:
// cells whose neighbor at +r is still inside the box. Offsets at least as
// long as the box give an empty range.
func span(size, r int) (lo, hi int) {
	if r >= size || r <= -size {
		return 0, 0
	}
	if r >= 0 {
		return 0, size - r
	}

	return -r, size
}

// pairCount is the exact number of (source, target) cell pairs at offset rel.
func (s Shape) pairCount(rel [MaxDims]int) int {
	n := 1
	for d := 0; d < MaxDims; d++ {
		lo, hi := span(s.Size[d], rel[d])
		if hi <= lo {
			return 0
		}
		n *= hi - lo
	}

	return n
}
