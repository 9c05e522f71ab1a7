// SPDX-License-Identifier: MIT

package lattice

import (
	"math"
)

// MaxDims is the highest supported lattice dimensionality.
const MaxDims = 3

// Method tags for error context.
const (
	methodNew           = "New"
	methodAddSublattice = "AddSublattice"
	methodAddHopping    = "AddHopping"
	methodBuild         = "Build"
	methodNewBox        = "NewBox"
)

// Sublattice is one site of the unit cell.
type Sublattice struct {
	Name   string  // unique label
	Onsite float64 // onsite potential energy
}

// Hopping is one hopping family: From in cell R connects to To in cell
// R+RelIndex with the given Energy.
type Hopping struct {
	RelIndex [MaxDims]int // unit-cell offset; components beyond Dims are 0
	From     int          // source sublattice ID
	To       int          // target sublattice ID
	Energy   float64      // hopping energy
}

// Lattice is a unit cell definition: sublattices plus hopping families.
type Lattice struct {
	dims        int
	sublattices []Sublattice
	hoppings    []Hopping
	byName      map[string]int // sublattice name -> ID
}

// New returns an empty lattice with the given number of primitive directions.
func New(dims int) (*Lattice, error) {
	if dims < 1 || dims > MaxDims {
		return nil, latticeErrorf(methodNew, ErrBadDims, "dims=%d", dims)
	}

	return &Lattice{dims: dims, byName: make(map[string]int)}, nil
}

// Dims returns the number of primitive directions.
func (l *Lattice) Dims() int { return l.dims }

// NumSublattices returns the number of sites per unit cell.
func (l *Lattice) NumSublattices() int { return len(l.sublattices) }

// NumFamilies returns the number of hopping families.
func (l *Lattice) NumFamilies() int { return len(l.hoppings) }

// Sublattices returns a copy of the sublattice table, indexed by ID.
func (l *Lattice) Sublattices() []Sublattice { return append([]Sublattice(nil), l.sublattices...) }

// Hoppings returns a copy of the family table, indexed by family ID.
func (l *Lattice) Hoppings() []Hopping { return append([]Hopping(nil), l.hoppings...) }

// SublatticeID resolves a sublattice name.
func (l *Lattice) SublatticeID(name string) (int, bool) {
	id, ok := l.byName[name]

	return id, ok
}

// AddSublattice registers a new sublattice and returns its ID.
func (l *Lattice) AddSublattice(name string, onsite float64) (int, error) {
	if name == "" {
		return 0, latticeErrorf(methodAddSublattice, ErrEmptyName, "onsite=%g", onsite)
	}
	if _, dup := l.byName[name]; dup {
		return 0, latticeErrorf(methodAddSublattice, ErrDuplicateSublattice, "name=%q", name)
	}
	if !finite(onsite) {
		return 0, latticeErrorf(methodAddSublattice, ErrInvalidEnergy, "name=%q onsite=%g", name, onsite)
	}

	id := len(l.sublattices)
	l.sublattices = append(l.sublattices, Sublattice{Name: name, Onsite: onsite})
	l.byName[name] = id

	return id, nil
}

// AddHopping registers a hopping family and returns its family ID.
// rel may be shorter than MaxDims; missing components are zero.
func (l *Lattice) AddHopping(rel []int, from, to int, energy float64) (int, error) {
	// 1) Endpoints must exist.
	if from < 0 || from >= len(l.sublattices) || to < 0 || to >= len(l.sublattices) {
		return 0, latticeErrorf(methodAddHopping, ErrUnknownSublattice,
			"from=%d to=%d (have %d)", from, to, len(l.sublattices))
	}

	// 2) Offset must fit the lattice dimensionality.
	if len(rel) > MaxDims {
		return 0, latticeErrorf(methodAddHopping, ErrBadRelativeIndex, "rel=%v", rel)
	}
	var r [MaxDims]int
	copy(r[:], rel)
	for d := l.dims; d < MaxDims; d++ {
		if r[d] != 0 {
			return 0, latticeErrorf(methodAddHopping, ErrBadRelativeIndex, "rel=%v dims=%d", rel, l.dims)
		}
	}

	// 3) No self-hopping; that is an onsite term.
	if r == ([MaxDims]int{}) && from == to {
		return 0, latticeErrorf(methodAddHopping, ErrOnsiteHopping, "sublattice=%d", from)
	}

	// 4) Energy policy.
	if !finite(energy) {
		return 0, latticeErrorf(methodAddHopping, ErrInvalidEnergy, "energy=%g", energy)
	}

	// 5) One family per (offset, from, to): duplicates would collide in the matrix.
	for id, h := range l.hoppings {
		if h.RelIndex == r && h.From == from && h.To == to {
			return 0, latticeErrorf(methodAddHopping, ErrDuplicateHopping, "rel=%v from=%d to=%d (family %d)", rel, from, to, id)
		}
	}

	id := len(l.hoppings)
	l.hoppings = append(l.hoppings, Hopping{RelIndex: r, From: from, To: to, Energy: energy})

	return id, nil
}

// Energies returns the hopping energy of every family, indexed by family ID.
func (l *Lattice) Energies() []float64 {
	out := make([]float64, len(l.hoppings))
	for i, h := range l.hoppings {
		out[i] = h.Energy
	}

	return out
}

// Onsite returns the onsite energy of every site of shape, in site order.
func (l *Lattice) Onsite(shape Shape) []float64 {
	ns := len(l.sublattices)
	out := make([]float64, shape.NumCells()*ns)
	for i := range out {
		out[i] = l.sublattices[i%ns].Onsite
	}

	return out
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
