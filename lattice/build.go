// SPDX-License-Identifier: MIT
// Package: hopblocks/lattice
//
// build.go — assembly of hopping blocks over a box of unit cells.
//
// Pipeline:
//   1) Validate lattice and shape (no partial work on failure).
//   2) Count exact per-family pairs and Reserve them (optional, scaled).
//   3) For each family, enumerate source cells in row-major order, emit
//      (site(R, From), site(R+rel, To)) into reusable row/col buffers and
//      Append the whole batch at once.
//   4) Optionally Validate the resulting store.
//
// Complexity: O(NNZ + NumFamilies) time; O(max family size) scratch space.

package lattice

import (
	"math"
	"time"

	"github.com/katalvlaran/hopblocks/hopping"
)

// Build assembles the hopping blocks of l over shape. The returned store has
// NumCells*NumSublattices sites and one block per family.
func Build(l *Lattice, shape Shape, opts ...Option) (*hopping.Store, error) {
	cfg := newBuildConfig(opts...)
	start := time.Now()

	// 1) Validate inputs.
	ns := len(l.sublattices)
	if ns == 0 {
		return nil, latticeErrorf(methodBuild, ErrNoSublattices, "dims=%d", l.dims)
	}
	for d := l.dims; d < MaxDims; d++ {
		if shape.Size[d] != 1 {
			return nil, latticeErrorf(methodBuild, ErrBadShape, "size=%v dims=%d", shape.Size, l.dims)
		}
	}
	cells, ok := shape.cells()
	if !ok || cells > math.MaxInt32/ns {
		return nil, latticeErrorf(methodBuild, ErrBadShape, "size=%v with %d sublattices exceeds index range", shape.Size, ns)
	}
	numSites := cells * ns

	store, err := hopping.New(numSites, len(l.hoppings))
	if err != nil {
		return nil, err
	}

	// 2) Exact counts; the factor lets callers exercise under/over estimates.
	counts := make([]int, len(l.hoppings))
	largest := 0
	for f, h := range l.hoppings {
		counts[f] = shape.pairCount(h.RelIndex)
		largest = max(largest, counts[f])
	}
	if cfg.reserve {
		estimates := make([]int, len(counts))
		for f, c := range counts {
			estimates[f] = int(math.Ceil(float64(c) * cfg.reserveFactor))
		}
		store.Reserve(estimates)
	}

	// 3) Per-family bulk append with shared scratch buffers.
	rows := make([]hopping.Index, 0, largest)
	cols := make([]hopping.Index, 0, largest)
	for f, h := range l.hoppings {
		rows, cols = appendFamily(rows[:0], cols[:0], shape, ns, h)
		store.Append(f, rows, cols)
		cfg.log.Debug().
			Int("family", f).
			Ints("rel", h.RelIndex[:l.dims]).
			Int("from", h.From).
			Int("to", h.To).
			Int("entries", len(rows)).
			Msg("family assembled")
	}

	// 4) Optional contract check.
	if cfg.validate {
		if err := store.Validate(); err != nil {
			cfg.log.Error().Err(err).Msg("hopping store failed validation")
			return nil, err
		}
	}

	cfg.log.Info().
		Int("sites", numSites).
		Int("families", store.NumFamilies()).
		Int("nnz", store.NNZ()).
		Dur("elapsed", time.Since(start)).
		Msg("hopping blocks built")

	return store, nil
}

// appendFamily emits every in-box pair of hopping h into rows/cols.
func appendFamily(rows, cols []hopping.Index, shape Shape, ns int, h Hopping) ([]hopping.Index, []hopping.Index) {
	r := h.RelIndex
	x0, x1 := span(shape.Size[0], r[0])
	y0, y1 := span(shape.Size[1], r[1])
	z0, z1 := span(shape.Size[2], r[2])
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				src := shape.cellIndex(x, y, z)*ns + h.From
				dst := shape.cellIndex(x+r[0], y+r[1], z+r[2])*ns + h.To
				rows = append(rows, hopping.Index(src))
				cols = append(cols, hopping.Index(dst))
			}
		}
	}

	return rows, cols
}
