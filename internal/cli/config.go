// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/hopblocks/lattice"
)

// Config is the TOML description of a lattice and the box to build.
//
//	dims = 1
//	size = [100]
//
//	[[sublattice]]
//	name = "A"
//	onsite = 0.0
//
//	[[hopping]]
//	rel = [1]
//	from = "A"
//	to = "A"
//	energy = -1.0
type Config struct {
	Dims        int                `toml:"dims"`
	Size        []int              `toml:"size"`
	Sublattices []SublatticeConfig `toml:"sublattice"`
	Hoppings    []HoppingConfig    `toml:"hopping"`
}

// SublatticeConfig declares one sublattice.
type SublatticeConfig struct {
	Name   string  `toml:"name"`
	Onsite float64 `toml:"onsite"`
}

// HoppingConfig declares one hopping family; endpoints are sublattice names.
type HoppingConfig struct {
	Rel    []int   `toml:"rel"`
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Energy float64 `toml:"energy"`
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Lattice turns the config into a lattice definition and a box shape.
func (c Config) Lattice() (*lattice.Lattice, lattice.Shape, error) {
	l, err := lattice.New(c.Dims)
	if err != nil {
		return nil, lattice.Shape{}, err
	}
	for _, s := range c.Sublattices {
		if _, err := l.AddSublattice(s.Name, s.Onsite); err != nil {
			return nil, lattice.Shape{}, err
		}
	}
	for i, h := range c.Hoppings {
		from, ok := l.SublatticeID(h.From)
		if !ok {
			return nil, lattice.Shape{}, fmt.Errorf("hopping %d: from %q: %w", i, h.From, lattice.ErrUnknownSublattice)
		}
		to, ok := l.SublatticeID(h.To)
		if !ok {
			return nil, lattice.Shape{}, fmt.Errorf("hopping %d: to %q: %w", i, h.To, lattice.ErrUnknownSublattice)
		}
		if _, err := l.AddHopping(h.Rel, from, to, h.Energy); err != nil {
			return nil, lattice.Shape{}, fmt.Errorf("hopping %d: %w", i, err)
		}
	}
	shape, err := lattice.NewBox(c.Size...)
	if err != nil {
		return nil, lattice.Shape{}, err
	}

	return l, shape, nil
}
