// SPDX-License-Identifier: MIT
// Package: hopblocks/lattice
//
// options.go — functional configuration for Build.
//
// Defaults:
//   • reserve       = true  (Reserve with exact per-family counts)
//   • reserveFactor = 1.0   (scale applied to the counts before Reserve)
//   • validate      = false (Store.Validate is a debug-time check)
//   • logger        = zerolog.Nop()

package lattice

import (
	"math"

	"github.com/rs/zerolog"
)

// Defaults (single source of truth).
const (
	DefaultReserve       = true
	DefaultReserveFactor = 1.0
	DefaultValidate      = false
)

const panicReserveFactor = "lattice: WithReserveFactor: factor must be finite and >= 0"

// Option mutates the build configuration.
type Option func(*buildConfig)

// buildConfig is resolved once per Build call and passed by value.
type buildConfig struct {
	reserve       bool
	reserveFactor float64
	validate      bool
	log           zerolog.Logger
}

// newBuildConfig applies opts in order over the defaults; last wins.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		reserve:       DefaultReserve,
		reserveFactor: DefaultReserveFactor,
		validate:      DefaultValidate,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithReserve toggles per-family reservation before assembly.
func WithReserve(on bool) Option {
	return func(c *buildConfig) { c.reserve = on }
}

// WithReserveFactor scales the per-family count estimates passed to Reserve.
// Values below 1 under-reserve and values above 1 over-reserve; both are
// legal since reservation is advisory. Panics on NaN, ±Inf or negative input.
func WithReserveFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		panic(panicReserveFactor)
	}

	return func(c *buildConfig) { c.reserveFactor = f }
}

// WithValidate runs Store.Validate after assembly and fails Build on violations.
func WithValidate(on bool) Option {
	return func(c *buildConfig) { c.validate = on }
}

// WithLogger sets the logger used for assembly progress.
func WithLogger(log zerolog.Logger) Option {
	return func(c *buildConfig) { c.log = log.With().Str("component", "lattice").Logger() }
}
