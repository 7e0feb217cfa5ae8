// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/cdt/delaunay"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before any vertex is produced.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithInitialRadius sets the radius of slice 1. Panics if r < 0 or not finite.
func WithInitialRadius(r float64) BuilderOption {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic("builder: WithInitialRadius(r<0)")
	}
	return func(c *builderConfig) { c.initialRadius = r }
}

// WithFoliationSpacing sets the radial gap between slices. Panics unless s > 0.
func WithFoliationSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithFoliationSpacing(s<=0)")
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithDimension sets the ambient dimension of emitted points.
// Panics outside 1..delaunay.MaxDimension.
func WithDimension(d int) BuilderOption {
	if d < 1 || d > delaunay.MaxDimension {
		panic("builder: WithDimension out of range")
	}
	return func(c *builderConfig) { c.dim = d }
}

// WithFirstTimevalue sets the slice multi-slice constructors start from.
// Panics if t < 1.
func WithFirstTimevalue(t int) BuilderOption {
	if t < 1 {
		panic("builder: WithFirstTimevalue(t<1)")
	}
	return func(c *builderConfig) { c.firstT = t }
}
