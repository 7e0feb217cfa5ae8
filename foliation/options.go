// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • New itself never panics; it reports failures as errors.
//   • Options apply in order, later ones overriding earlier ones.

package foliation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cdt/delaunay"
)

// Option customizes a FoliatedTriangulation before construction.
type Option func(*config)

// Defaults of the embedding and the ambient space.
const (
	DefaultInitialRadius    = 1.0
	DefaultFoliationSpacing = 1.0
	DefaultDimension        = 3
)

// config is resolved once by newConfig and never mutated afterwards.
type config struct {
	initialRadius float64
	spacing       float64
	dim           int
	kernel        delaunay.Kernel // nil → delaunay.NewKernel(dim)
	full          bool            // require Dimension() == dim
	lo, hi        int             // accepted timevalues; hi == 0 means unbounded
}

func newConfig(opts ...Option) config {
	cfg := config{
		initialRadius: DefaultInitialRadius,
		spacing:       DefaultFoliationSpacing,
		dim:           DefaultDimension,
		lo:            1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.kernel == nil {
		cfg.kernel = delaunay.NewKernel(cfg.dim)
	}

	return cfg
}

// WithInitialRadius sets the radius of slice 1. Panics if r < 0 or r is not finite.
func WithInitialRadius(r float64) Option {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("foliation: WithInitialRadius(%v)", r))
	}
	return func(c *config) { c.initialRadius = r }
}

// WithFoliationSpacing sets the radial distance between consecutive slices.
// Panics unless s > 0 and finite.
func WithFoliationSpacing(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("foliation: WithFoliationSpacing(%v)", s))
	}
	return func(c *config) { c.spacing = s }
}

// WithDimension sets the ambient dimension of the points (default 3).
// Panics outside 1..delaunay.MaxDimension.
func WithDimension(d int) Option {
	if d < 1 || d > delaunay.MaxDimension {
		panic(fmt.Sprintf("foliation: WithDimension(%d)", d))
	}
	return func(c *config) { c.dim = d }
}

// WithKernel injects the geometric kernel. Its AmbientDimension overrides
// WithDimension. Panics on nil.
func WithKernel(k delaunay.Kernel) Option {
	if k == nil {
		panic("foliation: WithKernel(nil)")
	}
	return func(c *config) {
		c.kernel = k
		c.dim = k.AmbientDimension()
	}
}

// WithFullDimension makes New fail unless the complex spans the ambient space.
func WithFullDimension() Option {
	return func(c *config) { c.full = true }
}

// WithTimevalueBounds declares the first and last slice. New rejects causal
// vertices outside [initial, final]. Panics unless 1 ≤ initial ≤ final.
func WithTimevalueBounds(initial, final int) Option {
	if initial < 1 || final < initial {
		panic(fmt.Sprintf("foliation: WithTimevalueBounds(%d, %d)", initial, final))
	}
	return func(c *config) { c.lo, c.hi = initial, final }
}
