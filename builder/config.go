// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng           = nil   (pure/deterministic unless seeded)
//   • initialRadius = foliation.DefaultInitialRadius
//   • spacing       = foliation.DefaultFoliationSpacing
//   • dim           = foliation.DefaultDimension
//   • firstT        = 1

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cdt/foliation"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng           *rand.Rand
	initialRadius float64
	spacing       float64
	dim           int
	firstT        int
}

// newBuilderConfig applies options in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		initialRadius: foliation.DefaultInitialRadius,
		spacing:       foliation.DefaultFoliationSpacing,
		dim:           foliation.DefaultDimension,
		firstT:        1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) embedding() foliation.Embedding {
	return foliation.Embedding{InitialRadius: c.initialRadius, Spacing: c.spacing}
}

// foliationOptions mirrors the embedding and dimension for foliation.New.
func (c builderConfig) foliationOptions() []foliation.Option {
	return []foliation.Option{
		foliation.WithInitialRadius(c.initialRadius),
		foliation.WithFoliationSpacing(c.spacing),
		foliation.WithDimension(c.dim),
	}
}
