// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Build(bopts, cons...) resolves cfg once and runs cons in order,
//     concatenating their causal vertices.
//   - BuildTriangulation additionally hands the result to foliation.New with
//     the same embedding and dimension.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical output.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cdt/foliation"
)

// Constructor emits causal vertices using the resolved builderConfig.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
type Constructor func(cfg builderConfig) ([]foliation.CausalVertex, error)

// Build resolves bopts and concatenates the output of cons in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, prefixed with "Build".
func Build(bopts []BuilderOption, cons ...Constructor) ([]foliation.CausalVertex, error) {
	cfg := newBuilderConfig(bopts...)

	var out []foliation.CausalVertex
	for i, fn := range cons {
		if fn == nil {
			return nil, wrapf("Build", ErrConstructFailed, "nil constructor at index %d", i)
		}
		cvs, err := fn(cfg)
		if err != nil {
			return nil, errors.WithMessage(err, "Build")
		}
		out = append(out, cvs...)
	}

	return out, nil
}

// BuildTriangulation builds causal vertices and triangulates them with the
// embedding and dimension of bopts. extra is appended to the derived
// foliation options (for example foliation.WithKernel).
func BuildTriangulation(bopts []BuilderOption, extra []foliation.Option, cons ...Constructor) (*foliation.FoliatedTriangulation, error) {
	cvs, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	opts := append(newBuilderConfig(bopts...).foliationOptions(), extra...)

	return foliation.New(cvs, opts...)
}
