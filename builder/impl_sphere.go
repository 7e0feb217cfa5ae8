// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// impl_sphere.go — FoliatedSphere(slices, perSlice): random concentric shells.
//
// Canonical model:
//   • Slices firstT .. firstT+slices-1, perSlice vertices each.
//   • Directions are normalized Gaussian vectors (uniform on the sphere),
//     scaled to ExpectedRadius(t).
//
// Contract:
//   • slices ≥ 1 and perSlice ≥ 1 → otherwise ErrBadSize.
//   • cfg.rng must be set → otherwise ErrNeedRandSource.
//   • A slice of radius 0 receives a single vertex at the origin.
//
// Complexity: O(slices·perSlice·d) time and space.

package builder

import (
	"math"

	"github.com/katalvlaran/cdt/foliation"
	"github.com/katalvlaran/cdt/geometry"
)

const methodFoliatedSphere = "FoliatedSphere"

// FoliatedSphere returns a Constructor drawing perSlice random vertices on
// each of slices consecutive slices.
func FoliatedSphere(slices, perSlice int) Constructor {
	return func(cfg builderConfig) ([]foliation.CausalVertex, error) {
		if slices < 1 || perSlice < 1 {
			return nil, wrapf(methodFoliatedSphere, ErrBadSize, "slices=%d perSlice=%d", slices, perSlice)
		}
		if cfg.rng == nil {
			return nil, wrapf(methodFoliatedSphere, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		emb := cfg.embedding()
		out := make([]foliation.CausalVertex, 0, slices*perSlice)
		for t := cfg.firstT; t < cfg.firstT+slices; t++ {
			r := emb.ExpectedRadius(t)
			if r == 0 {
				out = append(out, foliation.CausalVertex{Point: geometry.Origin(cfg.dim), Timevalue: t})
				continue
			}
			for i := 0; i < perSlice; i++ {
				out = append(out, foliation.CausalVertex{Point: randomOnSphere(cfg, r), Timevalue: t})
			}
		}

		return out, nil
	}
}

// randomOnSphere draws a uniform point on the sphere of radius r.
func randomOnSphere(cfg builderConfig, r float64) geometry.Point {
	p := make(geometry.Point, cfg.dim)
	for {
		var n2 float64
		for i := range p {
			p[i] = cfg.rng.NormFloat64()
			n2 += p[i] * p[i]
		}
		if n2 > 1e-12 {
			s := r / math.Sqrt(n2)
			for i := range p {
				p[i] *= s
			}
			return p
		}
	}
}
