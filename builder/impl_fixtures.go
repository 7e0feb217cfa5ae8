// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// impl_fixtures.go — deterministic constructors: FoliatedTetrahedron, Points.

package builder

import (
	"math"

	"github.com/katalvlaran/cdt/foliation"
	"github.com/katalvlaran/cdt/geometry"
)

const (
	methodFoliatedTetrahedron = "FoliatedTetrahedron"
	methodPoints              = "Points"
)

// FoliatedTetrahedron returns the canonical simplex fixture: one vertex on
// each positive axis at the radius of the first slice, plus the diagonal
// vertex (r, ..., r) at the radius of the next slice. In 3-D with the default
// embedding these are (1,0,0), (0,1,0), (0,0,1) on slice 1 and
// (2/√3, 2/√3, 2/√3) on slice 2, a single (3,1) cell.
//
// Errors:
//   - ErrOptionViolation when the first slice has radius 0 (the axis
//     vertices would coincide).
func FoliatedTetrahedron() Constructor {
	return func(cfg builderConfig) ([]foliation.CausalVertex, error) {
		emb := cfg.embedding()
		t := cfg.firstT
		lower, upper := emb.ExpectedRadius(t), emb.ExpectedRadius(t+1)
		if lower <= 0 {
			return nil, wrapf(methodFoliatedTetrahedron, ErrOptionViolation, "slice %d has radius %g", t, lower)
		}

		out := make([]foliation.CausalVertex, 0, cfg.dim+1)
		for axis := 0; axis < cfg.dim; axis++ {
			p := geometry.Origin(cfg.dim)
			p[axis] = lower
			out = append(out, foliation.CausalVertex{Point: p, Timevalue: t})
		}
		diag := make(geometry.Point, cfg.dim)
		for i := range diag {
			diag[i] = upper / math.Sqrt(float64(cfg.dim))
		}

		return append(out, foliation.CausalVertex{Point: diag, Timevalue: t + 1}), nil
	}
}

// Points places explicit points on slice t without moving them. They should
// already lie on the slice's sphere for the result to pass CheckAllVertices.
//
// Errors:
//   - ErrOptionViolation for t < 1 or a point of the wrong dimension.
func Points(t int, pts ...geometry.Point) Constructor {
	return func(cfg builderConfig) ([]foliation.CausalVertex, error) {
		if t < 1 {
			return nil, wrapf(methodPoints, ErrOptionViolation, "timevalue %d", t)
		}
		out := make([]foliation.CausalVertex, len(pts))
		for i, p := range pts {
			if p.Dim() != cfg.dim {
				return nil, wrapf(methodPoints, ErrOptionViolation, "point %d has dimension %d, want %d", i, p.Dim(), cfg.dim)
			}
			out[i] = foliation.CausalVertex{Point: p.Clone(), Timevalue: t}
		}

		return out, nil
	}
}
