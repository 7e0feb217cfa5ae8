// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// impl_platonic.go — PlatonicShell(name, t): a Platonic solid on slice t.
//
// Contract:
//   • Requires cfg.dim == 3 and t ≥ 1 → otherwise ErrOptionViolation.
//   • Unknown name → ErrOptionViolation.
//   • Vertices are scaled onto the sphere of radius ExpectedRadius(t) and
//     emitted in the dataset's fixed order.
//   • A zero radius would collapse the shell onto the origin → ErrOptionViolation.
//
// Complexity: O(V), V ≤ 20.

package builder

import (
	"math"

	"github.com/katalvlaran/cdt/foliation"
	"github.com/katalvlaran/cdt/geometry"
)

const methodPlatonicShell = "PlatonicShell"

// PlatonicShell returns a Constructor placing the vertices of the named solid
// on slice t.
func PlatonicShell(name PlatonicName, t int) Constructor {
	return func(cfg builderConfig) ([]foliation.CausalVertex, error) {
		verts, ok := platonicVertices[name]
		if !ok {
			return nil, wrapf(methodPlatonicShell, ErrOptionViolation, "unknown solid %v", name)
		}
		if cfg.dim != 3 {
			return nil, wrapf(methodPlatonicShell, ErrOptionViolation, "dimension %d, solids are 3-D", cfg.dim)
		}
		if t < 1 {
			return nil, wrapf(methodPlatonicShell, ErrOptionViolation, "timevalue %d", t)
		}
		r := cfg.embedding().ExpectedRadius(t)
		if r <= 0 {
			return nil, wrapf(methodPlatonicShell, ErrOptionViolation, "slice %d has radius %g", t, r)
		}

		out := make([]foliation.CausalVertex, len(verts))
		for i, v := range verts {
			s := r / math.Sqrt(v[0]*v[0]+v[1]*v[1]+v[2]*v[2])
			out[i] = foliation.CausalVertex{
				Point:     geometry.NewPoint(s*v[0], s*v[1], s*v[2]),
				Timevalue: t,
			}
		}

		return out, nil
	}
}
