// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// variants_platonic.go — canonical vertex sets of the Platonic solids.
//
// Design:
//   • Single source of truth for the 5 Platonic shells (3-D coordinates).
//   • Coordinates are the classic integer/golden-ratio forms; PlatonicShell
//     scales them onto the sphere of a slice.
//   • Datasets are immutable package data; callers receive copies.

package builder

import "math"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// platonicVertices maps each solid to its unscaled vertex coordinates.
var platonicVertices = map[PlatonicName][][3]float64{
	Tetrahedron: {
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	},
	Cube: cubeCorners(),
	Octahedron: {
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	},
	// cube corners plus three golden rectangles
	Dodecahedron: append(cubeCorners(),
		cyclic(0, 1/phi, phi)...),
	// three orthogonal golden rectangles
	Icosahedron: cyclic(0, 1, phi),
}

func cubeCorners() [][3]float64 {
	out := make([][3]float64, 0, 8)
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				out = append(out, [3]float64{x, y, z})
			}
		}
	}

	return out
}

// cyclic returns the 12 points (a, ±b, ±c) and their cyclic permutations.
func cyclic(a, b, c float64) [][3]float64 {
	out := make([][3]float64, 0, 12)
	for _, sb := range []float64{-1, 1} {
		for _, sc := range []float64{-1, 1} {
			p := [3]float64{a, sb * b, sc * c}
			out = append(out, p, [3]float64{p[2], p[0], p[1]}, [3]float64{p[1], p[2], p[0]})
		}
	}

	return out
}
