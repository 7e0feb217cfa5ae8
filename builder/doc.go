// Package builder produces causal-vertex fixtures: sequences of
// (point, timevalue) pairs ready for foliation.New.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   RNG, slice embedding (initial radius, spacing),
//     ambient dimension and first timevalue.
//   - Constructors (composable, applied in order by Build):
//     – FoliatedTetrahedron: d unit-axis vertices on the first slice and
//     one diagonal vertex on the next.
//     – PlatonicShell:       the vertices of a Platonic solid on one slice.
//     – FoliatedSphere:      uniformly random vertices on consecutive slices.
//     – Points:              explicit points on one slice.
//   - Entry points:
//     – Build:              concatenates constructor outputs.
//     – BuildTriangulation: Build followed by foliation.New with the same
//     embedding and dimension.
//
// Guarantees:
//
//   - Every vertex a constructor emits lies exactly (up to rounding) on the
//     sphere of its slice, so foliation.CheckAllVertices holds for the result.
//   - Determinism: equal options, seed and constructor order give equal output.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
package builder
