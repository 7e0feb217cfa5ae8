// Package geometry defines the d-dimensional Point type and the floating-point
// predicates the Delaunay kernel is built on.
//
// What is here:
//
//   - Point: a coordinate tuple with exact, coordinate-wise equality.
//   - SquaredDistance / SquaredNorm: the metric used by foliation checks.
//   - Orientation and InSphere: sign predicates evaluated as determinants
//     (matrix.Det), with a zero band scaled by Hadamard's bound.
//   - Circumsphere: the circumcenter of a (possibly lower-dimensional) simplex.
//   - Frame: an orthonormal frame of the affine hull of a point set, used to
//     triangulate degenerate (flat, collinear) inputs in their own dimension.
//
// Tolerance policy:
//
//	Equality of points is exact. Tolerance only lives in the predicates: a
//	determinant whose magnitude is below eps·(product of its row norms) is
//	reported as 0 (degenerate / co-spherical).
package geometry
