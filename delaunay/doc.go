// Package delaunay defines the geometric-kernel contract used by the foliation
// layer and ships an incremental Bowyer–Watson implementation of it.
//
// The contract is two interfaces:
//
//	Kernel  – Triangulate(points) builds a Complex; SquaredDistance(p, q).
//	Complex – dimension queries, enumeration of finite faces of every
//	          dimension, and the two structural validity predicates
//	          IsValid (empty-sphere Delaunay property) and IsTDSValid
//	          (combinatorial consistency of cells and neighbors).
//
// The shipped kernel (NewKernel) represents the unbounded part of the
// triangulation with a single infinite vertex: every hull facet is closed
// off by a ghost cell, so the cell complex is a triangulated sphere and
// insertion outside the hull needs no special case. Ghost cells are never
// exposed: all enumeration is of finite faces only.
//
// Degenerate inputs are first-class: the affine hull of the point set is
// computed (geometry.Frame) and the points are triangulated inside it. One
// point gives a 0-dimensional complex, two a segment, three a triangle and
// d+1 affinely independent points a full d-dimensional complex.
//
// Exact duplicates are rejected by the uniqueness rule: the first occurrence
// becomes the vertex, later ones are skipped (logged via klog). Source(v)
// maps a vertex back to its input index.
package delaunay
