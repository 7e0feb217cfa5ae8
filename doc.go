// Package cdt builds and inspects foliated Delaunay triangulations, the
// spatial slices used by causal dynamical triangulations.
//
// What is in the module?
//
//	Points carrying an integer timevalue are triangulated by a Delaunay
//	kernel, and the result is checked and classified against the foliation:
//		• every vertex must sit on the sphere of its timevalue
//		• every edge is timelike (adjacent slices) or spacelike (one slice)
//		• every cell is typed by how many vertices lie on its lower and upper slice
//
// Subpackages:
//
//	geometry/  — points, affine frames, orientation and in-sphere predicates
//	matrix/    — dense matrices with LU determinant and solve, used by geometry
//	delaunay/  — incremental Bowyer–Watson kernel in 1 to 4 dimensions
//	foliation/ — FoliatedTriangulation: timevalue checks, edge and cell types
//	manifold/  — Manifold façade with the N0..N3, N1TL/N1SL, N31/N22/N13 counts
//	builder/   — deterministic and seeded fixtures (tetrahedron, Platonic shells, spheres)
//
// Quick example, a single (1,3) tetrahedron:
//
//	cvs := []foliation.CausalVertex{
//		{Point: geometry.NewPoint(0, 0, 0), Timevalue: 1},
//		{Point: geometry.NewPoint(1, 0, 0), Timevalue: 2},
//		{Point: geometry.NewPoint(0, 1, 0), Timevalue: 2},
//		{Point: geometry.NewPoint(0, 0, 1), Timevalue: 2},
//	}
//	m, err := manifold.New(cvs, foliation.WithInitialRadius(0))
//
//	go get github.com/katalvlaran/cdt
package cdt
