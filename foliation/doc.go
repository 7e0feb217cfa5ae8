// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// Package foliation builds and validates foliated Delaunay triangulations:
// Delaunay complexes whose vertices carry an integer timevalue (≥ 1) naming
// the time-slice, or leaf, they belong to.
//
// Construction:
//
//	ft, err := foliation.New(causal, foliation.WithInitialRadius(0))
//
// hands the points to a delaunay.Kernel (the shipped Bowyer–Watson kernel by
// default, any implementation via WithKernel) and keeps the timevalue of every
// vertex next to the resulting complex.
//
// Embedding:
//
//	ExpectedRadius(t)    = InitialRadius + (t-1)·FoliationSpacing
//	ExpectedTimevalue(v) = round((|v| - InitialRadius + FoliationSpacing) / FoliationSpacing)
//
// Slice t is the sphere of radius ExpectedRadius(t) about the origin.
// CheckVertex compares a vertex's timevalue with the one its position implies.
//
// Classification:
//
//   - A top-dimensional cell must span exactly two consecutive slices. Its
//     SimplexType is the pair (vertices on the lower slice, vertices on the
//     upper slice); for d = 3 these are ThreeOne, TwoTwo and OneThree.
//   - An edge is Timelike when its endpoints' timevalues differ and
//     Spacelike otherwise.
//
// Every classification is a derived view recomputed from the complex on each
// call. Foliation problems never fail a query: they surface as false from
// CheckAllVertices/IsFoliated, as ErrInvalidFoliation from ClassifyCell and as
// the Invalid list of Classify.
//
// Concurrency:
//
// A FoliatedTriangulation is guarded by a sync.RWMutex. Queries take the read
// lock. FixTimevalues, the only mutation, takes the write lock.
package foliation
