// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// vertex.go — the vertex classifier: embedding of slices as concentric
// spheres and the per-vertex timevalue check.

package foliation

import (
	"math"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cdt/geometry"
)

// Embedding places slice t on the origin-centered sphere of radius
// InitialRadius + (t-1)·Spacing.
type Embedding struct {
	InitialRadius float64
	Spacing       float64
}

// ExpectedRadius returns the radius of slice t.
func (e Embedding) ExpectedRadius(t int) float64 {
	return e.InitialRadius + float64(t-1)*e.Spacing
}

// ExpectedTimevalue returns the slice whose sphere is nearest to p.
// Points inside the first sphere by more than half a spacing map to values
// below 1, which no valid vertex carries.
func (e Embedding) ExpectedTimevalue(p geometry.Point) int {
	r := math.Sqrt(p.SquaredNorm())

	return int(math.Round((r - e.InitialRadius + e.Spacing) / e.Spacing))
}

// Check reports whether timevalue t agrees with the position p.
func (e Embedding) Check(p geometry.Point, t int) bool {
	return e.ExpectedTimevalue(p) == t
}

// Embedding returns the slice embedding this triangulation validates against.
// The zero FoliatedTriangulation uses the default embedding.
func (ft *FoliatedTriangulation) Embedding() Embedding {
	if ft.cfg.spacing == 0 {
		return Embedding{InitialRadius: DefaultInitialRadius, Spacing: DefaultFoliationSpacing}
	}

	return Embedding{InitialRadius: ft.cfg.initialRadius, Spacing: ft.cfg.spacing}
}

// SquaredRadius returns |v|², the squared distance of v from the origin.
func (ft *FoliatedTriangulation) SquaredRadius(v *Vertex) float64 {
	return v.Point.SquaredNorm()
}

// ExpectedRadius returns the radius of the slice v claims to be on.
func (ft *FoliatedTriangulation) ExpectedRadius(v *Vertex) float64 {
	return ft.Embedding().ExpectedRadius(v.Timevalue)
}

// ExpectedTimevalue returns the timevalue implied by v's position.
func (ft *FoliatedTriangulation) ExpectedTimevalue(v *Vertex) int {
	return ft.Embedding().ExpectedTimevalue(v.Point)
}

// CheckVertex reports whether v's timevalue matches its position.
func (ft *FoliatedTriangulation) CheckVertex(v *Vertex) bool {
	return ft.Embedding().Check(v.Point, v.Timevalue)
}

// CheckAllVertices is the foliation validity gate: true iff every vertex's
// timevalue matches its position. It stops at the first violation.
// A complex of dimension below 1 has nothing to foliate and passes.
//
// Complexity: O(n·d).
func (ft *FoliatedTriangulation) CheckAllVertices() bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.dimension() < 1 {
		return true
	}
	emb := ft.Embedding()
	for _, v := range ft.vertices() {
		if !emb.Check(v.Point, v.Timevalue) {
			klog.V(2).Infof("foliation: %v expected timevalue %d", v, emb.ExpectedTimevalue(v.Point))
			return false
		}
	}

	return true
}

// VertexDiagnostics evaluates every vertex without short-circuiting.
func (ft *FoliatedTriangulation) VertexDiagnostics() []VertexDiagnostic {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	emb := ft.Embedding()
	vs := ft.vertices()
	out := make([]VertexDiagnostic, len(vs))
	for i, v := range vs {
		out[i] = VertexDiagnostic{
			Vertex:            v,
			SquaredRadius:     v.Point.SquaredNorm(),
			ExpectedRadius:    emb.ExpectedRadius(v.Timevalue),
			ExpectedTimevalue: emb.ExpectedTimevalue(v.Point),
			OK:                emb.Check(v.Point, v.Timevalue),
		}
	}

	return out
}
