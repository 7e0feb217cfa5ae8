// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// edges.go — edge enumeration and timelike/spacelike counts.

package foliation

// Edges returns every finite edge, ordered by (U.ID, V.ID).
func (ft *FoliatedTriangulation) Edges() []Edge {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.edges()
}

func (ft *FoliatedTriangulation) edges() []Edge {
	faces := ft.faces(1)
	if len(faces) == 0 {
		return nil
	}
	vs := ft.vertices()
	out := make([]Edge, len(faces))
	for i, f := range faces {
		out[i] = Edge{U: vs[f[0]], V: vs[f[1]]}
	}

	return out
}

// TimelikeEdges returns the edges joining different slices.
func (ft *FoliatedTriangulation) TimelikeEdges() []Edge { return ft.edgesOfType(Timelike) }

// SpacelikeEdges returns the edges within a slice.
func (ft *FoliatedTriangulation) SpacelikeEdges() []Edge { return ft.edgesOfType(Spacelike) }

// N1TL counts timelike edges. N1TL() + N1SL() == NumberOfFiniteEdges().
func (ft *FoliatedTriangulation) N1TL() int { return len(ft.TimelikeEdges()) }

// N1SL counts spacelike edges.
func (ft *FoliatedTriangulation) N1SL() int { return len(ft.SpacelikeEdges()) }

func (ft *FoliatedTriangulation) edgesOfType(et EdgeType) []Edge {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	var out []Edge
	for _, e := range ft.edges() {
		if e.Type() == et {
			out = append(out, e)
		}
	}

	return out
}

// IsEdge reports whether u and v are both vertices and joined by a finite edge.
func (ft *FoliatedTriangulation) IsEdge(u, v *Vertex) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if !ft.isVertex(u) || !ft.isVertex(v) || u.ID == v.ID {
		return false
	}
	a, b := u.ID, v.ID
	if a > b {
		a, b = b, a
	}
	for _, f := range ft.faces(1) {
		if f[0] == a && f[1] == b {
			return true
		}
	}

	return false
}
