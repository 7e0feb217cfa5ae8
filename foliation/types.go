// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// types.go — vertices, cells, edges and their derived labels.

package foliation

import (
	"fmt"

	"github.com/katalvlaran/cdt/geometry"
)

// CausalVertex is the unit of input: a point and the slice it belongs to.
type CausalVertex struct {
	Point     geometry.Point
	Timevalue int
}

// Vertex is a vertex owned by a FoliatedTriangulation.
//
// ID is the kernel's vertex id. Timevalue changes only through
// FoliatedTriangulation.FixTimevalues.
type Vertex struct {
	ID        int
	Point     geometry.Point
	Timevalue int
}

// String renders "v<ID> (x, y, z) t=<Timevalue>".
func (v *Vertex) String() string {
	return fmt.Sprintf("v%d %s t=%d", v.ID, v.Point, v.Timevalue)
}

// Cell is a finite top-dimensional simplex; Vertices are ordered by ID.
type Cell struct {
	ID       int
	Vertices []*Vertex
}

// Timevalues returns the timevalue of every vertex, in vertex order.
func (c *Cell) Timevalues() []int {
	ts := make([]int, len(c.Vertices))
	for i, v := range c.Vertices {
		ts[i] = v.Timevalue
	}

	return ts
}

// Edge is a finite 1-face with U.ID < V.ID.
type Edge struct {
	U, V *Vertex
}

// Type classifies the edge by its endpoints' timevalues.
func (e Edge) Type() EdgeType {
	if e.U.Timevalue == e.V.Timevalue {
		return Spacelike
	}

	return Timelike
}

// EdgeType separates edges between slices from edges within a slice.
type EdgeType int

const (
	// Timelike edges join vertices with different timevalues.
	Timelike EdgeType = iota
	// Spacelike edges join vertices with equal timevalues.
	Spacelike
)

func (t EdgeType) String() string {
	switch t {
	case Timelike:
		return "timelike"
	case Spacelike:
		return "spacelike"
	default:
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
}

// SimplexType labels a top cell by how many of its vertices lie on the lower
// and on the upper of its two slices. Lower+Upper = d+1, both ≥ 1.
type SimplexType struct {
	Lower, Upper int
}

// The d = 3 simplex types.
var (
	ThreeOne = SimplexType{Lower: 3, Upper: 1}
	TwoTwo   = SimplexType{Lower: 2, Upper: 2}
	OneThree = SimplexType{Lower: 1, Upper: 3}
)

// SimplexTypes lists the valid types of a d-dimensional foliation, from
// (d,1) down to (1,d).
func SimplexTypes(d int) []SimplexType {
	out := make([]SimplexType, 0, d)
	for up := 1; up <= d; up++ {
		out = append(out, SimplexType{Lower: d + 1 - up, Upper: up})
	}

	return out
}

// String renders "(3,1)".
func (s SimplexType) String() string {
	return fmt.Sprintf("(%d,%d)", s.Lower, s.Upper)
}

// InvalidCell pairs an unclassifiable cell with the reason.
type InvalidCell struct {
	Cell *Cell
	Err  error
}

// Classification is one full pass of the cell classifier.
//
// Every finite top cell is in exactly one bucket of ByType or in Invalid.
type Classification struct {
	ByType  map[SimplexType][]*Cell
	Invalid []InvalidCell
}

// Count returns the number of cells of type t.
func (c Classification) Count(t SimplexType) int { return len(c.ByType[t]) }

// Total returns the number of classified cells, valid or not.
func (c Classification) Total() int {
	n := len(c.Invalid)
	for _, cells := range c.ByType {
		n += len(cells)
	}

	return n
}

// VertexDiagnostic reports how one vertex compares with the embedding.
type VertexDiagnostic struct {
	Vertex            *Vertex
	SquaredRadius     float64
	ExpectedRadius    float64
	ExpectedTimevalue int
	OK                bool
}
