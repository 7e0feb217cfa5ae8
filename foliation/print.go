// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// print.go — human-readable dumps for diagnostics.

package foliation

import (
	"fmt"
	"io"
	"strings"
)

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// PrintVertices writes one line per vertex: point and timevalue.
func (ft *FoliatedTriangulation) PrintVertices(w io.Writer) error {
	p := &printer{w: w}
	for _, v := range ft.Vertices() {
		p.printf("Vertex %d: %s has timevalue %d\n", v.ID, v.Point, v.Timevalue)
	}

	return p.err
}

// PrintVertexDiagnostics writes the radius check of every vertex.
func (ft *FoliatedTriangulation) PrintVertexDiagnostics(w io.Writer) error {
	p := &printer{w: w}
	for _, d := range ft.VertexDiagnostics() {
		verdict := "ok"
		if !d.OK {
			verdict = "MISMATCH"
		}
		p.printf("Vertex %s with timevalue %d has squared radius %g, squared expected radius %g, expected timevalue %d: %s\n",
			d.Vertex.Point, d.Vertex.Timevalue, d.SquaredRadius, d.ExpectedRadius*d.ExpectedRadius,
			d.ExpectedTimevalue, verdict)
	}

	return p.err
}

// PrintCells writes each cell's type followed by its vertices.
func (ft *FoliatedTriangulation) PrintCells(w io.Writer) error {
	p := &printer{w: w}
	for _, c := range ft.Cells() {
		label := "invalid"
		if st, err := ClassifyCell(c); err == nil {
			label = st.String()
		}
		p.printf("Cell %d %s:\n", c.ID, label)
		for _, v := range c.Vertices {
			p.printf("  Vertex %d: %s timevalue %d\n", v.ID, v.Point, v.Timevalue)
		}
	}

	return p.err
}

// PrintEdges writes each edge with its type.
func (ft *FoliatedTriangulation) PrintEdges(w io.Writer) error {
	p := &printer{w: w}
	for _, e := range ft.Edges() {
		p.printf("Edge %d-%d %s: %s t=%d -> %s t=%d\n",
			e.U.ID, e.V.ID, e.Type(), e.U.Point, e.U.Timevalue, e.V.Point, e.V.Timevalue)
	}

	return p.err
}

// Summary renders the element and type counts on one line.
func (ft *FoliatedTriangulation) Summary() string {
	var b strings.Builder
	cls := ft.Classify()
	fmt.Fprintf(&b, "dim=%d vertices=%d edges=%d (TL=%d SL=%d) facets=%d cells=%d",
		ft.Dimension(), ft.NumberOfVertices(), ft.NumberOfFiniteEdges(), ft.N1TL(), ft.N1SL(),
		ft.NumberOfFiniteFacets(), ft.NumberOfFiniteCells())
	for _, st := range SimplexTypes(ft.ambientDimension()) {
		fmt.Fprintf(&b, " %s=%d", st, cls.Count(st))
	}
	if len(cls.Invalid) > 0 {
		fmt.Fprintf(&b, " invalid=%d", len(cls.Invalid))
	}

	return b.String()
}

func (ft *FoliatedTriangulation) ambientDimension() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.ambient()
}
