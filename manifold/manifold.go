// Package manifold is a read-only façade over a foliated triangulation that
// speaks in simplex counts: N0 vertices, N1 edges, N2 facets, N3 cells, and
// the (3,1)/(2,2)/(1,3) split of N3. Simulation code uses it without touching
// foliation internals.
package manifold

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cdt/foliation"
)

// ErrNilTriangulation indicates FromTriangulation was given nil.
var ErrNilTriangulation = errors.New("manifold: nil triangulation")

// Manifold wraps exactly one FoliatedTriangulation and holds no other state.
type Manifold struct {
	ft *foliation.FoliatedTriangulation
}

// New builds the underlying triangulation; see foliation.New.
func New(causal []foliation.CausalVertex, opts ...foliation.Option) (*Manifold, error) {
	ft, err := foliation.New(causal, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "manifold")
	}

	return &Manifold{ft: ft}, nil
}

// FromTriangulation wraps an existing triangulation.
func FromTriangulation(ft *foliation.FoliatedTriangulation) (*Manifold, error) {
	if ft == nil {
		return nil, ErrNilTriangulation
	}

	return &Manifold{ft: ft}, nil
}

// Triangulation returns the wrapped triangulation.
func (m *Manifold) Triangulation() *foliation.FoliatedTriangulation { return m.ft }

// N0 counts vertices.
func (m *Manifold) N0() int { return m.ft.NumberOfVertices() }

// N1 counts finite edges.
func (m *Manifold) N1() int { return m.ft.NumberOfFiniteEdges() }

// N2 counts finite facets.
func (m *Manifold) N2() int { return m.ft.NumberOfFiniteFacets() }

// N3 counts finite cells.
func (m *Manifold) N3() int { return m.ft.NumberOfFiniteCells() }

// N31 counts (3,1) cells.
func (m *Manifold) N31() int { return len(m.ft.ThreeOne()) }

// N22 counts (2,2) cells.
func (m *Manifold) N22() int { return len(m.ft.TwoTwo()) }

// N13 counts (1,3) cells.
func (m *Manifold) N13() int { return len(m.ft.OneThree()) }

// N31N13 counts cells with a single vertex on one of their slices.
func (m *Manifold) N31N13() int { return m.N31() + m.N13() }

// N1TL counts timelike edges.
func (m *Manifold) N1TL() int { return m.ft.N1TL() }

// N1SL counts spacelike edges.
func (m *Manifold) N1SL() int { return m.ft.N1SL() }

// MinTime returns the first occupied slice.
func (m *Manifold) MinTime() int { return m.ft.MinTimevalue() }

// MaxTime returns the last occupied slice.
func (m *Manifold) MaxTime() int { return m.ft.MaxTimevalue() }

// Dimensionality is the dimension of the complex: 0 for one vertex, up to
// the ambient dimension.
func (m *Manifold) Dimensionality() int { return m.ft.Dimension() }

// IsValid reports Delaunay and combinatorial validity. Foliation validity is
// deliberately excluded; see IsCorrect.
func (m *Manifold) IsValid() bool { return m.ft.IsDelaunay() && m.ft.IsTDSValid() }

// IsVertex reports whether v belongs to the manifold.
func (m *Manifold) IsVertex(v *foliation.Vertex) bool { return m.ft.IsVertex(v) }

// Vertices returns every vertex ordered by ID.
func (m *Manifold) Vertices() []*foliation.Vertex { return m.ft.Vertices() }

// EulerCharacteristic returns N0 - N1 + N2 - N3 over the finite faces.
// A triangulated ball gives 1.
func (m *Manifold) EulerCharacteristic() int {
	return m.N0() - m.N1() + m.N2() - m.N3()
}

// IsCorrect is the full consistency check: valid, every vertex and cell
// foliated, the cell types add up to N3 and the edge types to N1.
func (m *Manifold) IsCorrect() bool {
	if !m.IsValid() || !m.ft.CheckAllVertices() {
		return false
	}
	cls := m.ft.Classify()
	if len(cls.Invalid) > 0 || cls.Total() != m.N3() {
		return false
	}

	return m.N1TL()+m.N1SL() == m.N1()
}

// PrintVertices writes every vertex with its timevalue.
func (m *Manifold) PrintVertices(w io.Writer) error { return m.ft.PrintVertices(w) }

// PrintCells writes every cell with its type and vertices.
func (m *Manifold) PrintCells(w io.Writer) error { return m.ft.PrintCells(w) }

// PrintDetails writes the simplex counts.
func (m *Manifold) PrintDetails(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Manifold has %d vertices and %d edges and %d faces and %d simplices.\n",
		m.N0(), m.N1(), m.N2(), m.N3())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "There are %d (3,1), %d (2,2) and %d (1,3) simplices; %d timelike and %d spacelike edges.\n",
		m.N31(), m.N22(), m.N13(), m.N1TL(), m.N1SL())

	return err
}

// PrintVolumePerTimeslice writes the spacelike facet count of each slice.
func (m *Manifold) PrintVolumePerTimeslice(w io.Writer) error {
	for _, sv := range m.ft.VolumePerTimeslice() {
		if _, err := fmt.Fprintf(w, "Timeslice %d has %d spacelike faces.\n", sv.Timevalue, sv.Facets); err != nil {
			return err
		}
	}

	return nil
}
