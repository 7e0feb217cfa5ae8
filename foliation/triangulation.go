// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// triangulation.go — FoliatedTriangulation: construction and pass-through
// queries to the geometric kernel.

package foliation

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cdt/delaunay"
	"github.com/katalvlaran/cdt/geometry"
)

// FoliatedTriangulation owns a Delaunay complex and the timevalue of each of
// its vertices. Vertices, cells, edges and every classification are rebuilt
// from those two on each query; returned values are fresh copies.
//
// The zero value is an uninitialized triangulation: it reports Dimension -1,
// zero counts and no elements.
type FoliatedTriangulation struct {
	mu sync.RWMutex

	cfg        config
	complex    delaunay.Complex
	timevalues []int // vertex id → timevalue
}

// constructionError wraps the cause of a failed New so that errors.Is matches
// both ErrConstruction and the cause.
type constructionError struct{ cause error }

func (e *constructionError) Error() string {
	return fmt.Sprintf("%v: %v", ErrConstruction, e.cause)
}

func (e *constructionError) Unwrap() error { return e.cause }

func (e *constructionError) Is(target error) bool { return target == ErrConstruction }

func construction(cause error, format string, args ...interface{}) error {
	return &constructionError{cause: errors.WithMessagef(cause, format, args...)}
}

// New builds a foliated triangulation from causal vertices.
//
// Implementation:
//   - Stage 1: validate timevalues (≥ 1, within WithTimevalueBounds).
//   - Stage 2: triangulate the points with the configured kernel.
//   - Stage 3: attach the timevalue of each vertex's source causal vertex.
//
// Exact duplicate points are dropped by the kernel; the first occurrence
// (and its timevalue) is kept. Foliation defects do not fail New; check them
// with CheckAllVertices and IsFoliated.
//
// Errors (all match ErrConstruction):
//   - ErrInvalidTimevalue for a timevalue out of range.
//   - the kernel's error (delaunay.ErrEmptyInput, ...) when triangulation fails.
//   - a dimension error under WithFullDimension.
func New(causal []CausalVertex, opts ...Option) (*FoliatedTriangulation, error) {
	cfg := newConfig(opts...)
	points := make([]geometry.Point, len(causal))
	for i, cv := range causal {
		if cv.Timevalue < cfg.lo || (cfg.hi > 0 && cv.Timevalue > cfg.hi) {
			return nil, construction(ErrInvalidTimevalue, "causal vertex %d %v has timevalue %d", i, cv.Point, cv.Timevalue)
		}
		points[i] = cv.Point
	}

	cx, err := cfg.kernel.Triangulate(points)
	if err != nil {
		return nil, construction(err, "triangulating %d causal vertices", len(causal))
	}
	ambient := cfg.kernel.AmbientDimension()
	if cfg.full && cx.Dimension() < ambient {
		return nil, construction(errors.Errorf("complex has dimension %d", cx.Dimension()),
			"full dimension %d required", ambient)
	}

	ft := &FoliatedTriangulation{cfg: cfg, complex: cx}
	ft.timevalues = make([]int, cx.NumberOfVertices())
	for v := range ft.timevalues {
		ft.timevalues[v] = causal[cx.Source(v)].Timevalue
	}
	klog.V(1).Infof("foliation: %d vertices, dimension %d, %d cells",
		cx.NumberOfVertices(), cx.Dimension(), len(cx.FiniteCells()))

	return ft, nil
}

// IsInitialized reports whether a complex has been built.
func (ft *FoliatedTriangulation) IsInitialized() bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.complex != nil
}

// Dimension returns the dimension of the complex, -1 when uninitialized.
func (ft *FoliatedTriangulation) Dimension() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.dimension()
}

// NumberOfVertices counts vertices.
func (ft *FoliatedTriangulation) NumberOfVertices() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return len(ft.timevalues)
}

// NumberOfFiniteEdges counts finite 1-faces.
func (ft *FoliatedTriangulation) NumberOfFiniteEdges() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return len(ft.faces(1))
}

// NumberOfFiniteFacets counts finite faces of dimension d-1 (triangles for d = 3).
func (ft *FoliatedTriangulation) NumberOfFiniteFacets() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return len(ft.faces(ft.ambient() - 1))
}

// NumberOfFiniteCells counts finite faces of dimension d (tetrahedra for d = 3).
func (ft *FoliatedTriangulation) NumberOfFiniteCells() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return len(ft.faces(ft.ambient()))
}

// IsDelaunay reports the kernel's Delaunay validity.
func (ft *FoliatedTriangulation) IsDelaunay() bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.complex != nil && ft.complex.IsValid()
}

// IsTDSValid reports the kernel's combinatorial validity.
func (ft *FoliatedTriangulation) IsTDSValid() bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.complex != nil && ft.complex.IsTDSValid()
}

// SquaredDistance returns |p - q|² as computed by the kernel.
func (ft *FoliatedTriangulation) SquaredDistance(p, q geometry.Point) float64 {
	if ft.cfg.kernel == nil {
		return geometry.SquaredDistance(p, q)
	}

	return ft.cfg.kernel.SquaredDistance(p, q)
}

// Vertices returns every vertex ordered by ID.
func (ft *FoliatedTriangulation) Vertices() []*Vertex {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.vertices()
}

// Cells returns every finite top-dimensional cell.
func (ft *FoliatedTriangulation) Cells() []*Cell {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.cells()
}

// IsVertex reports whether v is a vertex of this triangulation: its ID is in
// range and its point matches.
func (ft *FoliatedTriangulation) IsVertex(v *Vertex) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.isVertex(v)
}

// FixTimevalues relabels every vertex whose timevalue disagrees with its
// position and returns the number relabeled.
func (ft *FoliatedTriangulation) FixTimevalues() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if ft.complex == nil {
		return 0
	}
	emb := ft.Embedding()
	fixed := 0
	for v := range ft.timevalues {
		want := emb.ExpectedTimevalue(ft.complex.Point(v))
		if want < 1 {
			klog.Warningf("foliation: vertex %d lies inside slice 1, left at timevalue %d", v, ft.timevalues[v])
			continue
		}
		if want != ft.timevalues[v] {
			klog.V(2).Infof("foliation: vertex %d timevalue %d -> %d", v, ft.timevalues[v], want)
			ft.timevalues[v] = want
			fixed++
		}
	}

	return fixed
}

// The helpers below expect ft.mu to be held.

func (ft *FoliatedTriangulation) dimension() int {
	if ft.complex == nil {
		return -1
	}

	return ft.complex.Dimension()
}

func (ft *FoliatedTriangulation) ambient() int {
	if ft.complex == nil {
		return DefaultDimension
	}

	return ft.complex.AmbientDimension()
}

func (ft *FoliatedTriangulation) faces(j int) []delaunay.Face {
	if ft.complex == nil {
		return nil
	}

	return ft.complex.FiniteFaces(j)
}

func (ft *FoliatedTriangulation) vertices() []*Vertex {
	out := make([]*Vertex, len(ft.timevalues))
	for v, t := range ft.timevalues {
		out[v] = &Vertex{ID: v, Point: ft.complex.Point(v), Timevalue: t}
	}

	return out
}

func (ft *FoliatedTriangulation) cells() []*Cell {
	vs := ft.vertices()
	faces := ft.faces(ft.ambient())
	out := make([]*Cell, len(faces))
	for i, f := range faces {
		c := &Cell{ID: i, Vertices: make([]*Vertex, len(f))}
		for j, v := range f {
			c.Vertices[j] = vs[v]
		}
		out[i] = c
	}

	return out
}

func (ft *FoliatedTriangulation) isVertex(v *Vertex) bool {
	if v == nil || v.ID < 0 || v.ID >= len(ft.timevalues) {
		return false
	}

	return ft.complex.Point(v.ID).Equal(v.Point)
}
