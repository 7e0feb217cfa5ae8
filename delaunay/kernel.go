package delaunay

import (
	"github.com/katalvlaran/cdt/geometry"
)

// MaxDimension is the largest ambient dimension the shipped kernel supports.
const MaxDimension = 4

// Face is a finite face given by its vertex ids in ascending order.
// A j-face has j+1 vertices.
type Face []int

// Kernel builds Delaunay complexes. It is the only geometric capability the
// foliation layer depends on, so tests may substitute a fake.
type Kernel interface {
	// AmbientDimension is the dimension of the points this kernel accepts.
	AmbientDimension() int

	// Triangulate inserts all points and returns the resulting complex.
	Triangulate(points []geometry.Point) (Complex, error)

	// SquaredDistance returns |p - q|².
	SquaredDistance(p, q geometry.Point) float64
}

// Complex is an immutable Delaunay triangulation as seen from outside the
// kernel. Only finite elements are ever reported.
type Complex interface {
	// AmbientDimension is the dimension of the embedding space.
	AmbientDimension() int

	// Dimension is the dimension of the triangulation: -1 when empty, otherwise
	// the affine dimension of the vertex set.
	Dimension() int

	// NumberOfVertices counts vertices (duplicates excluded).
	NumberOfVertices() int

	// Point returns the coordinates of vertex v.
	Point(v int) geometry.Point

	// Source returns the index in the Triangulate input that produced vertex v.
	Source(v int) int

	// FiniteFaces lists every finite j-face, sorted lexicographically.
	FiniteFaces(j int) []Face

	// FiniteCells lists the finite faces of dimension AmbientDimension(); it is
	// empty while Dimension() < AmbientDimension().
	FiniteCells() []Face

	// IsValid reports the Delaunay property and positive orientation of cells.
	IsValid() bool

	// IsTDSValid reports the combinatorial validity of the cell structure.
	IsTDSValid() bool
}

// Incremental is the Bowyer–Watson kernel returned by NewKernel.
type Incremental struct {
	ambient int
	cfg     config
}

var _ Kernel = (*Incremental)(nil)

// NewKernel returns a kernel for points of the given ambient dimension.
// Invalid dimensions are reported by Triangulate (ErrUnsupportedDimension).
func NewKernel(ambient int, opts ...Option) *Incremental {
	return &Incremental{ambient: ambient, cfg: newConfig(opts...)}
}

// AmbientDimension implements Kernel.
func (k *Incremental) AmbientDimension() int { return k.ambient }

// SquaredDistance implements Kernel.
func (k *Incremental) SquaredDistance(p, q geometry.Point) float64 {
	return geometry.SquaredDistance(p, q)
}

// Triangulate implements Kernel; see Build.
func (k *Incremental) Triangulate(points []geometry.Point) (Complex, error) {
	tr, err := k.Build(points)
	if err != nil {
		return nil, err
	}

	return tr, nil
}
