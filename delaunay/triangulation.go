package delaunay

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cdt/geometry"
)

// infinite is the id of the vertex at infinity shared by all ghost cells.
const infinite = -1

// noVertex pads face keys and marks "skip nothing" in glue.
const noVertex = -2

// cell is a k-simplex of the local triangulation. n[i] is the neighbor across
// the facet opposite v[i]. Finite cells are positively oriented; a ghost cell
// is oriented so that substituting a point beyond its hull facet for the
// infinite vertex yields a positive orientation.
type cell struct {
	v    []int
	n    []int
	dead bool
}

// Triangulation is the complex produced by Incremental.Build.
// It is immutable once returned, so concurrent reads are safe.
type Triangulation struct {
	ambient int
	eps     float64
	dim     int

	points  []geometry.Point // vertex id → input coordinates
	sources []int            // vertex id → input index
	local   [][]float64      // vertex id → coordinates in the affine frame
	frame   *geometry.Frame

	cells []cell
	free  []int
}

var _ Complex = (*Triangulation)(nil)

// Build triangulates points and returns the concrete complex.
//
// Implementation:
//   - Stage 1: validate dimension/finiteness and drop exact duplicates.
//   - Stage 2: compute the affine frame and project every vertex into it.
//   - Stage 3: seed with an affinely independent simplex closed by ghost cells.
//   - Stage 4: insert remaining vertices in input order (Bowyer–Watson).
//
// Errors:
//   - ErrUnsupportedDimension, ErrEmptyInput, ErrDimensionMismatch,
//     ErrInvalidPoint, ErrInsertionFailed (all wrapped with context).
//
// Complexity:
//   - Time O(n·C) where C is the number of cells (conflict seeding scans cells).
func (k *Incremental) Build(points []geometry.Point) (*Triangulation, error) {
	if k.ambient < 1 || k.ambient > MaxDimension {
		return nil, errors.Wrapf(ErrUnsupportedDimension, "ambient dimension %d not in [1,%d]", k.ambient, MaxDimension)
	}
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	tr := &Triangulation{ambient: k.ambient, eps: k.cfg.eps, dim: -1}
	seen := make(map[string]int, len(points))
	for i, p := range points {
		if p.Dim() != k.ambient {
			return nil, errors.Wrapf(ErrDimensionMismatch, "point %d has dimension %d, want %d", i, p.Dim(), k.ambient)
		}
		if !p.IsFinite() {
			return nil, errors.Wrapf(ErrInvalidPoint, "point %d %v", i, p)
		}
		key := pointKey(p)
		if v, dup := seen[key]; dup {
			klog.Warningf("delaunay: point %d %v duplicates point %d, skipped", i, p, tr.sources[v])
			continue
		}
		seen[key] = len(tr.points)
		tr.points = append(tr.points, p.Clone())
		tr.sources = append(tr.sources, i)
	}

	frame, err := geometry.NewFrame(tr.points, tr.eps)
	if err != nil {
		return nil, errors.Wrap(err, "delaunay: affine frame")
	}
	tr.frame = frame
	tr.dim = frame.Dim()
	tr.local = make([][]float64, len(tr.points))
	for v, p := range tr.points {
		tr.local[v] = frame.Project(p)
	}
	if tr.dim == 0 {
		return tr, nil
	}

	seed := append([]int{0}, frame.Pivots()...)
	if err = tr.initSimplex(seed); err != nil {
		return nil, err
	}
	inSeed := make(map[int]bool, len(seed))
	for _, v := range seed {
		inSeed[v] = true
	}
	for v := range tr.points {
		if inSeed[v] {
			continue
		}
		if err = tr.insert(v); err != nil {
			return nil, errors.Wrapf(err, "vertex %d (input %d) %v", v, tr.sources[v], tr.points[v])
		}
	}
	klog.V(2).Infof("delaunay: %d vertices triangulated in dimension %d (%d live cells)",
		len(tr.points), tr.dim, len(tr.cells)-len(tr.free))

	return tr, nil
}

// pointKey encodes exact coordinates; -0 and +0 share a key, matching Point.Equal.
func pointKey(p geometry.Point) string {
	buf := make([]byte, 8*len(p))
	for i, x := range p {
		if x == 0 {
			x = 0
		}
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}

	return string(buf)
}

// initSimplex creates the positively oriented seed cell and the dim+1 ghost
// cells closing its facets.
func (tr *Triangulation) initSimplex(seed []int) error {
	vs := append([]int(nil), seed...)
	switch geometry.Orientation(tr.coords(vs, -1, nil), tr.eps) {
	case geometry.Negative:
		vs[0], vs[1] = vs[1], vs[0]
	case geometry.Zero:
		return errors.Wrap(ErrInsertionFailed, "seed simplex is flat")
	}

	ids := []int{tr.newCell(vs, nil)}
	for i := range vs {
		gv := append([]int(nil), vs...)
		gv[i] = infinite
		// Flip so that a point beyond facet i orients positively.
		gv[0], gv[1] = gv[1], gv[0]
		ids = append(ids, tr.newCell(gv, nil))
	}
	tr.glue(ids, noVertex)

	return nil
}

// insert adds vertex v by carving out its conflict region and starring the
// region's boundary from v.
func (tr *Triangulation) insert(v int) error {
	p := tr.local[v]
	seed := -1
	for id := range tr.cells {
		if !tr.cells[id].dead && tr.conflict(id, p) {
			seed = id
			break
		}
	}
	if seed < 0 {
		return ErrInsertionFailed
	}

	// Breadth-first growth of the conflict region; tested caches every verdict.
	tested := map[int]bool{seed: true}
	queue := []int{seed}
	var cavity []int
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		cavity = append(cavity, c)
		for _, nb := range tr.cells[c].n {
			if _, done := tested[nb]; done {
				continue
			}
			in := tr.conflict(nb, p)
			tested[nb] = in
			if in {
				queue = append(queue, nb)
			}
		}
	}

	var created []int
	for _, c := range cavity {
		old := tr.cells[c]
		for i, nb := range old.n {
			if tested[nb] {
				continue
			}
			nv := append([]int(nil), old.v...)
			nv[i] = v
			nn := make([]int, len(nv))
			for j := range nn {
				nn[j] = noVertex
			}
			nn[i] = nb
			id := tr.newCell(nv, nn)
			back := tr.cells[nb].n
			for j := range back {
				if back[j] == c {
					back[j] = id
					break
				}
			}
			created = append(created, id)
		}
	}
	for _, c := range cavity {
		tr.cells[c].dead = true
		tr.free = append(tr.free, c)
	}
	tr.glue(created, v)
	klog.V(4).Infof("delaunay: vertex %d removed %d cells, created %d", v, len(cavity), len(created))

	return nil
}

// conflict reports whether point p (frame coordinates) violates cell id:
// strictly inside the circumsphere of a finite cell, or beyond the hull facet
// of a ghost cell (on its hyperplane: strictly inside the facet's circumsphere).
func (tr *Triangulation) conflict(id int, p []float64) bool {
	c := tr.cells[id]
	at := indexOf(c.v, infinite)
	if at < 0 {
		return geometry.InSphere(tr.coords(c.v, -1, nil), p, tr.eps) == geometry.Positive
	}
	switch geometry.Orientation(tr.coords(c.v, at, p), tr.eps) {
	case geometry.Positive:
		return true
	case geometry.Negative:
		return false
	}
	facet := make([][]float64, 0, len(c.v)-1)
	for i, x := range c.v {
		if i != at {
			facet = append(facet, tr.local[x])
		}
	}

	return geometry.InCircumsphere(facet, p, tr.eps) == geometry.Positive
}

// coords gathers frame coordinates of vs, substituting sub at index at.
func (tr *Triangulation) coords(vs []int, at int, sub []float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, x := range vs {
		if i == at {
			out[i] = sub
			continue
		}
		out[i] = tr.local[x]
	}

	return out
}

func (tr *Triangulation) newCell(v, n []int) int {
	if n == nil {
		n = make([]int, len(v))
		for i := range n {
			n[i] = noVertex
		}
	}
	c := cell{v: v, n: n}
	if last := len(tr.free) - 1; last >= 0 {
		id := tr.free[last]
		tr.free = tr.free[:last]
		tr.cells[id] = c
		return id
	}
	tr.cells = append(tr.cells, c)

	return len(tr.cells) - 1
}

// glue links the facets of ids pairwise by vertex set, skipping facets opposite
// vertex skip (already linked to the outside of a cavity).
func (tr *Triangulation) glue(ids []int, skip int) {
	type half struct{ cell, idx int }
	open := make(map[faceKey]half, len(ids)*len(tr.cells[ids[0]].v))
	for _, id := range ids {
		c := tr.cells[id]
		for i := range c.v {
			if c.v[i] == skip {
				continue
			}
			key := keyWithout(c.v, i)
			if other, ok := open[key]; ok {
				c.n[i] = other.cell
				tr.cells[other.cell].n[other.idx] = id
				delete(open, key)
				continue
			}
			open[key] = half{cell: id, idx: i}
		}
	}
}

// faceKey is a sorted, padded vertex tuple usable as a map key.
type faceKey [MaxDimension + 1]int

func keyOf(vs []int) faceKey {
	var k faceKey
	for i := range k {
		k[i] = noVertex
	}
	n := copy(k[:], vs)
	// insertion sort: at most MaxDimension+1 entries
	for i := 1; i < n; i++ {
		for j := i; j > 0 && k[j] < k[j-1]; j-- {
			k[j], k[j-1] = k[j-1], k[j]
		}
	}

	return k
}

func keyWithout(vs []int, skip int) faceKey {
	rest := make([]int, 0, len(vs)-1)
	for i, x := range vs {
		if i != skip {
			rest = append(rest, x)
		}
	}

	return keyOf(rest)
}

func indexOf(vs []int, x int) int {
	for i, y := range vs {
		if y == x {
			return i
		}
	}

	return -1
}
