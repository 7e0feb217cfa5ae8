package delaunay

import (
	"sort"

	"github.com/katalvlaran/cdt/geometry"
)

// AmbientDimension implements Complex.
func (tr *Triangulation) AmbientDimension() int { return tr.ambient }

// Dimension implements Complex.
func (tr *Triangulation) Dimension() int { return tr.dim }

// NumberOfVertices implements Complex.
func (tr *Triangulation) NumberOfVertices() int { return len(tr.points) }

// Point implements Complex. The returned point is a copy.
func (tr *Triangulation) Point(v int) geometry.Point { return tr.points[v].Clone() }

// Source implements Complex.
func (tr *Triangulation) Source(v int) int { return tr.sources[v] }

// FiniteFaces implements Complex.
//
// Implementation:
//   - j == 0 lists every vertex.
//   - 0 < j ≤ Dimension() enumerates the (j+1)-subsets of every finite
//     top-dimensional cell and deduplicates them.
//   - Any other j yields nil.
//
// Complexity: O(C·binom(k+1, j+1)) for C cells of dimension k.
func (tr *Triangulation) FiniteFaces(j int) []Face {
	if j < 0 || j > tr.dim {
		return nil
	}
	if j == 0 {
		out := make([]Face, len(tr.points))
		for v := range out {
			out[v] = Face{v}
		}
		return out
	}

	seen := make(map[faceKey]struct{})
	var out []Face
	for _, c := range tr.cells {
		if c.dead || indexOf(c.v, infinite) >= 0 {
			continue
		}
		eachSubset(c.v, j+1, func(sub []int) {
			k := keyOf(sub)
			if _, dup := seen[k]; dup {
				return
			}
			seen[k] = struct{}{}
			f := Face(append([]int(nil), k[:len(sub)]...))
			out = append(out, f)
		})
	}
	sortFaces(out)

	return out
}

// FiniteCells implements Complex.
func (tr *Triangulation) FiniteCells() []Face {
	if tr.dim < tr.ambient {
		return nil
	}

	return tr.FiniteFaces(tr.ambient)
}

// eachSubset calls fn with every size-r subset of vs, preserving order.
// fn must not retain its argument.
func eachSubset(vs []int, r int, fn func([]int)) {
	buf := make([]int, 0, r)
	var rec func(start int)
	rec = func(start int) {
		if len(buf) == r {
			fn(buf)
			return
		}
		for i := start; i <= len(vs)-(r-len(buf)); i++ {
			buf = append(buf, vs[i])
			rec(i + 1)
			buf = buf[:len(buf)-1]
		}
	}
	rec(0)
}

func sortFaces(fs []Face) {
	sort.Slice(fs, func(a, b int) bool {
		x, y := fs[a], fs[b]
		for i := 0; i < len(x) && i < len(y); i++ {
			if x[i] != y[i] {
				return x[i] < y[i]
			}
		}
		return len(x) < len(y)
	})
}
