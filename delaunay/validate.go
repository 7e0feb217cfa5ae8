package delaunay

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cdt/geometry"
)

// IsValid implements Complex.
//
// A triangulation is valid when every finite cell is positively oriented and
// no vertex of a neighboring cell lies strictly inside a cell's circumsphere
// (ghost cells: strictly beyond its hull facet). The check is local, which
// suffices for a triangulation of a convex hull.
//
// Complexity: O(C·k) predicate evaluations.
func (tr *Triangulation) IsValid() bool {
	if !tr.IsTDSValid() {
		return false
	}
	for id, c := range tr.cells {
		if c.dead {
			continue
		}
		if indexOf(c.v, infinite) < 0 &&
			geometry.Orientation(tr.coords(c.v, -1, nil), tr.eps) != geometry.Positive {
			klog.V(3).Infof("delaunay: cell %v is not positively oriented", c.v)
			return false
		}
		for i, nb := range c.n {
			opp := tr.opposite(nb, id)
			if opp == infinite {
				continue
			}
			if tr.conflict(id, tr.local[opp]) {
				klog.V(3).Infof("delaunay: vertex %d violates cell %v (facet %d)", opp, c.v, i)
				return false
			}
		}
	}

	return true
}

// IsTDSValid implements Complex.
//
// Checks performed on every live cell:
//   - Dimension()+1 distinct vertices, at most one of them infinite.
//   - Every neighbor is live and links back exactly once through the facet
//     it shares with the cell.
//
// Finally every vertex must belong to some cell.
func (tr *Triangulation) IsTDSValid() bool {
	if tr.dim < 1 {
		return len(tr.cells) == 0
	}
	used := make([]bool, len(tr.points))
	for id, c := range tr.cells {
		if c.dead {
			continue
		}
		if len(c.v) != tr.dim+1 || len(c.n) != len(c.v) {
			return false
		}
		seen := make(map[int]bool, len(c.v))
		for _, v := range c.v {
			if seen[v] || v < infinite || v >= len(tr.points) {
				return false
			}
			seen[v] = true
			if v != infinite {
				used[v] = true
			}
		}
		for i, nb := range c.n {
			if nb < 0 || nb >= len(tr.cells) || tr.cells[nb].dead {
				return false
			}
			back := 0
			at := -1
			for j, x := range tr.cells[nb].n {
				if x == id {
					back++
					at = j
				}
			}
			if back != 1 || keyWithout(c.v, i) != keyWithout(tr.cells[nb].v, at) {
				return false
			}
		}
	}
	for _, u := range used {
		if !u {
			return false
		}
	}

	return true
}

// opposite returns the vertex of cell nb that is not shared with cell id.
func (tr *Triangulation) opposite(nb, id int) int {
	for j, x := range tr.cells[nb].n {
		if x == id {
			return tr.cells[nb].v[j]
		}
	}

	return infinite
}
