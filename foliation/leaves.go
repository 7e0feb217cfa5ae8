// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// leaves.go — per-slice views, ordered by timevalue.

package foliation

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Leaf is one time-slice and the vertices on it.
type Leaf struct {
	Timevalue int
	Vertices  []*Vertex
}

// SliceVolume is the number of spacelike facets (facets with all vertices on
// one slice) lying on a slice.
type SliceVolume struct {
	Timevalue int
	Facets    int
}

// Leaves groups the vertices by timevalue, in increasing timevalue order.
//
// Complexity: O(n log L) for L leaves.
func (ft *FoliatedTriangulation) Leaves() []Leaf {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	m := ft.leafMap()
	out := make([]Leaf, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		out = append(out, Leaf{Timevalue: it.Key().(int), Vertices: it.Value().([]*Vertex)})
	}

	return out
}

// MinTimevalue returns the smallest timevalue, 0 without vertices.
func (ft *FoliatedTriangulation) MinTimevalue() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	k, _ := ft.leafMap().Min()
	if k == nil {
		return 0
	}

	return k.(int)
}

// MaxTimevalue returns the largest timevalue, 0 without vertices.
func (ft *FoliatedTriangulation) MaxTimevalue() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	k, _ := ft.leafMap().Max()
	if k == nil {
		return 0
	}

	return k.(int)
}

// VolumePerTimeslice counts spacelike facets per slice, in increasing
// timevalue order. Slices without spacelike facets are omitted.
func (ft *FoliatedTriangulation) VolumePerTimeslice() []SliceVolume {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.dimension() < ft.ambient()-1 {
		return nil
	}
	m := treemap.NewWith(utils.IntComparator)
	for _, f := range ft.faces(ft.ambient() - 1) {
		t := ft.timevalues[f[0]]
		spacelike := true
		for _, v := range f[1:] {
			if ft.timevalues[v] != t {
				spacelike = false
				break
			}
		}
		if !spacelike {
			continue
		}
		n, _ := m.Get(t)
		if n == nil {
			n = 0
		}
		m.Put(t, n.(int)+1)
	}

	out := make([]SliceVolume, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		out = append(out, SliceVolume{Timevalue: it.Key().(int), Facets: it.Value().(int)})
	}

	return out
}

// leafMap builds timevalue → []*Vertex; caller holds ft.mu.
func (ft *FoliatedTriangulation) leafMap() *treemap.Map {
	m := treemap.NewWith(utils.IntComparator)
	for _, v := range ft.vertices() {
		var leaf []*Vertex
		if got, ok := m.Get(v.Timevalue); ok {
			leaf = got.([]*Vertex)
		}
		m.Put(v.Timevalue, append(leaf, v))
	}

	return m
}
