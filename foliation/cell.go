// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// cell.go — the cell classifier.

package foliation

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// ClassifyTimevalues derives the SimplexType of a cell from its vertices'
// timevalues.
//
// Errors (all match ErrInvalidFoliation):
//   - ErrDegenerateCell when every timevalue is equal (or ts is empty).
//   - ErrTooManySlices when more than two distinct timevalues occur.
//   - ErrNonAdjacentSlices when the two timevalues differ by more than 1.
//
// Complexity: O(k log k) for k = len(ts).
func ClassifyTimevalues(ts []int) (SimplexType, error) {
	distinct := make([]int, 0, 2)
	seen := make(map[int]struct{}, 2)
	for _, t := range ts {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			distinct = append(distinct, t)
		}
	}
	sort.Ints(distinct)

	switch {
	case len(distinct) < 2:
		return SimplexType{}, errors.WithMessagef(ErrDegenerateCell, "timevalues %v", ts)
	case len(distinct) > 2:
		return SimplexType{}, errors.WithMessagef(ErrTooManySlices, "timevalues %v", ts)
	case distinct[1]-distinct[0] != 1:
		return SimplexType{}, errors.WithMessagef(ErrNonAdjacentSlices, "timevalues %v", ts)
	}

	var st SimplexType
	for _, t := range ts {
		if t == distinct[0] {
			st.Lower++
		} else {
			st.Upper++
		}
	}

	return st, nil
}

// ClassifyCell classifies c; see ClassifyTimevalues.
func ClassifyCell(c *Cell) (SimplexType, error) {
	return ClassifyTimevalues(c.Timevalues())
}

// Classify sorts every finite top cell into its SimplexType bucket, or into
// Invalid when it cannot be classified. ByType always holds a (possibly empty)
// entry for each valid type of the ambient dimension. Recomputed on each call.
//
// Complexity: O(C·d).
func (ft *FoliatedTriangulation) Classify() Classification {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	return ft.classify()
}

func (ft *FoliatedTriangulation) classify() Classification {
	res := Classification{ByType: make(map[SimplexType][]*Cell)}
	for _, st := range SimplexTypes(ft.ambient()) {
		res.ByType[st] = []*Cell{}
	}
	for _, c := range ft.cells() {
		st, err := ClassifyCell(c)
		if err != nil {
			klog.V(2).Infof("foliation: cell %d: %v", c.ID, err)
			res.Invalid = append(res.Invalid, InvalidCell{Cell: c, Err: err})
			continue
		}
		res.ByType[st] = append(res.ByType[st], c)
	}

	return res
}

// CellsOfType returns the cells of type st; empty when there are none.
func (ft *FoliatedTriangulation) CellsOfType(st SimplexType) []*Cell {
	return ft.Classify().ByType[st]
}

// ThreeOne returns the (3,1) cells.
func (ft *FoliatedTriangulation) ThreeOne() []*Cell { return ft.CellsOfType(ThreeOne) }

// TwoTwo returns the (2,2) cells.
func (ft *FoliatedTriangulation) TwoTwo() []*Cell { return ft.CellsOfType(TwoTwo) }

// OneThree returns the (1,3) cells.
func (ft *FoliatedTriangulation) OneThree() []*Cell { return ft.CellsOfType(OneThree) }

// IsFoliated reports whether every finite top cell spans exactly two
// consecutive slices.
func (ft *FoliatedTriangulation) IsFoliated() bool {
	return len(ft.Classify().Invalid) == 0
}
