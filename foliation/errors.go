// SPDX-License-Identifier: MIT
// Package: cdt/foliation
//
// errors.go — sentinel errors for the foliation package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached with github.com/pkg/errors (Wrapf/WithMessagef),
//     which keeps the sentinel reachable through errors.Is.
//   • Option constructors panic on meaningless values; queries never panic.

package foliation

import (
	"errors"
	"fmt"
)

// ErrConstruction indicates that no triangulation could be built from the
// supplied causal vertices. The kernel's own error is wrapped beneath it.
var ErrConstruction = errors.New("foliation: construction failed")

// ErrInvalidTimevalue indicates a causal vertex with a timevalue below 1 or
// outside the bounds given by WithTimevalueBounds.
var ErrInvalidTimevalue = errors.New("foliation: invalid timevalue")

// ErrInvalidFoliation is the common class of cell classification failures.
var ErrInvalidFoliation = errors.New("foliation: invalid foliation")

// Specific classification failures; each one also matches ErrInvalidFoliation.
var (
	// ErrTooManySlices indicates a cell touching more than two slices.
	ErrTooManySlices = classError("cell spans more than two slices")

	// ErrNonAdjacentSlices indicates a cell on two slices that are not consecutive.
	ErrNonAdjacentSlices = classError("cell slices are not consecutive")

	// ErrDegenerateCell indicates a cell with every vertex on a single slice.
	ErrDegenerateCell = classError("cell lies on a single slice")
)

// foliationError is a sentinel that also reports ErrInvalidFoliation.
type foliationError struct{ msg string }

func classError(msg string) error { return &foliationError{msg: msg} }

func (e *foliationError) Error() string { return fmt.Sprintf("foliation: %s", e.msg) }

func (e *foliationError) Is(target error) bool { return target == ErrInvalidFoliation }
