// SPDX-License-Identifier: MIT
// Package: cdt/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached by wrapf, which keeps the sentinel reachable.
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrBadSize indicates a count parameter (slices, vertices per slice) below
// its minimum.
// Usage: if errors.Is(err, ErrBadSize) { /* fix the size */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a constructor parameter outside its domain
// (unknown solid, timevalue below 1, dimension mismatch).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a nil constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf prefixes a sentinel with the method name and a formatted detail:
// "<method>: <detail>: <sentinel>".
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(sentinel, method+": "+format, args...)
}
