package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrDimensionMismatch indicates points of different dimension were combined.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrEmptyPointSet indicates an operation needed at least one point.
	ErrEmptyPointSet = errors.New("geometry: empty point set")

	// ErrDegenerateSimplex indicates the simplex has no unique circumsphere.
	ErrDegenerateSimplex = errors.New("geometry: degenerate simplex")
)
