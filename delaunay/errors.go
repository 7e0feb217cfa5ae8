package delaunay

import "errors"

// Sentinel errors for kernel construction. Callers branch with errors.Is.
var (
	// ErrEmptyInput indicates Triangulate was called without points.
	ErrEmptyInput = errors.New("delaunay: empty point set")

	// ErrUnsupportedDimension indicates an ambient dimension outside 1..MaxDimension.
	ErrUnsupportedDimension = errors.New("delaunay: unsupported dimension")

	// ErrDimensionMismatch indicates a point whose dimension differs from the kernel's.
	ErrDimensionMismatch = errors.New("delaunay: point dimension mismatch")

	// ErrInvalidPoint indicates a point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("delaunay: non-finite point")

	// ErrInsertionFailed indicates a point conflicted with no cell (numerically
	// indistinguishable from an existing vertex).
	ErrInsertionFailed = errors.New("delaunay: insertion failed")
)
