package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Point is a coordinate tuple in d-dimensional Euclidean space.
// Equality is coordinate-wise and exact: Point{0, 0, 0} equals Point{0, 0.0, 0.0}.
type Point []float64

// NewPoint returns a Point holding a copy of coords.
func NewPoint(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)

	return p
}

// Origin returns the zero point of dimension d.
func Origin(d int) Point {
	return make(Point, d)
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Equal reports whether p and q have the same dimension and identical coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// IsFinite reports whether every coordinate is neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	return NewPoint(p...)
}

// String renders the point as "(x, y, z)" using the shortest exact decimal form.
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')

	return b.String()
}

// SquaredNorm returns |p|², the squared distance from the origin.
func (p Point) SquaredNorm() float64 {
	var s float64
	for _, x := range p {
		s += x * x
	}

	return s
}

// SquaredDistance returns |p - q|². It is symmetric in its arguments.
// Points of different dimension yield NaN.
func SquaredDistance(p, q Point) float64 {
	if len(p) != len(q) {
		return math.NaN()
	}
	var s, d float64
	for i := range p {
		d = p[i] - q[i]
		s += d * d
	}

	return s
}

// sub returns a - b as a fresh slice; callers guarantee equal lengths.
func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// dot returns a·b; callers guarantee equal lengths.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
