package geometry

import (
	"math"

	"github.com/katalvlaran/cdt/matrix"
)

// DefaultEpsilon is the relative width of the zero band used by the predicates.
const DefaultEpsilon = 1e-10

// Sign values returned by the predicates.
const (
	Negative = -1
	Zero     = 0
	Positive = 1
)

// Orientation returns the sign of det[p1-p0, ..., pk-p0] for k+1 points in R^k.
// Positive means the simplex is positively oriented, Zero means it is flat
// within eps (relative to the product of the edge-vector norms).
//
// The points must all have dimension k = len(pts)-1; anything else, or a
// non-finite coordinate, is reported as Zero.
//
// Complexity: O(k^3).
func Orientation(pts [][]float64, eps float64) int {
	k := len(pts) - 1
	if k < 1 || !sameDim(pts, k) {
		return Zero
	}
	rows := make([][]float64, k)
	for i := 1; i <= k; i++ {
		rows[i-1] = sub(pts[i], pts[0])
	}

	return signedDet(rows, eps)
}

// InSphere reports where q lies relative to the circumsphere of the k-simplex
// pts (k+1 points in R^k): Positive inside, Negative outside, Zero on the
// sphere or when the simplex itself is flat.
//
// The lifted determinant D = det[pi - q, |pi - q|²] changes sign on the
// sphere; q is inside iff (-1)^k · D · orientation > 0.
//
// Complexity: O(k^3).
func InSphere(pts [][]float64, q []float64, eps float64) int {
	k := len(pts) - 1
	if k < 1 || !sameDim(pts, k) || len(q) != k {
		return Zero
	}
	orient := Orientation(pts, eps)
	if orient == Zero {
		return Zero
	}
	rows := make([][]float64, k+1)
	var d []float64
	for i := 0; i <= k; i++ {
		d = sub(pts[i], q)
		rows[i] = append(d, dot(d, d))
	}
	s := signedDet(rows, eps)
	if k%2 == 1 {
		s = -s
	}

	return s * orient
}

// Circumsphere returns the center and squared radius of the smallest sphere
// through the m+1 points pts, all of dimension n ≥ m. The center lies in the
// affine hull of pts, so this also serves facets embedded in a higher
// dimensional space.
//
// Errors:
//   - ErrEmptyPointSet for no points.
//   - ErrDimensionMismatch for mixed dimensions.
//   - ErrDegenerateSimplex when the points are affinely dependent.
//
// Complexity: O(m^2·n + m^3).
func Circumsphere(pts [][]float64) ([]float64, float64, error) {
	if len(pts) == 0 {
		return nil, 0, ErrEmptyPointSet
	}
	n, m := len(pts[0]), len(pts)-1
	if !sameDim(pts, n) {
		return nil, 0, ErrDimensionMismatch
	}
	center := append([]float64(nil), pts[0]...)
	if m == 0 {
		return center, 0, nil
	}

	edges := make([][]float64, m)
	for i := 1; i <= m; i++ {
		edges[i-1] = sub(pts[i], pts[0])
	}
	a, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, 0, err
	}
	b := make([]float64, m)
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			if err = a.Set(i, j, 2*dot(edges[i], edges[j])); err != nil {
				return nil, 0, ErrDegenerateSimplex
			}
		}
		b[i] = dot(edges[i], edges[i])
	}
	lambda, err := matrix.Solve(a, b)
	if err != nil {
		return nil, 0, ErrDegenerateSimplex
	}
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			center[i] += lambda[j] * edges[j][i]
		}
	}
	r2 := SquaredDistance(center, pts[0])
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return nil, 0, ErrDegenerateSimplex
	}

	return center, r2, nil
}

// InCircumsphere is the dimension-agnostic variant of InSphere: it compares
// |q - c|² with r² of Circumsphere(pts), with a relative band of eps·r².
// Degenerate simplices report Zero.
//
// Complexity: O(m^2·n + m^3).
func InCircumsphere(pts [][]float64, q []float64, eps float64) int {
	c, r2, err := Circumsphere(pts)
	if err != nil || len(q) != len(c) {
		return Zero
	}
	d2 := SquaredDistance(c, q)
	switch {
	case d2 < r2-eps*r2:
		return Positive
	case d2 > r2+eps*r2:
		return Negative
	default:
		return Zero
	}
}

// signedDet evaluates det(rows) and collapses it to a sign, treating values
// inside eps·Π|row| (Hadamard's bound) as Zero.
func signedDet(rows [][]float64, eps float64) int {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return Zero
	}
	det, err := matrix.Det(m)
	if err != nil {
		return Zero
	}
	bound := 1.0
	for _, r := range rows {
		bound *= math.Sqrt(dot(r, r))
	}
	switch {
	case det > eps*bound:
		return Positive
	case det < -eps*bound:
		return Negative
	default:
		return Zero
	}
}

func sameDim(pts [][]float64, d int) bool {
	for _, p := range pts {
		if len(p) != d {
			return false
		}
	}

	return true
}
