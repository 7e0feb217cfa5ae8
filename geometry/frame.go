package geometry

import "math"

// Frame is an orthonormal coordinate frame of the affine hull of a point set.
//
// Dim() is the affine dimension of the set (0 for a single point). When the set
// spans its ambient space the frame is the identity (zero origin, unit axes),
// so projected coordinates are bit-for-bit the input coordinates.
type Frame struct {
	origin []float64
	basis  [][]float64
	pivots []int
	ident  bool
}

// NewFrame computes the affine hull of points by modified Gram–Schmidt over
// p_i - p_0 in input order. A difference vector extends the basis when its
// residual norm exceeds eps·scale, where scale is the largest |p_i - p_0|.
//
// Pivots() lists the indices of the points that extended the basis; together
// with index 0 they form an affinely independent (Dim()+1)-subset.
//
// Errors:
//   - ErrEmptyPointSet, ErrDimensionMismatch.
//
// Complexity: O(n·d^2) for n points in R^d.
func NewFrame(points []Point, eps float64) (*Frame, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}
	ambient := points[0].Dim()
	diffs := make([][]float64, len(points))
	var scale float64
	for i, p := range points {
		if p.Dim() != ambient {
			return nil, ErrDimensionMismatch
		}
		diffs[i] = sub(p, points[0])
		scale = math.Max(scale, math.Sqrt(dot(diffs[i], diffs[i])))
	}

	f := &Frame{origin: append([]float64(nil), points[0]...)}
	var r []float64
	var norm float64
	for i := 1; i < len(points) && len(f.basis) < ambient; i++ {
		r = append([]float64(nil), diffs[i]...)
		for _, b := range f.basis {
			c := dot(r, b)
			for j := range r {
				r[j] -= c * b[j]
			}
		}
		norm = math.Sqrt(dot(r, r))
		if norm <= eps*scale || norm == 0 {
			continue
		}
		for j := range r {
			r[j] /= norm
		}
		f.basis = append(f.basis, r)
		f.pivots = append(f.pivots, i)
	}

	if len(f.basis) == ambient {
		// Full rank: keep raw coordinates so predicates see the exact input.
		f.ident = true
		f.origin = make([]float64, ambient)
		for j := range f.basis {
			f.basis[j] = make([]float64, ambient)
			f.basis[j][j] = 1
		}
	}

	return f, nil
}

// Dim returns the affine dimension of the framed point set.
func (f *Frame) Dim() int { return len(f.basis) }

// AmbientDim returns the dimension of the space the points live in.
func (f *Frame) AmbientDim() int { return len(f.origin) }

// Pivots returns the indices (into the NewFrame input) that extended the basis.
func (f *Frame) Pivots() []int { return append([]int(nil), f.pivots...) }

// Project returns the coordinates of p in the frame (length Dim()).
func (f *Frame) Project(p Point) []float64 {
	out := make([]float64, len(f.basis))
	if f.ident {
		copy(out, p)
		return out
	}
	d := sub(p, f.origin)
	for j, b := range f.basis {
		out[j] = dot(d, b)
	}

	return out
}
