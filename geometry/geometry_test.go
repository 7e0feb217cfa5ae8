package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt/geometry"
)

// radius2 places (r, r, r) at distance 2 from the origin.
var radius2 = 2.0 / math.Sqrt(3)

func TestPoint_Equality(t *testing.T) {
	p1 := geometry.NewPoint(0, 0, 0)
	p2 := geometry.NewPoint(0, 0.0, 0.0)
	p3 := geometry.NewPoint(1, 1, 1)

	assert.True(t, p1.Equal(p2), "similar points are equal")
	assert.False(t, p1.Equal(p3), "dissimilar points are not equal")
	assert.False(t, p1.Equal(geometry.NewPoint(0, 0)), "dimension is part of identity")
	assert.Equal(t, "(1, 0.5, -2)", geometry.NewPoint(1, 0.5, -2).String())
}

func TestSquaredDistance_TetrahedronFixture(t *testing.T) {
	origin := geometry.Origin(3)
	v1 := geometry.NewPoint(1, 0, 0)
	v2 := geometry.NewPoint(0, 1, 0)
	v3 := geometry.NewPoint(0, 0, 1)
	v4 := geometry.NewPoint(radius2, radius2, radius2)

	for _, v := range []geometry.Point{v1, v2, v3} {
		assert.InDelta(t, 1.0, geometry.SquaredDistance(origin, v), 1e-12)
	}
	assert.InDelta(t, 4.0, geometry.SquaredDistance(origin, v4), 1e-12)

	assert.InDelta(t, 2.0, geometry.SquaredDistance(v1, v2), 1e-12)
	assert.InDelta(t, 2.0, geometry.SquaredDistance(v1, v3), 1e-12)
	assert.InDelta(t, 2.0, geometry.SquaredDistance(v2, v3), 1e-12)

	// Symmetry.
	assert.Equal(t, geometry.SquaredDistance(v1, v4), geometry.SquaredDistance(v4, v1))
	assert.True(t, math.IsNaN(geometry.SquaredDistance(v1, geometry.NewPoint(1, 0))))
}

func TestOrientation(t *testing.T) {
	pos := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	neg := [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	flat := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}

	assert.Equal(t, geometry.Positive, geometry.Orientation(pos, geometry.DefaultEpsilon))
	assert.Equal(t, geometry.Negative, geometry.Orientation(neg, geometry.DefaultEpsilon))
	assert.Equal(t, geometry.Zero, geometry.Orientation(flat, geometry.DefaultEpsilon))

	// 1-D and 2-D.
	assert.Equal(t, geometry.Positive, geometry.Orientation([][]float64{{0}, {2}}, geometry.DefaultEpsilon))
	assert.Equal(t, geometry.Negative, geometry.Orientation([][]float64{{0, 0}, {0, 1}, {1, 0}}, geometry.DefaultEpsilon))
}

func TestInSphere_IndependentOfOrientation(t *testing.T) {
	tet := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	swapped := [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	eps := geometry.DefaultEpsilon

	for _, s := range [][][]float64{tet, swapped} {
		assert.Equal(t, geometry.Positive, geometry.InSphere(s, []float64{0.5, 0.5, 0.5}, eps))
		assert.Equal(t, geometry.Negative, geometry.InSphere(s, []float64{radius2, radius2, radius2}, eps))
		assert.Equal(t, geometry.Zero, geometry.InSphere(s, []float64{1, 1, 0}, eps), "(1,1,0) is co-spherical")
	}

	// 1-D: the circumsphere of a segment is the segment.
	seg := [][]float64{{0}, {2}}
	assert.Equal(t, geometry.Positive, geometry.InSphere(seg, []float64{1}, eps))
	assert.Equal(t, geometry.Negative, geometry.InSphere(seg, []float64{3}, eps))

	// 2-D.
	tri := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	assert.Equal(t, geometry.Positive, geometry.InSphere(tri, []float64{0.4, 0.4}, eps))
	assert.Equal(t, geometry.Negative, geometry.InSphere(tri, []float64{2, 2}, eps))
}

func TestCircumsphere(t *testing.T) {
	c, r2, err := geometry.Circumsphere([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5}, c, 1e-12)
	assert.InDelta(t, 0.75, r2, 1e-12)

	// A facet embedded in 3-D: center stays in the facet's plane.
	c, r2, err = geometry.Circumsphere([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, c, 1e-12)
	assert.InDelta(t, 2.0/3, r2, 1e-12)

	_, _, err = geometry.Circumsphere([][]float64{{0, 0}, {1, 1}, {2, 2}})
	assert.ErrorIs(t, err, geometry.ErrDegenerateSimplex)

	_, _, err = geometry.Circumsphere(nil)
	assert.ErrorIs(t, err, geometry.ErrEmptyPointSet)

	facet := [][]float64{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}
	assert.Equal(t, geometry.Positive, geometry.InCircumsphere(facet, []float64{1, 1, 0}, geometry.DefaultEpsilon))
	assert.Equal(t, geometry.Negative, geometry.InCircumsphere(facet, []float64{3, 3, 0}, geometry.DefaultEpsilon))
}

func TestFrame_Dimensions(t *testing.T) {
	cases := []struct {
		name   string
		points []geometry.Point
		dim    int
	}{
		{"single", []geometry.Point{{0, 0, 0}}, 0},
		{"segment", []geometry.Point{{0, 0, 0}, {1, 0, 0}}, 1},
		{"collinear", []geometry.Point{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, 1},
		{"triangle", []geometry.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, 2},
		{"tetrahedron", []geometry.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := geometry.NewFrame(tc.points, geometry.DefaultEpsilon)
			require.NoError(t, err)
			assert.Equal(t, tc.dim, f.Dim())
			assert.Equal(t, 3, f.AmbientDim())
			assert.Len(t, f.Pivots(), tc.dim)
		})
	}
}

func TestFrame_ProjectionPreservesDistances(t *testing.T) {
	pts := []geometry.Point{{1, 1, 5}, {3, 1, 5}, {1, 4, 5}}
	f, err := geometry.NewFrame(pts, geometry.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, 2, f.Dim())

	a, b := f.Project(pts[1]), f.Project(pts[2])
	assert.InDelta(t, geometry.SquaredDistance(pts[1], pts[2]), geometry.SquaredDistance(a, b), 1e-12)

	// Full rank frames return raw coordinates.
	full, err := geometry.NewFrame([]geometry.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, geometry.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, -3, 7}, full.Project(geometry.NewPoint(0.25, -3, 7)))

	_, err = geometry.NewFrame([]geometry.Point{{0, 0}, {1, 0, 0}}, geometry.DefaultEpsilon)
	assert.ErrorIs(t, err, geometry.ErrDimensionMismatch)
}
