package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt/builder"
	"github.com/katalvlaran/cdt/foliation"
	"github.com/katalvlaran/cdt/geometry"
)

func TestFoliatedTetrahedron_Default(t *testing.T) {
	cvs, err := builder.Build(nil, builder.FoliatedTetrahedron())
	require.NoError(t, err)
	require.Len(t, cvs, 4)
	r := 2 / math.Sqrt(3)
	assert.Equal(t, geometry.NewPoint(1, 0, 0), cvs[0].Point)
	assert.Equal(t, geometry.NewPoint(r, r, r), cvs[3].Point)
	assert.Equal(t, []int{1, 1, 1, 2}, []int{cvs[0].Timevalue, cvs[1].Timevalue, cvs[2].Timevalue, cvs[3].Timevalue})

	ft, err := builder.BuildTriangulation(nil, nil, builder.FoliatedTetrahedron())
	require.NoError(t, err)
	assert.True(t, ft.CheckAllVertices())
	assert.Len(t, ft.ThreeOne(), 1)
	assert.Equal(t, 3, ft.N1TL())
	assert.Equal(t, 3, ft.N1SL())
}

func TestFoliatedTetrahedron_OtherDimensions(t *testing.T) {
	for _, d := range []int{2, 4} {
		ft, err := builder.BuildTriangulation(
			[]builder.BuilderOption{builder.WithDimension(d), builder.WithFirstTimevalue(3)},
			nil, builder.FoliatedTetrahedron())
		require.NoError(t, err, "d=%d", d)
		assert.Equal(t, d, ft.Dimension())
		assert.Equal(t, 1, ft.NumberOfFiniteCells())
		assert.True(t, ft.CheckAllVertices())
		assert.Equal(t, 3, ft.MinTimevalue())
		assert.Len(t, ft.CellsOfType(foliation.SimplexType{Lower: d, Upper: 1}), 1)
	}
}

func TestPlatonicShell_Radii(t *testing.T) {
	counts := map[builder.PlatonicName]int{
		builder.Tetrahedron:  4,
		builder.Cube:         8,
		builder.Octahedron:   6,
		builder.Dodecahedron: 20,
		builder.Icosahedron:  12,
	}
	for name, n := range counts {
		cvs, err := builder.Build(nil, builder.PlatonicShell(name, 3))
		require.NoError(t, err, name.String())
		require.Len(t, cvs, n, name.String())
		for _, cv := range cvs {
			assert.InDelta(t, 9.0, cv.Point.SquaredNorm(), 1e-9, name.String())
			assert.Equal(t, 3, cv.Timevalue)
		}
	}
	assert.Equal(t, "Unknown", builder.PlatonicName(99).String())
}

func TestPlatonicShell_OctahedronAroundOrigin(t *testing.T) {
	ft, err := builder.BuildTriangulation(
		[]builder.BuilderOption{builder.WithInitialRadius(0)}, nil,
		builder.Points(1, geometry.Origin(3)),
		builder.PlatonicShell(builder.Octahedron, 2),
	)
	require.NoError(t, err)

	assert.Equal(t, 7, ft.NumberOfVertices())
	assert.Equal(t, 18, ft.NumberOfFiniteEdges())
	assert.Equal(t, 20, ft.NumberOfFiniteFacets())
	assert.Equal(t, 8, ft.NumberOfFiniteCells())
	assert.True(t, ft.IsDelaunay())
	assert.True(t, ft.IsTDSValid())
	assert.True(t, ft.CheckAllVertices())
	assert.True(t, ft.IsFoliated())
	assert.Len(t, ft.OneThree(), 8)
	assert.Equal(t, 6, ft.N1TL())
	assert.Equal(t, 12, ft.N1SL())
	assert.Equal(t, []foliation.SliceVolume{{Timevalue: 2, Facets: 8}}, ft.VolumePerTimeslice())
}

func TestFoliatedSphere(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithFoliationSpacing(1.5)}
	cvs, err := builder.Build(opts, builder.FoliatedSphere(3, 20))
	require.NoError(t, err)
	require.Len(t, cvs, 60)

	again, err := builder.Build(opts, builder.FoliatedSphere(3, 20))
	require.NoError(t, err)
	assert.Equal(t, cvs, again, "seeded output is deterministic")

	ft, err := builder.BuildTriangulation(opts, nil, builder.FoliatedSphere(3, 20))
	require.NoError(t, err)
	assert.Equal(t, 60, ft.NumberOfVertices())
	assert.Equal(t, 3, ft.Dimension())
	assert.True(t, ft.IsDelaunay())
	assert.True(t, ft.IsTDSValid())
	assert.True(t, ft.CheckAllVertices())
	assert.Equal(t, ft.NumberOfFiniteEdges(), ft.N1TL()+ft.N1SL())
	assert.Equal(t, ft.NumberOfFiniteCells(), ft.Classify().Total())
	assert.Len(t, ft.Leaves(), 3)
}

func TestFoliatedSphere_ZeroRadiusSlice(t *testing.T) {
	cvs, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithInitialRadius(0)},
		builder.FoliatedSphere(2, 5))
	require.NoError(t, err)
	require.Len(t, cvs, 6)
	assert.True(t, cvs[0].Point.Equal(geometry.Origin(3)))
}

func TestBuilder_Errors(t *testing.T) {
	_, err := builder.Build(nil, builder.FoliatedSphere(0, 5))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Build(nil, builder.FoliatedSphere(2, 5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil, builder.PlatonicShell(builder.PlatonicName(42), 1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.Build([]builder.BuilderOption{builder.WithDimension(2)}, builder.PlatonicShell(builder.Cube, 1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.Build(nil, builder.PlatonicShell(builder.Cube, 0))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.Build([]builder.BuilderOption{builder.WithInitialRadius(0)}, builder.PlatonicShell(builder.Cube, 1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.Build(nil, builder.Points(1, geometry.NewPoint(1, 0)))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.Build(nil, builder.Points(0, geometry.NewPoint(1, 0, 0)))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.Build([]builder.BuilderOption{builder.WithInitialRadius(0)}, builder.FoliatedTetrahedron())
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.Build(nil, builder.FoliatedTetrahedron(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildTriangulation(nil, nil)
	assert.ErrorIs(t, err, foliation.ErrConstruction)
}

func TestBuilder_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithInitialRadius(-0.5) })
	assert.Panics(t, func() { builder.WithFoliationSpacing(0) })
	assert.Panics(t, func() { builder.WithDimension(5) })
	assert.Panics(t, func() { builder.WithFirstTimevalue(0) })
}
