package manifold_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt/foliation"
	"github.com/katalvlaran/cdt/geometry"
	"github.com/katalvlaran/cdt/manifold"
)

var radius2 = 2.0 / math.Sqrt(3)

func causal(n int) []foliation.CausalVertex {
	all := []foliation.CausalVertex{
		{Point: geometry.NewPoint(0, 0, 0), Timevalue: 1},
		{Point: geometry.NewPoint(1, 0, 0), Timevalue: 2},
		{Point: geometry.NewPoint(0, 1, 0), Timevalue: 2},
		{Point: geometry.NewPoint(0, 0, 1), Timevalue: 2},
		{Point: geometry.NewPoint(radius2, radius2, radius2), Timevalue: 3},
	}

	return all[:n]
}

func TestManifold_VertexInsertion(t *testing.T) {
	cases := []struct {
		name       string
		n          int
		dim        int
		n1, n2, n3 int
	}{
		{"one vertex", 1, 0, 0, 0, 0},
		{"two vertices", 2, 1, 1, 0, 0},
		{"three vertices", 3, 2, 3, 1, 0},
		{"four vertices", 4, 3, 6, 4, 1},
		{"five vertices", 5, 3, 9, 7, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := manifold.New(causal(tc.n), foliation.WithInitialRadius(0), foliation.WithFoliationSpacing(1))
			require.NoError(t, err)

			for _, v := range m.Vertices() {
				assert.True(t, m.IsVertex(v))
			}
			assert.True(t, m.IsValid())
			assert.Equal(t, tc.n, m.N0())
			assert.Equal(t, tc.n1, m.N1())
			assert.Equal(t, tc.n2, m.N2())
			assert.Equal(t, tc.n3, m.N3())
			assert.Equal(t, tc.dim, m.Dimensionality())
			assert.True(t, m.Triangulation().CheckAllVertices())
			assert.Equal(t, 1, m.EulerCharacteristic())
			assert.True(t, m.IsCorrect())
		})
	}
}

func TestManifold_CellAndEdgeCounts(t *testing.T) {
	m, err := manifold.New(causal(5), foliation.WithInitialRadius(0))
	require.NoError(t, err)

	assert.Equal(t, 1, m.N31())
	assert.Equal(t, 0, m.N22())
	assert.Equal(t, 1, m.N13())
	assert.Equal(t, 2, m.N31N13())
	assert.Equal(t, 6, m.N1TL())
	assert.Equal(t, 3, m.N1SL())
	assert.Equal(t, 1, m.MinTime())
	assert.Equal(t, 3, m.MaxTime())
}

func TestManifold_ValidButNotFoliated(t *testing.T) {
	flat := []foliation.CausalVertex{
		{Point: geometry.NewPoint(0, 0, 0), Timevalue: 1},
		{Point: geometry.NewPoint(1, 0, 0), Timevalue: 1},
		{Point: geometry.NewPoint(0, 1, 0), Timevalue: 1},
		{Point: geometry.NewPoint(0, 0, 1), Timevalue: 1},
	}
	m, err := manifold.New(flat, foliation.WithInitialRadius(0))
	require.NoError(t, err)

	assert.True(t, m.IsValid(), "validity ignores the foliation")
	assert.False(t, m.IsCorrect())
}

func TestManifold_Errors(t *testing.T) {
	_, err := manifold.New(nil)
	assert.ErrorIs(t, err, foliation.ErrConstruction)

	_, err = manifold.FromTriangulation(nil)
	assert.ErrorIs(t, err, manifold.ErrNilTriangulation)

	ft, err := foliation.New(causal(4), foliation.WithInitialRadius(0))
	require.NoError(t, err)
	m, err := manifold.FromTriangulation(ft)
	require.NoError(t, err)
	assert.Same(t, ft, m.Triangulation())
	assert.Equal(t, 4, m.N0())
}

func TestManifold_Printing(t *testing.T) {
	m, err := manifold.New(causal(5), foliation.WithInitialRadius(0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.PrintDetails(&buf))
	assert.Equal(t,
		"Manifold has 5 vertices and 9 edges and 7 faces and 2 simplices.\n"+
			"There are 1 (3,1), 0 (2,2) and 1 (1,3) simplices; 6 timelike and 3 spacelike edges.\n",
		buf.String())

	buf.Reset()
	require.NoError(t, m.PrintVolumePerTimeslice(&buf))
	assert.Equal(t, "Timeslice 2 has 1 spacelike faces.\n", buf.String())

	buf.Reset()
	require.NoError(t, m.PrintVertices(&buf))
	assert.Contains(t, buf.String(), "Vertex 0: (0, 0, 0) has timevalue 1")

	buf.Reset()
	require.NoError(t, m.PrintCells(&buf))
	assert.Contains(t, buf.String(), "(3,1)")
	assert.Contains(t, buf.String(), "(1,3)")
}
