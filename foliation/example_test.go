package foliation_test

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/cdt/foliation"
	"github.com/katalvlaran/cdt/geometry"
)

// ExampleNew builds the foliated tetrahedron: three vertices on slice 1, one
// on slice 2.
func ExampleNew() {
	r := 2 / math.Sqrt(3)
	ft, err := foliation.New([]foliation.CausalVertex{
		{Point: geometry.NewPoint(1, 0, 0), Timevalue: 1},
		{Point: geometry.NewPoint(0, 1, 0), Timevalue: 1},
		{Point: geometry.NewPoint(0, 0, 1), Timevalue: 1},
		{Point: geometry.NewPoint(r, r, r), Timevalue: 2},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("dimension:", ft.Dimension())
	fmt.Println("vertices ok:", ft.CheckAllVertices())
	fmt.Println("(3,1) cells:", len(ft.ThreeOne()))
	fmt.Println("timelike/spacelike:", ft.N1TL(), ft.N1SL())

	// Output:
	// dimension: 3
	// vertices ok: true
	// (3,1) cells: 1
	// timelike/spacelike: 3 3
}

// ExampleFoliatedTriangulation_PrintCells shows the per-cell dump.
func ExampleFoliatedTriangulation_PrintCells() {
	ft, _ := foliation.New([]foliation.CausalVertex{
		{Point: geometry.NewPoint(0, 0, 0), Timevalue: 1},
		{Point: geometry.NewPoint(1, 0, 0), Timevalue: 2},
		{Point: geometry.NewPoint(0, 1, 0), Timevalue: 2},
		{Point: geometry.NewPoint(0, 0, 1), Timevalue: 2},
	}, foliation.WithInitialRadius(0))
	_ = ft.PrintCells(os.Stdout)

	// Output:
	// Cell 0 (1,3):
	//   Vertex 0: (0, 0, 0) timevalue 1
	//   Vertex 1: (1, 0, 0) timevalue 2
	//   Vertex 2: (0, 1, 0) timevalue 2
	//   Vertex 3: (0, 0, 1) timevalue 2
}
