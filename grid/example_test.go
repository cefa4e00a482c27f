package grid_test

import (
	"fmt"

	"github.com/katalvlaran/convolab/grid"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFromRows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build a tiny 3×3 intensity raster the way an upstream painting surface
//	would hand it to the engine, then read one pixel and one padded cell.
//
// Use case:
//
//	The input side of the convolution pipeline: all reads outside the
//	raster are defined to be 0, so the engine never branches on bounds.
//
// Complexity: O(dim²) construction, O(1) reads.
func ExampleFromRows() {
	g, err := grid.FromRows([][]float64{
		{0.0, 0.5, 0.0},
		{0.5, 1.0, 0.5},
		{0.0, 0.5, 0.0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("dim:", g.Dim())
	fmt.Println("center:", g.AtOrZero(1, 1))
	fmt.Println("outside:", g.AtOrZero(-1, 2))
	// Output:
	// dim: 3
	// center: 1
	// outside: 0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGrid_Clone
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Snapshot a grid before mutating it — the clone stays untouched.
//
// Complexity: O(dim²).
func ExampleGrid_Clone() {
	g, _ := grid.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	snap := g.Clone()
	_ = g.Set(0, 0, 9)

	fmt.Print(snap)
	// Output:
	// [1, 2]
	// [3, 4]
}
