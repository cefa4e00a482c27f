package grid

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a square, row-major matrix of float64 values.
// dim is the side length; data holds dim*dim elements at index y*dim+x.
// All stored values are finite (see the package numeric policy).
type Grid struct {
	dim  int       // side length, >= 0
	data []float64 // flat backing storage, length == dim*dim
}

// New creates a dim×dim Grid initialized to zeros.
// A dimension of 0 yields a valid empty grid.
// Returns ErrNegativeDim for dim < 0.
// Complexity: O(dim²) time and memory.
func New(dim int) (*Grid, error) {
	if dim < 0 {
		return nil, ErrNegativeDim
	}

	return &Grid{dim: dim, data: make([]float64, dim*dim)}, nil
}

// FromRows builds a Grid from a square 2D slice, deep-copying the input.
// Returns ErrNotSquare if any row length differs from the row count,
// ErrNaNInf if any value is NaN or ±Inf.
// Complexity: O(dim²) time and memory.
func FromRows(rows [][]float64) (*Grid, error) {
	dim := len(rows)
	data := make([]float64, 0, dim*dim)
	var v float64
	for _, row := range rows {
		if len(row) != dim {
			return nil, ErrNotSquare
		}
		for _, v = range row {
			if !isFinite(v) {
				return nil, ErrNaNInf
			}
			data = append(data, v)
		}
	}

	return &Grid{dim: dim, data: data}, nil
}

// FromFlat builds a Grid from an already-flat row-major slice,
// deep-copying the input.
// Returns ErrNegativeDim for dim < 0, ErrBadLength if len(values) != dim*dim,
// ErrNaNInf if any value is NaN or ±Inf.
// Complexity: O(dim²) time and memory.
func FromFlat(dim int, values []float64) (*Grid, error) {
	if dim < 0 {
		return nil, ErrNegativeDim
	}
	if len(values) != dim*dim {
		return nil, ErrBadLength
	}
	for _, v := range values {
		if !isFinite(v) {
			return nil, ErrNaNInf
		}
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &Grid{dim: dim, data: data}, nil
}

// Dim returns the side length of the grid.
// Complexity: O(1).
func (g *Grid) Dim() int {
	return g.dim
}

// Len returns the number of stored elements, dim*dim.
// Complexity: O(1).
func (g *Grid) Len() int {
	return len(g.data)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.dim && y >= 0 && y < g.dim
}

// index maps (x,y) to the row-major flat offset y*dim+x.
// Callers must bounds-check first.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.dim + x
}

// At retrieves the element at (x,y).
// Returns ErrOutOfRange if the coordinate lies outside the grid.
// Complexity: O(1).
func (g *Grid) At(x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", x, y, ErrOutOfRange)
	}

	return g.data[g.index(x, y)], nil
}

// AtOrZero retrieves the element at (x,y), treating every out-of-bounds
// coordinate as 0. This is the zero-padding read used by the convolution
// engine: it is defined, deterministic behavior, never an error.
// Complexity: O(1).
func (g *Grid) AtOrZero(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}

	return g.data[g.index(x, y)]
}

// Set assigns value v at (x,y).
// Returns ErrOutOfRange for coordinates outside the grid and
// ErrNaNInf for non-finite values.
// Complexity: O(1).
func (g *Grid) Set(x, y int, v float64) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", x, y, ErrOutOfRange)
	}
	if !isFinite(v) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", x, y, ErrNaNInf)
	}
	g.data[g.index(x, y)] = v

	return nil
}

// Fill assigns value v to every cell.
// Returns ErrNaNInf for non-finite values.
// Complexity: O(dim²).
func (g *Grid) Fill(v float64) error {
	if !isFinite(v) {
		return ErrNaNInf
	}
	for i := range g.data {
		g.data[i] = v
	}

	return nil
}

// Clone returns a deep copy of the grid, independent of the original.
// Complexity: O(dim²) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)

	return &Grid{dim: g.dim, data: data}
}

// Flat returns a copy of the flat row-major backing data.
// The copy keeps callers from mutating the grid through the slice.
// Complexity: O(dim²).
func (g *Grid) Flat() []float64 {
	out := make([]float64, len(g.data))
	copy(out, g.data)

	return out
}

// Equal reports whether two grids have identical dimension and
// bitwise-identical values.
// Complexity: O(dim²).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.dim != other.dim {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(dim²) for string construction.
func (g *Grid) String() string {
	var sb strings.Builder
	var x, y int
	for y = 0; y < g.dim; y++ {
		sb.WriteString("[")
		for x = 0; x < g.dim; x++ {
			sb.WriteString(fmt.Sprintf("%g", g.data[g.index(x, y)]))
			if x < g.dim-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
