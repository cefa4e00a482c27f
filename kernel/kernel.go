package kernel

import "github.com/katalvlaran/convolab/grid"

// Generate builds the full kernel bank for one odd side length.
//
// Description:
//
//	Pure and deterministic: the same size always yields the same bank,
//	in Kinds() order. Total for every odd size ≥ 3; the UI only exposes
//	3 and 5, but nothing here depends on that.
//
// Errors:
//   - ErrSizeTooSmall — size < 3.
//   - ErrEvenSize     — size is even (no center cell exists).
//
// Complexity: O(size²) per kernel, O(size²) memory each.
func Generate(size int) (Bank, error) {
	if size < 3 {
		return nil, ErrSizeTooSmall
	}
	if size%2 == 0 {
		return nil, ErrEvenSize
	}

	kinds := Kinds()
	bank := make(Bank, 0, len(kinds))
	for _, kind := range kinds {
		bank = append(bank, Kernel{
			Kind:    kind,
			Name:    kind.String(),
			Size:    size,
			Weights: build(kind, size),
		})
	}

	return bank, nil
}

// build dispatches once on Kind to the pure per-kind generator.
// size is already validated odd and ≥ 3.
func build(kind Kind, size int) *grid.Grid {
	switch kind {
	case HorizontalEdge:
		return horizontalEdge(size)
	case VerticalEdge:
		return verticalEdge(size)
	case Sharpen:
		return sharpen(size)
	case Emboss:
		return emboss(size)
	default:
		// Unreachable: Kinds() enumerates every member.
		w, _ := grid.New(size)

		return w
	}
}

// horizontalEdge fills the center row with 2 and everything else with −1.
// Weights sum to size*(3−size): zero at size 3, negative beyond. The
// asymmetry is intentional (one-sided edge kernel, not a true high-pass).
func horizontalEdge(size int) *grid.Grid {
	w, _ := grid.New(size)
	center := size / 2
	var x, y int
	for y = 0; y < size; y++ {
		for x = 0; x < size; x++ {
			if y == center {
				_ = w.Set(x, y, 2)
			} else {
				_ = w.Set(x, y, -1)
			}
		}
	}

	return w
}

// verticalEdge mirrors horizontalEdge across rows/columns:
// center column 2, everything else −1.
func verticalEdge(size int) *grid.Grid {
	w, _ := grid.New(size)
	center := size / 2
	var x, y int
	for y = 0; y < size; y++ {
		for x = 0; x < size; x++ {
			if x == center {
				_ = w.Set(x, y, 2)
			} else {
				_ = w.Set(x, y, -1)
			}
		}
	}

	return w
}

// sharpen sets only the center: 5 at size 3 (with the four orthogonal
// neighbors at −1, the cross-shaped Laplacian-like sharpen), 9 otherwise.
// The missing neighbor correction beyond size 3 is a deliberately crude
// approximation kept verbatim from the lesson material.
func sharpen(size int) *grid.Grid {
	w, _ := grid.New(size)
	center := size / 2
	if size == 3 {
		_ = w.Set(center, center, 5)
		_ = w.Set(center-1, center, -1)
		_ = w.Set(center+1, center, -1)
		_ = w.Set(center, center-1, -1)
		_ = w.Set(center, center+1, -1)

		return w
	}
	_ = w.Set(center, center, 9)

	return w
}

// emboss returns the fixed literal 3×3 relief matrix at size 3 and the
// identity kernel (zeros, center 1) at every other size. The discontinuity
// is a deliberate simplification kept verbatim from the lesson material.
func emboss(size int) *grid.Grid {
	if size == 3 {
		w, _ := grid.FromRows([][]float64{
			{-2, -1, 0},
			{-1, 1, 1},
			{0, 1, 2},
		})

		return w
	}
	w, _ := grid.New(size)
	_ = w.Set(size/2, size/2, 1)

	return w
}
