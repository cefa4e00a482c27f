package conv

import (
	"fmt"

	"github.com/katalvlaran/convolab/grid"
	"github.com/katalvlaran/convolab/kernel"
)

// Explain rebuilds the arithmetic behind one output cell of one kernel:
// every (input value, weight, product) term the window touched, their
// sum, and the activated result.
//
// Description:
//
//	The pedagogical "show your work" record. Terms come back in
//	row-major (ky, kx) window order — the UI displays a truncated
//	prefix, so the ordering is part of the observable contract.
//	IsPadding marks terms whose source coordinate fell outside the
//	input (those read as 0, exactly as in Convolve).
//
// Agreement guarantee:
//
//	Explain walks the identical window logic as Convolve (walkWindow)
//	and accumulates in the identical term order, so Trace.Sum always
//	equals — bitwise — the pre-activation value of
//	Convolve(...).Data at (ox, oy), and Trace.Activated equals the
//	stored cell.
//
// Errors:
//   - ErrNilInput, ErrBadKernel, ErrBadStride, ErrBadPadding,
//     ErrBadActivation — as in Convolve.
//   - ErrCoordOutOfRange — (ox, oy) lies outside the feature map this
//     configuration produces (including every coordinate when the map
//     is empty). Out-of-range coordinates are a caller bug, not a
//     recoverable condition.
//
// Complexity: O(kSize²) time and memory.
func Explain(in *grid.Grid, k kernel.Kernel, opts Options, ox, oy int) (Trace, error) {
	if err := validate(in, k, opts); err != nil {
		return Trace{}, err
	}

	outDim := outputDim(in.Dim(), k.Size, opts)
	if ox < 0 || ox >= outDim || oy < 0 || oy >= outDim {
		return Trace{}, fmt.Errorf("conv: Explain(%d,%d) on a %d×%d feature map: %w",
			ox, oy, outDim, outDim, ErrCoordOutOfRange)
	}

	// Accumulate inside the walk, in the same order and with the same
	// rounding as Convolve: the sums must agree bitwise, not just within
	// tolerance, so no reordered summation may be substituted here.
	terms := make([]Term, 0, k.Size*k.Size)
	var sum float64
	walkWindow(in, k, opts, ox, oy, func(inputValue, weight float64, padded bool) {
		p := inputValue * weight
		terms = append(terms, Term{
			InputValue: inputValue,
			Weight:     weight,
			Product:    p,
			IsPadding:  padded,
		})
		sum += p
	})

	return Trace{
		FilterName: k.Name,
		Terms:      terms,
		Sum:        sum,
		Activated:  opts.Activation.Apply(sum),
	}, nil
}
