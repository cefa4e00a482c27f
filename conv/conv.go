package conv

import (
	"fmt"

	"github.com/katalvlaran/convolab/grid"
	"github.com/katalvlaran/convolab/kernel"
)

// Convolve applies one kernel to one input grid under the given options.
//
// Description:
//
//	Standard valid/zero-padded cross-correlation: the kernel slides over
//	the input without flipping, each window position produces one output
//	cell, and the raw sum is passed through opts.Activation.
//
// Algorithm Outline:
//  1. Validate input, kernel, and options (fail fast on contract
//     violations; see Errors).
//  2. span = inDim + 2·padding − kSize. span < 0 ⇒ empty feature map.
//  3. outDim = ⌊span / stride⌋ + 1.
//  4. For every (ox, oy) in [0,outDim)²:
//     sum = Σ_{ky,kx} in(oy·stride−padding+ky, ox·stride−padding+kx) · w[ky][kx]
//     where out-of-bounds reads yield 0; store activation(sum).
//
// Purity:
//
//	No shared mutable state; the result is freshly allocated and calling
//	twice with identical arguments yields bitwise-identical output.
//
// Errors:
//   - ErrNilInput, ErrBadKernel, ErrBadStride, ErrBadPadding,
//     ErrBadActivation — caller contract violations.
//
// Complexity: O(outDim² · kSize²) time, O(outDim²) memory.
func Convolve(in *grid.Grid, k kernel.Kernel, opts Options) (FeatureMap, error) {
	if err := validate(in, k, opts); err != nil {
		return FeatureMap{}, err
	}

	outDim := outputDim(in.Dim(), k.Size, opts)
	out, err := grid.New(outDim)
	if err != nil {
		// Unreachable: outputDim never returns a negative dimension.
		return FeatureMap{}, err
	}

	var ox, oy int
	for oy = 0; oy < outDim; oy++ {
		for ox = 0; ox < outDim; ox++ {
			var sum float64
			walkWindow(in, k, opts, ox, oy, func(inputValue, weight float64, _ bool) {
				sum += inputValue * weight
			})
			if err = out.Set(ox, oy, opts.Activation.Apply(sum)); err != nil {
				return FeatureMap{}, fmt.Errorf("conv: store output cell (%d,%d): %w", ox, oy, err)
			}
		}
	}

	return FeatureMap{Name: k.Name, Dim: outDim, Data: out}, nil
}

// ConvolveAll convolves every kernel of the bank over the same input,
// preserving bank order. This is the full-recompute entry point the
// visualizer calls whenever input, kernel set, or options change.
// Complexity: O(len(bank) · outDim² · kSize²).
func ConvolveAll(in *grid.Grid, bank kernel.Bank, opts Options) ([]FeatureMap, error) {
	maps := make([]FeatureMap, 0, len(bank))
	for _, k := range bank {
		fm, err := Convolve(in, k, opts)
		if err != nil {
			return nil, fmt.Errorf("conv: kernel %q: %w", k.Name, err)
		}
		maps = append(maps, fm)
	}

	return maps, nil
}

// outputDim computes ⌊(inDim + 2·padding − kSize) / stride⌋ + 1, clamped
// to 0 for degenerate windows. The span is checked before dividing:
// Go's integer division truncates toward zero, which would round a
// negative span the wrong way.
func outputDim(inDim, kSize int, opts Options) int {
	span := inDim + 2*opts.Padding - kSize
	if span < 0 {
		return 0
	}

	return span/opts.Stride + 1
}

// walkWindow visits every kernel cell of the receptive field behind output
// cell (ox, oy), in row-major (ky, kx) order, reporting the (zero-padded)
// input value, the weight over it, and whether the read was padded.
//
// Both Convolve and Explain funnel through this walk; keeping a single
// implementation guarantees a trace can never disagree with the feature
// map it explains.
// Complexity: O(kSize²).
func walkWindow(in *grid.Grid, k kernel.Kernel, opts Options, ox, oy int, visit func(inputValue, weight float64, padded bool)) {
	var ky, kx, ix, iy int
	for ky = 0; ky < k.Size; ky++ {
		iy = oy*opts.Stride - opts.Padding + ky
		for kx = 0; kx < k.Size; kx++ {
			ix = ox*opts.Stride - opts.Padding + kx
			visit(in.AtOrZero(ix, iy), k.Weights.AtOrZero(kx, ky), !in.InBounds(ix, iy))
		}
	}
}

// validate fails fast on every caller contract violation shared by
// Convolve and Explain. Complexity: O(1).
func validate(in *grid.Grid, k kernel.Kernel, opts Options) error {
	if in == nil {
		return ErrNilInput
	}
	if k.Weights == nil || k.Size <= 0 || k.Weights.Dim() != k.Size {
		return ErrBadKernel
	}
	if opts.Stride < 1 {
		return ErrBadStride
	}
	if opts.Padding < 0 {
		return ErrBadPadding
	}
	if !opts.Activation.Valid() {
		return ErrBadActivation
	}

	return nil
}
