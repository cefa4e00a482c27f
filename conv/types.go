// Package conv defines the engine's options and result types.
// Sentinel errors live in errors.go; the algorithms in conv.go and trace.go.
package conv

import (
	"github.com/katalvlaran/convolab/activation"
	"github.com/katalvlaran/convolab/grid"
)

// Options configures one convolution pass.
//
// Fields:
//   - Stride     — step, in input cells, between successive output
//     positions. Must be ≥ 1.
//   - Padding    — virtual zero-valued border width entering the output
//     dimension formula. Must be ≥ 0. Out-of-bounds reads are zero
//     regardless, so padding only widens the output, it never changes
//     what a padded cell reads as.
//   - Activation — scalar nonlinearity applied to each raw sum.
//
// Options is a value type owned by the caller; each call receives its own
// copy and the engine never retains it.
type Options struct {
	Stride     int
	Padding    int
	Activation activation.Func
}

// DefaultOptions returns the visualizer's baseline configuration:
// stride 1, padding 0 ("valid" convolution), no activation.
func DefaultOptions() Options {
	return Options{
		Stride:     1,
		Padding:    0,
		Activation: activation.None,
	}
}

// FeatureMap is the output of convolving one kernel over the input.
// Dim may be 0 (degenerate but valid); Data is always Dim×Dim.
// Recomputed from scratch whenever input, kernel set, or options change;
// never persisted, never shared with later calls.
type FeatureMap struct {
	Name string     // display name of the kernel that produced it
	Dim  int        // side length of the output, ≥ 0
	Data *grid.Grid // Dim×Dim activated output values
}

// Term is one multiply step of a math trace: the input value the window
// read (0 when padded), the kernel weight over it, and their product.
type Term struct {
	InputValue float64 // input cell value, 0 if the read was padded
	Weight     float64 // kernel weight at this window position
	Product    float64 // InputValue * Weight
	IsPadding  bool    // true iff the source coordinate was out of bounds
}

// Trace is the itemized "show your work" record for one output cell of
// one kernel: every term in row-major (ky, kx) order, their sum, and the
// activated result. Ephemeral — built on demand, owned by the caller.
type Trace struct {
	FilterName string  // display name of the kernel
	Terms      []Term  // kSize² terms in row-major window order
	Sum        float64 // Σ Term.Product, the pre-activation value
	Activated  float64 // activation applied to Sum
}
