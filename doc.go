// Package convolab is the numeric core of an educational visualizer for
// 2D convolution: paint a small raster, slide a bank of fixed filter
// kernels over it, and inspect — number by number — how every output
// pixel is produced.
//
// 🚀 What is convolab?
//
//	A small, pure-Go convolution engine built for teaching:
//		• Grid primitives: square float64 matrices with zero-padded reads
//		• Kernel bank: Horizontal/Vertical Edge, Sharpen, Emboss at odd sizes
//		• Activations: relu, sigmoid, tanh, none
//		• Convolution: stride + padding cross-correlation → feature maps
//		• Math traces: itemized multiply/add breakdown for any output cell
//
// ✨ Why choose convolab?
//
//   - Deterministic – every call is a pure function of its inputs
//   - Auditable – Explain reproduces the exact terms behind each pixel
//   - Beginner-friendly – minimal API, clear naming, no hidden state
//
// Everything is organized under four subpackages:
//
//	grid/       — square row-major float64 matrices (the data model)
//	kernel/     — fixed filter-kernel family, generated per size
//	activation/ — scalar nonlinearities applied to raw sums
//	conv/       — the sliding-window engine + per-pixel math traces
//
// Quick ASCII example (3×3 input, Sharpen kernel, valid convolution):
//
//	input        kernel        output
//	1 1 1       0 -1  0
//	1 1 1  ⊛   -1  5 -1   =    1
//	1 1 1       0 -1  0
//
// The surrounding UI (painting, image decode, rendering, animation) lives
// outside this module: it supplies a grid and a configuration, and consumes
// feature maps plus optional traces.
package convolab
