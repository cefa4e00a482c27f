// Package kernel generates the fixed family of filter kernels the
// visualizer teaches with: Horizontal Edge, Vertical Edge, Sharpen, Emboss.
//
// 🚀 What is a kernel bank?
//
//	For one odd side length (3 or 5 in the UI, any odd size ≥ 3 here),
//	Generate produces four named square weight matrices in a fixed order.
//	Each kernel is identified by a Kind — an enum resolved once at
//	generation time, so the convolution hot path never dispatches on a
//	string name.
//
// ✨ Deliberate quirks (lesson content, not bugs):
//
//   - Sharpen at size 3 is the cross-shaped Laplacian-like filter
//     (center 5, orthogonal neighbors −1); at size 5 it is only a center
//     spike of 9 with no neighbor correction.
//   - Emboss is a fixed literal 3×3 matrix; at any other size it falls
//     back to the identity kernel (zeros, center 1).
//   - Horizontal/Vertical Edge are one-sided kernels (center line 2,
//     everything else −1), not true high-pass filters.
//
// These shapes match the lesson material exactly; generalizing them would
// silently change what the tool displays. Kernels are immutable once
// generated: a size change means regenerating the bank, never mutating it.
package kernel
