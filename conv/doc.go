// Package conv is the sliding-window engine at the heart of convolab:
// it turns one input grid and one kernel into a feature map, and — on
// demand — into an itemized math trace for a single output pixel.
//
// 🚀 What does it compute?
//
//	Standard valid/zero-padded cross-correlation (the kernel is applied
//	without flipping, as CNN introductions conventionally do):
//
//	  outDim = ⌊(inDim + 2·padding − kSize) / stride⌋ + 1
//	  out[oy][ox] = act( Σ_{ky,kx} in(oy·s−p+ky, ox·s−p+kx) · w[ky][kx] )
//
//	Reads outside the input are 0 — defined zero-padding behavior, never
//	an error. outDim ≤ 0 yields a valid empty feature map, also not an
//	error; callers must tolerate zero-sized results.
//
// ✨ Key properties:
//
//   - Pure: Convolve and Explain are functions of their arguments only;
//     identical calls yield bitwise-identical results.
//   - Auditable: Explain retains every (input, weight, product) term of
//     one output cell, in row-major (ky, kx) order, flagging padded
//     cells — and walks the exact same window logic as Convolve, so a
//     trace can never disagree with the feature map it explains.
//   - Fail-fast: bad stride/padding/kernel/coordinates are caller
//     contract violations and return sentinel errors up front.
//
// ⚙️ Usage:
//
//	bank, _ := kernel.Generate(3)
//	opts := conv.DefaultOptions()           // stride 1, padding 0, none
//	maps, err := conv.ConvolveAll(input, bank, opts)
//	tr, err := conv.Explain(input, bank[2], opts, 0, 0)
//
// Recomputation policy lives with the caller: whenever input, bank, or
// options change, call again. The engine holds no timers, caches, or
// cross-call state.
//
// Complexity: O(outDim² · kSize²) time per kernel, O(outDim²) memory.
package conv
