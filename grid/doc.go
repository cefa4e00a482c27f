// Package grid provides the square float64 matrix used everywhere in
// convolab: inputs, kernel weights, and feature-map data all share one
// representation.
//
// 🚀 What is a Grid?
//
//	A dim×dim matrix stored as a flat row-major slice
//	(index = y*dim + x), mirroring how the engine addresses pixels:
//	  • At/Set   — bounds-checked element access (sentinel errors, no panics)
//	  • AtOrZero — zero-padded read: out-of-bounds coordinates yield 0
//	  • Clone    — deep copy; grids are never shared behind the caller's back
//
// ✨ Numeric policy:
//
//   - Every stored value must be finite; Set and the constructors reject
//     NaN and ±Inf with ErrNaNInf.
//   - No range is enforced beyond finiteness — inputs are conventionally
//     normalized to [0,1] and kernel weights are small integers, but the
//     grid does not care.
//
// A Grid of dimension 0 is valid and empty: degenerate convolutions
// (output dimension ≤ 0) produce exactly such grids.
//
// Complexity: all accessors are O(1); constructors and Clone are O(dim²).
package grid
