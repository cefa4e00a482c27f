// Package activation provides the scalar nonlinearities applied to each
// raw convolution sum before it lands in a feature map.
//
// 🚀 What is here?
//
//	Four pure functions, total on all real inputs:
//	  • none    — identity, f(x) = x
//	  • relu    — f(x) = max(0, x)
//	  • sigmoid — f(x) = 1 / (1 + e^−x)
//	  • tanh    — f(x) = tanh(x)
//
// Each is addressed by a Func enum value; ByName maps the lower-case
// configuration strings ("none", "relu", "sigmoid", "tanh") onto the enum
// exactly once, at configuration time. An unknown name is a caller
// contract violation and fails fast with ErrUnknownFunc — the hot
// convolution loop only ever sees a resolved Func.
//
// No error cases exist at application time; Apply never allocates,
// never blocks, and has no state.
package activation
