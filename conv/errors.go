package conv

import "errors"

// Sentinel errors for the convolution engine; match via errors.Is.
// Every one of these marks a caller contract violation — the engine
// never degrades silently on bad configuration.
var (
	// ErrNilInput indicates a nil input grid.
	ErrNilInput = errors.New("conv: input grid is nil")
	// ErrBadStride indicates a stride below 1.
	ErrBadStride = errors.New("conv: stride must be >= 1")
	// ErrBadPadding indicates a negative padding.
	ErrBadPadding = errors.New("conv: padding must be >= 0")
	// ErrBadActivation indicates an activation value outside the enumeration.
	ErrBadActivation = errors.New("conv: unknown activation function")
	// ErrBadKernel indicates a kernel with nil weights, non-positive size,
	// or weights whose dimension disagrees with the declared size.
	ErrBadKernel = errors.New("conv: malformed kernel")
	// ErrCoordOutOfRange indicates a trace coordinate outside the
	// feature map produced by the same input/kernel/options.
	ErrCoordOutOfRange = errors.New("conv: output coordinate out of range")
)
