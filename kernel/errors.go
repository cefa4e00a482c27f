package kernel

import "errors"

// Sentinel errors for kernel generation; match via errors.Is.
var (
	// ErrSizeTooSmall indicates a requested kernel size below 3.
	ErrSizeTooSmall = errors.New("kernel: size must be at least 3")
	// ErrEvenSize indicates an even kernel size; the sliding window
	// needs a single center cell, so sizes must be odd.
	ErrEvenSize = errors.New("kernel: size must be odd")
)
