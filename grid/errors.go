package grid

import "errors"

// Sentinel errors for grid construction and element access.
// Callers match them via errors.Is; messages carry the "grid:" prefix
// for easy grepping across logs.
var (
	// ErrNegativeDim indicates a requested dimension below zero.
	ErrNegativeDim = errors.New("grid: dimension must be >= 0")
	// ErrOutOfRange indicates an (x,y) coordinate outside [0,dim)×[0,dim).
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNotSquare indicates row data whose shape is not dim×dim.
	ErrNotSquare = errors.New("grid: rows must form a square matrix")
	// ErrBadLength indicates flat data whose length is not dim*dim.
	ErrBadLength = errors.New("grid: flat data length must equal dim*dim")
	// ErrNaNInf indicates a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
)
