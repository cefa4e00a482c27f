package activation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownFunc indicates an activation name outside the fixed set;
// resolving names is the caller's configuration step, so this is a
// fail-fast contract violation, not a data condition.
var ErrUnknownFunc = errors.New("activation: unknown function name")

// Func enumerates the scalar nonlinearities. The zero value is None,
// so an unconfigured options struct applies the identity.
type Func int

const (
	// None is the identity: the raw sum passes through unchanged.
	None Func = iota
	// ReLU clamps negatives to zero: max(0, x).
	ReLU
	// Sigmoid squashes onto (0,1): 1 / (1 + e^−x).
	Sigmoid
	// Tanh squashes onto (−1,1).
	Tanh
)

// Funcs returns every activation in display order, for UI enumeration.
func Funcs() []Func {
	return []Func{None, ReLU, Sigmoid, Tanh}
}

// Valid reports whether f is one of the enumerated functions.
// Complexity: O(1).
func (f Func) Valid() bool {
	return f >= None && f <= Tanh
}

// String returns the lower-case configuration name; ByName inverts it.
func (f Func) String() string {
	switch f {
	case None:
		return "none"
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	default:
		return "unknown"
	}
}

// Apply evaluates the nonlinearity at x. Total on all finite inputs;
// values of f outside the enumeration behave as None (callers are
// expected to validate via Valid before reaching any hot loop).
// Complexity: O(1).
func (f Func) Apply(x float64) float64 {
	switch f {
	case ReLU:
		return math.Max(0, x)
	case Sigmoid:
		return 1 / (1 + math.Exp(-x))
	case Tanh:
		return math.Tanh(x)
	default:
		return x
	}
}

// ByName resolves a lower-case configuration string to its Func.
// Returns ErrUnknownFunc (wrapped with the offending name) for anything
// outside {"none", "relu", "sigmoid", "tanh"}.
// Complexity: O(1).
func ByName(name string) (Func, error) {
	switch name {
	case "none":
		return None, nil
	case "relu":
		return ReLU, nil
	case "sigmoid":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	default:
		return None, fmt.Errorf("%q: %w", name, ErrUnknownFunc)
	}
}
