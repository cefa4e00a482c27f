// Package kernel defines the kernel Kind enum, the Kernel value, and the
// ordered Bank returned by Generate. Sentinel errors live in errors.go.
package kernel

import "github.com/katalvlaran/convolab/grid"

// Kind enumerates the fixed kernel family. The zero value is
// HorizontalEdge; Kinds() reports the canonical generation order.
type Kind int

const (
	// HorizontalEdge responds to horizontal intensity edges:
	// center row 2, every other cell −1.
	HorizontalEdge Kind = iota
	// VerticalEdge is the row/column mirror of HorizontalEdge:
	// center column 2, every other cell −1.
	VerticalEdge
	// Sharpen boosts the center pixel against its surroundings.
	// Size 3: center 5, orthogonal neighbors −1. Other sizes: center 9 only.
	Sharpen
	// Emboss casts a diagonal relief. Size 3: a fixed literal matrix.
	// Other sizes: identity fallback (zeros, center 1).
	Emboss
)

// String returns the display name shown in the UI and used as the
// FeatureMap / Trace filter name.
func (k Kind) String() string {
	switch k {
	case HorizontalEdge:
		return "Horizontal Edge"
	case VerticalEdge:
		return "Vertical Edge"
	case Sharpen:
		return "Sharpen"
	case Emboss:
		return "Emboss"
	default:
		return "Unknown"
	}
}

// Kinds returns the fixed generation order of the kernel family.
// Complexity: O(1) kinds, fresh slice per call.
func Kinds() []Kind {
	return []Kind{HorizontalEdge, VerticalEdge, Sharpen, Emboss}
}

// Kernel is one named square weight matrix of odd side length.
// Weights is owned by the kernel and must be treated as read-only;
// Generate always returns freshly built kernels, so a size change means
// re-fetching the bank, never observing an in-place update.
type Kernel struct {
	Kind    Kind       // which member of the family this is
	Name    string     // display name, Kind.String()
	Size    int        // odd side length, ≥ 3
	Weights *grid.Grid // Size×Size weight matrix; treat as read-only
}

// Bank is the ordered kernel set produced by Generate, in Kinds() order.
type Bank []Kernel

// ByKind returns the kernel of the given kind and whether it was found.
// Complexity: O(len(bank)).
func (b Bank) ByKind(k Kind) (Kernel, bool) {
	for _, krn := range b {
		if krn.Kind == k {
			return krn, true
		}
	}

	return Kernel{}, false
}
