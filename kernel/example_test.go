package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/convolab/kernel"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The user flips the kernel-size selector from 3 to 5. The caller
//	regenerates the whole bank and re-fetches every kernel — banks are
//	immutable, so the old one simply falls out of scope.
//
// Use case:
//
//	Kernel-size change handling in the visualizer.
//
// Complexity: O(size²) per kernel.
func ExampleGenerate() {
	bank, err := kernel.Generate(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, k := range bank {
		fmt.Printf("%s (%d×%d)\n", k.Name, k.Size, k.Size)
	}
	// Output:
	// Horizontal Edge (3×3)
	// Vertical Edge (3×3)
	// Sharpen (3×3)
	// Emboss (3×3)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBank_ByKind
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render the Sharpen kernel's weights next to the painted input, the way
//	the kernel inspector panel does.
//
// Complexity: O(len(bank)) lookup, O(size²) print.
func ExampleBank_ByKind() {
	bank, _ := kernel.Generate(3)
	k, ok := bank.ByKind(kernel.Sharpen)
	if !ok {
		fmt.Println("missing kernel")

		return
	}
	fmt.Print(k.Weights)
	// Output:
	// [0, -1, 0]
	// [-1, 5, -1]
	// [0, -1, 0]
}
