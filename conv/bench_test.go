package conv_test

import (
	"testing"

	"github.com/katalvlaran/convolab/activation"
	"github.com/katalvlaran/convolab/conv"
	"github.com/katalvlaran/convolab/grid"
	"github.com/katalvlaran/convolab/kernel"
)

// benchmarkConvolve runs one kernel over a dim×dim ramp input b.N times.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkConvolve(b *testing.B, inDim, kSize int, opts conv.Options) {
	in, err := grid.New(inDim)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for y := 0; y < inDim; y++ {
		for x := 0; x < inDim; x++ {
			_ = in.Set(x, y, float64(y*inDim+x)/float64(inDim*inDim))
		}
	}
	bank, err := kernel.Generate(kSize)
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = conv.Convolve(in, bank[0], opts); err != nil {
			b.Fatalf("Convolve failed: %v", err)
		}
	}
}

// BenchmarkConvolve_UIMax3 benchmarks the largest UI grid with a 3×3 kernel.
func BenchmarkConvolve_UIMax3(b *testing.B) {
	benchmarkConvolve(b, 14, 3, conv.DefaultOptions())
}

// BenchmarkConvolve_UIMax5 benchmarks the largest UI grid with a 5×5 kernel.
func BenchmarkConvolve_UIMax5(b *testing.B) {
	benchmarkConvolve(b, 14, 5, conv.DefaultOptions())
}

// BenchmarkConvolve_Sigmoid measures the activation overhead on the same grid.
func BenchmarkConvolve_Sigmoid(b *testing.B) {
	opts := conv.DefaultOptions()
	opts.Activation = activation.Sigmoid
	benchmarkConvolve(b, 14, 3, opts)
}

// BenchmarkConvolve_Large stresses a 100×100 grid well beyond UI sizes.
func BenchmarkConvolve_Large(b *testing.B) {
	benchmarkConvolve(b, 100, 3, conv.DefaultOptions())
}

// BenchmarkExplain measures the single-cell trace build on the UI maximum.
func BenchmarkExplain(b *testing.B) {
	in, err := grid.New(14)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	_ = in.Fill(0.5)
	bank, err := kernel.Generate(5)
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = conv.Explain(in, bank[2], conv.DefaultOptions(), 4, 4); err != nil {
			b.Fatalf("Explain failed: %v", err)
		}
	}
}
