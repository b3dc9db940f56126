package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-src/dsp/conv"
)

func ExampleDirectValidTo() {
	input := []float64{1, 2, 3, 4}
	kernel := []float64{0.5, 0.5}

	dst := make([]float64, conv.ValidLen(len(input), len(kernel)))
	if err := conv.DirectValidTo(dst, input, kernel); err != nil {
		panic(err)
	}

	fmt.Println(dst)
	// Output:
	// [1.5 2.5 3.5]
}

func ExampleOverlapAdd_ProcessValidTo() {
	kernel := []float64{0.25, 0.5, 0.25}

	c, err := conv.NewOverlapAdd(kernel, 0)
	if err != nil {
		panic(err)
	}

	// Valid mode drops the len(kernel)-1 partial samples at each end.
	segment := []float64{0, 0, 4, 0, 0, 8, 8}
	dst := make([]float64, conv.ValidLen(len(segment), len(kernel)))

	if err := c.ProcessValidTo(dst, segment); err != nil {
		panic(err)
	}

	fmt.Printf("FFT size %d\n", c.FFTSize())
	fmt.Printf("%.2f\n", dst)
	// Output:
	// FFT size 512
	// [1.00 2.00 1.00 2.00 6.00]
}
