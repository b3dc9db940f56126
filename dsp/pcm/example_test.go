package pcm_test

import (
	"fmt"

	"github.com/cwbudde/algo-src/dsp/pcm"
)

func ExampleFromInterleaved() {
	b, err := pcm.FromInterleaved(48000, 16, 2, []float64{0.1, -0.1, 0.2, -0.2})
	if err != nil {
		panic(err)
	}

	fmt.Println(b.Channels(), b.Frames(), b.Channel(1))

	// Output:
	// 2 2 [-0.1 -0.2]
}
