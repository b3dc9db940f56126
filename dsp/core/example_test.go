package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-src/dsp/core"
)

func ExampleFoldFrequency() {
	// A 9 kHz tone sampled at 12 kHz shows up at 3 kHz.
	fmt.Println(core.FoldFrequency(9000, 12000))

	// Output:
	// 3000
}

func ExampleRoundToInt() {
	fmt.Println(core.RoundToInt(44100/0.3), core.RoundToInt(2.5))

	// Output:
	// 147000 3
}
