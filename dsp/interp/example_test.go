package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-src/dsp/interp"
)

func ExampleStretch() {
	fmt.Println(interp.Stretch([]float64{0, 10, 20, 30}, 0.5))
	// Output:
	// [0 5 10 15 20 25 30 30]
}
