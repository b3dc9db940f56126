package resample_test

import (
	"fmt"

	"github.com/cwbudde/algo-src/dsp/pcm"
	"github.com/cwbudde/algo-src/dsp/resample"
)

func ExampleConvert() {
	in, _ := pcm.New(4000, 16, [][]float64{{0, 10, 20, 30}})

	r, err := resample.Convert(in, 0.5)
	if err != nil {
		panic(err)
	}

	fmt.Println(r.AchievedRate, r.Buffer.Channel(0))
	// Output:
	// 8000 [0 5 10 15 20 25 30 30]
}

func ExampleTargetRate() {
	rate, _ := resample.TargetRate(44100, 44100.0/16000)
	fmt.Println(rate)
	// Output:
	// 14700
}

func ExampleConverter_Convert() {
	c := resample.NewConverter(resample.WithoutAntiAlias())
	in, _ := pcm.New(8000, 16, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7}})

	r, err := c.Convert(in, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(r.Strategy, r.Stride, r.Buffer.SampleRate(), r.Buffer.Channel(0))
	// Output:
	// downsample 2 4000 [0 2 4 6]
}
