package brownian_test

import (
	"fmt"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/hadjar2027/ssj/randvar"
)

// ExampleProcess_GeneratePathFrom builds a path from a fixed block of shocks.
func ExampleProcess_GeneratePathFrom() {
	p, err := brownian.New(2,
		[]float64{0, 0}, // x0
		[]float64{0, 0}, // mu
		[]float64{1, 1}, // sigma
		[][]float64{{1, 0}, {0, 1}},
		randvar.NewInversionGen(randvar.NewPCGStream(1)),
		brownian.WithObservationTimes([]float64{0, 1, 2}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := p.GeneratePathFrom([]float64{1, 0, 0, 1})
	for j := 0; j <= p.NumObservationTimes(); j++ {
		fmt.Println(path[2*j : 2*j+2])
	}

	// Output:
	// [0 0]
	// [1 0]
	// [1 1]
}

// ExampleProcess_NextObservation steps a drift-only process along an even grid.
func ExampleProcess_NextObservation() {
	p, _ := brownian.NewWithStream(1,
		[]float64{10}, []float64{-2}, []float64{0}, [][]float64{{1}},
		randvar.NewPCGStream(7),
		brownian.WithEvenObservationTimes(0, 0.5, 3),
	)

	for p.HasNextObservation() {
		x, _ := p.NextObservation()
		fmt.Println(p.CurrentObservationIndex(), x[0])
	}

	// Output:
	// 1 9
	// 2 8
	// 3 7
}
