package core_test

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
)

// ExampleView_WithinThreshold shows how a threshold view changes the
// component structure without touching the graph.
func ExampleView_WithinThreshold() {
	g, err := core.Build([]int{4}, []core.Edge{
		{From: 1, To: 2, Cost: 500},
		{From: 2, To: 3, Cost: 700},
		{From: 1, To: 3, Cost: 1400},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, t := range []float64{0, 500, 1000} {
		fmt.Println(t, g.View().WithinThreshold(t).Components())
	}
	// Output:
	// 0 [[1] [2] [3] [4]]
	// 500 [[1 2] [3] [4]]
	// 1000 [[1 2 3] [4]]
}
