package connectivity_test

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
)

// ExampleAnalyze prints one row per patch, isolated patch 9 included.
func ExampleAnalyze() {
	g, _ := core.Build([]int{9}, []core.Edge{
		{From: 1, To: 2, Cost: 500},
		{From: 2, To: 3, Cost: 700},
		{From: 1, To: 3, Cost: 1400},
	})
	rows, err := connectivity.Analyze(g.View())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rows {
		fmt.Printf("%d deg=%d btw=%.2f ecc=%g\n", r.ID, r.Degree, r.Betweenness, r.Eccentricity)
	}
	// Output:
	// 1 deg=2 btw=0.00 ecc=1200
	// 2 deg=2 btw=1.00 ecc=700
	// 3 deg=2 btw=0.00 ecc=1200
	// 9 deg=0 btw=0.00 ecc=0
}
