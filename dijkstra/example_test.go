// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra_triangle() {
	// 1) Build the patch graph 1-2 (1), 2-3 (2), 1-3 (5).
	g, err := core.Build(nil, []core.Edge{
		{From: 1, To: 2, Cost: 1},
		{From: 2, To: 3, Cost: 2},
		{From: 1, To: 3, Cost: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run from patch 1 and ask for predecessors.
	res, err := dijkstra.Dijkstra(g.View(), dijkstra.Source(1), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Distance and path to patch 3 go through patch 2.
	d, _ := res.DistTo(3)
	path, _ := res.PathTo(3)
	fmt.Printf("dist[3]=%g path=%v\n", d, path)
	// Output: dist[3]=3 path=[1 2 3]
}

// ExampleDijkstra_house shows Dijkstra on a small weighted graph, then on the
// same graph with patch 5 removed through a view.
func ExampleDijkstra_house() {
	// Source graph g:
	//	    (5)
	//	  3/   \4
	//	  /     \
	//	(3)──10─(4)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(1)──4──(2)
	g, _ := core.Build(nil, []core.Edge{
		{From: 1, To: 2, Cost: 4},
		{From: 1, To: 3, Cost: 2},
		{From: 2, To: 4, Cost: 5},
		{From: 3, To: 4, Cost: 10},
		{From: 3, To: 5, Cost: 3},
		{From: 4, To: 5, Cost: 4},
	})
	res, _ := dijkstra.Dijkstra(g.View(), dijkstra.Source(1))
	d4, _ := res.DistTo(4)
	d5, _ := res.DistTo(5)
	fmt.Printf("dist[4]=%g dist[5]=%g\n", d4, d5)

	v, _ := g.View().Without(2)
	res, _ = dijkstra.Dijkstra(v, dijkstra.Source(1))
	d4, _ = res.DistTo(4)
	fmt.Printf("without 2: dist[4]=%g\n", d4)
	// Output:
	// dist[4]=9 dist[5]=5
	// without 2: dist[4]=9
}
