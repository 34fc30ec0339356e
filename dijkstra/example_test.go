// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// ExampleShortestPath routes a delivery across a small town.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, id := range []string{"Depot", "Bridge", "Market", "Harbor"} {
		_ = g.AddVertex(id, core.Point{})
	}
	_, _ = g.AddEdge("Depot", "Bridge", 1.5)
	_, _ = g.AddEdge("Bridge", "Harbor", 2.0)
	_, _ = g.AddEdge("Depot", "Market", 1.0)
	_, _ = g.AddEdge("Market", "Harbor", 4.0)

	res, err := dijkstra.ShortestPath(g, "Depot", "Harbor")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (%.1f km)\n", strings.Join(res.Path, " → "), res.Distance)
	for _, h := range res.Hops {
		fmt.Printf("  %s → %s: %.1f\n", h.From, h.To, h.Distance)
	}
	// Output:
	// Depot → Bridge → Harbor (3.5 km)
	//   Depot → Bridge: 1.5
	//   Bridge → Harbor: 2.0
}

// ExampleShortestPath_unreachable shows that a disconnected target is not an error.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	_ = g.AddVertex("Depot", core.Point{})
	_ = g.AddVertex("Lighthouse", core.Point{})

	res, err := dijkstra.ShortestPath(g, "Depot", "Lighthouse")
	fmt.Println(res.Found, res.Path == nil, res.Distance, err)
	// Output:
	// false true +Inf <nil>
}

// ExampleDijkstra computes all distances from one vertex and rebuilds a path.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id, core.Point{})
	}
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath(), dijkstra.WithFrontier(dijkstra.FrontierHeap))
	p, _ := dijkstra.PathTo(prev, "A", "C")
	fmt.Println(dist["C"], p)
	// Output:
	// 5 [A B C]
}
