// SPDX-License-Identifier: MIT

// Package pathfinder finds shortest delivery routes over a road network.
//
// 🚀 What is pathfinder?
//
//	A small, thread-safe routing toolkit built around Dijkstra's algorithm:
//		• Core primitives: locations (vertices) and two-way roads (edges)
//		• Shortest paths: Dijkstra with a deterministic tie-break
//		• Fewest stops: breadth-first search ignoring road lengths
//		• Networks: HCL files with unit expressions, connectivity analysis
//		• Fixtures: deterministic paths, cycles, grids and random graphs
//
// Packages:
//
//	core/     — Graph, Vertex, Edge and index-based Snapshot views
//	dijkstra/ — ShortestPath (single pair) and Dijkstra (single source)
//	bfs/      — hop-count search and fewest-stop routes
//	network/  — named locations and roads, HCL Parse/Load/Encode, Components
//	builder/  — graph fixtures for tests and benchmarks
//	cmd/pathfinder — demo, route, interactive, serve and export modes
//
// Quick start:
//
//	g, _ := network.Sample().Graph()
//	res, _ := dijkstra.ShortestPath(g, "Warehouse", "Airport")
//	fmt.Println(res.Path, res.Distance) // [Warehouse Mall Airport] 7.3
//
// Installation:
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
