// SPDX-License-Identifier: MIT

// Package dijkstra computes shortest routes on core.Graph road networks with
// non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, source, target) answers one source→target query and
//     returns the path, its total distance and whether the target is reachable.
//   - Dijkstra(g, Source(id)) computes distances (and optionally predecessors)
//     from one source to every vertex.
//   - Every call works on a private core.Snapshot and private working state
//     (distance, finalized flag, predecessor per vertex index). Graph vertices
//     carry no query state, so concurrent queries on one graph are safe and
//     repeated queries on an unmodified graph return identical results.
//
// Frontier strategies:
//
//   - FrontierScan (default): linear scan for the minimum-distance unfinalized
//     vertex. O(V²) time, O(V) space. Fine for city-sized networks of tens to
//     hundreds of locations.
//   - FrontierHeap: container/heap with lazy decrease-key.
//     O((V + E) log V) time, O(V + E) space.
//
// Both strategies break ties between equal tentative distances by the lowest
// vertex registration index, so they finalize vertices in the same order and
// return the same path when several shortest paths exist.
//
// Termination:
//
//   - ShortestPath stops as soon as the target is selected from the frontier;
//     its distance is final at that point because vertices are finalized in
//     non-decreasing distance order.
//   - Both calls stop when no unfinalized vertex has a finite distance.
//
// Options:
//
//	– Source(id):               starting vertex for Dijkstra (ignored by ShortestPath).
//	– WithReturnPath():         Dijkstra also returns the predecessor map.
//	– WithMaxDistance(d):       vertices farther than d are never finalized.
//	– WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable.
//	– WithFrontier(f):          FrontierScan or FrontierHeap.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrEmptySource     if Dijkstra is called without a Source.
//	– ErrVertexNotFound  if the source or target is not a registered vertex.
//
// An unreachable target is not an error: ShortestPath returns Found=false,
// an empty path and Distance=+Inf.
package dijkstra
