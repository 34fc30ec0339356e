// SPDX-License-Identifier: MIT

// Package bfs finds routes with the fewest stops, ignoring road lengths.
//
// What
//
//   - Explores locations in non-decreasing hop count from a start location.
//   - Returns a Result holding the visit Order, the Depth (hops) of every
//     reached location and the Parent links of the search tree.
//   - Hooks: OnVisit may abort the search with an error.
//   - Limits: WithMaxDepth bounds the hop count; WithFilterNeighbor skips roads.
//
// Determinism
//
//	Neighbors are expanded in road insertion order, so equal-hop alternatives
//	resolve to the road added first.
//
// Complexity (V = locations, E = roads)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
