// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries on top of the core types.
// Policy:
//   - No algorithms or hidden state here.

package core

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count vertices and edges; scan edges once for loops and total weight.
//
// Returns:
//   - GraphStats: value snapshot; independent of later mutation.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for i := range g.edges {
		if g.edges[i].From == g.edges[i].To {
			stats.LoopCount++
		}
		stats.TotalWeight += g.edges[i].Weight
	}

	return stats
}
