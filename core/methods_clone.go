// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so later AddEdge calls continue the textual sequence.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: vertices, edges, and neighbor lists.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		vertices:   make([]Vertex, len(g.vertices)),
		index:      make(map[string]int, len(g.index)),
		adjacency:  make([][]Neighbor, len(g.adjacency)),
		edges:      make([]Edge, len(g.edges)),
		nextEdgeID: g.nextEdgeID,
	}
	copy(clone.vertices, g.vertices)
	copy(clone.edges, g.edges)
	for id, i := range g.index {
		clone.index[id] = i
	}
	for i, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[i] = make([]Neighbor, len(list))
		copy(clone.adjacency[i], list)
	}

	return clone
}

// Clear removes all vertices and edges and resets the edge ID sequence.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = nil
	g.index = make(map[string]int)
	g.adjacency = nil
	g.edges = nil
	g.nextEdgeID = 0
}
