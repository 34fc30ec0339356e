// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable, index-based adjacency views for algorithms.
// Determinism:
//   - Index i is the i-th registered vertex; Arcs(i) keeps neighbor insertion order.
// Concurrency:
//   - Built under the read lock; afterwards shares nothing with the Graph.

package core

// Arc is one outgoing entry of a Snapshot adjacency list.
type Arc struct {
	// To is the index of the adjacent vertex.
	To int

	// Weight is the edge cost.
	Weight float64
}

// Snapshot is an immutable copy of a Graph's topology keyed by dense vertex
// indices. Algorithms index per-query working state by these positions.
type Snapshot struct {
	ids   []string
	index map[string]int
	arcs  [][]Arc
}

// Snapshot captures the current vertices and neighbor lists.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy IDs, the ID→index map and every neighbor list as []Arc.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		ids:   make([]string, len(g.vertices)),
		index: make(map[string]int, len(g.vertices)),
		arcs:  make([][]Arc, len(g.vertices)),
	}
	for i := range g.vertices {
		s.ids[i] = g.vertices[i].ID
		s.index[g.vertices[i].ID] = i
		list := g.adjacency[i]
		if len(list) == 0 {
			continue
		}
		arcs := make([]Arc, len(list))
		for j, n := range list {
			arcs[j] = Arc{To: g.index[n.ID], Weight: n.Weight}
		}
		s.arcs[i] = arcs
	}

	return s
}

// Len returns the number of vertices in the snapshot.
func (s *Snapshot) Len() int { return len(s.ids) }

// ID returns the vertex ID at index i.
func (s *Snapshot) ID(i int) string { return s.ids[i] }

// Index resolves a vertex ID to its index.
func (s *Snapshot) Index(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Arcs returns the neighbor list of vertex i. The slice must not be modified.
func (s *Snapshot) Arcs(i int) []Arc { return s.arcs[i] }
