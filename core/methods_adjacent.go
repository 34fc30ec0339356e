// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() keeps insertion order; NeighborIDs() is unique in first-seen order.

package core

import "fmt"

// Neighbors returns the ordered neighbor list of id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, resolve the vertex (ErrVertexNotFound).
//   - Stage 3: Copy the neighbor entries so callers never alias internal state.
//
// Behavior highlights:
//   - Parallel edges yield repeated IDs with their own weights.
//   - A self-loop appears once.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Neighbor, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// NeighborIDs returns the distinct adjacent vertex IDs of id, in the order
// they first appear in the neighbor list.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(nbs))
	ids := make([]string, 0, len(nbs))
	for _, n := range nbs {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		ids = append(ids, n.ID)
	}

	return ids, nil
}
