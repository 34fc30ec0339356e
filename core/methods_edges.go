// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (Edge.ID sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects two registered vertices with an undirected weighted edge.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and weight (ErrInvalidWeight).
//  2. Lock mu; both endpoints must be registered (ErrUnknownVertex).
//  3. Issue the next edge ID and store the edge.
//  4. Append (from→to, w) to from's list; unless from == to, append (to→from, w)
//     to to's list.
//
// Parallel edges are accepted; each becomes its own pair of neighbor entries.
// Negative weights are rejected here, which keeps Dijkstra's invariant valid
// for every graph this package can build.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return "", fmt.Errorf("%w: %s–%s weight=%g", ErrInvalidWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ok := g.index[from]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	eid := nextEdgeID(g)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})
	g.adjacency[fi] = append(g.adjacency[fi], Neighbor{ID: to, Weight: weight, EdgeID: eid})
	if fi != ti {
		g.adjacency[ti] = append(g.adjacency[ti], Neighbor{ID: from, Weight: weight, EdgeID: eid})
	}

	return eid, nil
}

// HasEdge reports whether at least one edge joins from and to (either orientation).
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fi, ok := g.index[from]
	if !ok {
		return false
	}
	for _, n := range g.adjacency[fi] {
		if n.ID == to {
			return true
		}
	}

	return false
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// validWeight reports whether w is usable as a shortest-path cost.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// nextEdgeID returns a new unique textual edge ID.
// Caller must hold mu for writing.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
