// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in registration order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddVertex registers a vertex with the given display coordinate.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, overwrite the coordinate if id is known.
//   - Stage 3: Otherwise append a new vertex record and an empty neighbor list.
//
// Behavior highlights:
//   - Re-registering an existing ID is not an error; the coordinate is
//     replaced, the neighbor list and registration position are kept.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, at Point) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if i, exists := g.index[id]; exists {
		g.vertices[i].At = at
		return nil
	}

	g.index[id] = len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, At: at})
	g.adjacency = append(g.adjacency, nil)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id was never registered (wrapped with the ID).
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return g.vertices[i], nil
}

// Vertices returns all vertex IDs in registration order.
// The returned slice is owned by the caller.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, len(g.vertices))
	for i := range g.vertices {
		ids[i] = g.vertices[i].ID
	}

	return ids
}

// VertexList returns copies of all vertex records in registration order.
func (g *Graph) VertexList() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of neighbor entries of id.
// A self-loop contributes one entry.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.adjacency[i]), nil
}
