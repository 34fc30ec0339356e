// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Neighbor, Graph declarations, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownVertex indicates AddEdge referenced a vertex that was never
	// registered through AddVertex.
	ErrUnknownVertex = errors.New("core: edge endpoint is not a registered vertex")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be finite and non-negative")
)

// Point is a planar coordinate attached to a vertex for display purposes.
type Point struct {
	X float64
	Y float64
}

// Vertex represents a named node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// At is the display coordinate. It never influences path costs.
	At Point
}

// Edge represents an undirected weighted connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoints in the order they were passed to AddEdge.
	From string
	To   string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Neighbor is one entry of a vertex's ordered neighbor list.
type Neighbor struct {
	// ID of the adjacent vertex.
	ID string

	// Weight of the connecting edge.
	Weight float64

	// EdgeID of the edge this entry was created from.
	EdgeID string
}

// GraphStats is a read-only summary produced by Graph.Stats.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	LoopCount   int
	TotalWeight float64
}

// Graph is the core in-memory road graph.
//
// Storage is index based: vertices[i] is the vertex registered i-th, and
// adjacency[i] is its neighbor list. index maps IDs back to positions.
// mu guards every field.
type Graph struct {
	mu sync.RWMutex

	vertices  []Vertex
	index     map[string]int
	adjacency [][]Neighbor
	edges     []Edge

	// nextEdgeID is the sequence number of the last issued edge ID.
	nextEdgeID uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
