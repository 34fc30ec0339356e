// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory weighted undirected graph
// used as the road network for route planning.
//
// The Graph G = (V,E) keeps:
//
//   - A vertex catalog in registration order. Each vertex has a unique ID and
//     an optional planar coordinate (display only, never used for costs).
//   - An ordered neighbor list per vertex. AddEdge(A, B, w) appends (A→B, w)
//     and (B→A, w); self-loops are stored once, parallel edges are kept as
//     separate entries.
//   - Monotonic edge IDs ("e1", "e2", …) for stable logs and goldens.
//
// Contracts:
//
//	– AddVertex(id, at)
//	    Registers id; re-registering replaces the coordinate, keeps edges and
//	    the original registration position.
//
//	– AddEdge(from, to, w)
//	    w must be finite and ≥ 0 (ErrInvalidWeight).
//	    Both endpoints must already be registered (ErrUnknownVertex); vertices
//	    are never created implicitly.
//
//	– Snapshot()
//	    Returns an immutable index-based copy of the adjacency for algorithms.
//	    Algorithms compute on snapshots so concurrent mutation cannot corrupt
//	    a running query.
//
// Determinism:
//
//   - Vertices() returns IDs in registration order.
//   - Neighbors(id) returns entries in insertion order.
//   - Edges() returns edges in creation (Edge.ID) order.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; a single sync.RWMutex guards
//     the vertex catalog, edge catalog and adjacency together.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrUnknownVertex   - AddEdge endpoint was never registered with AddVertex.
//	ErrInvalidWeight   - negative, NaN or infinite edge weight.
package core
