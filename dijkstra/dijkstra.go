// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on core graphs.
//
// Notes on implementation choices:
//
//   - All working state lives in a runner built per call over a core.Snapshot;
//     slices are indexed by vertex registration index.
//   - Only neighbors still in the frontier are relaxed, with a strict "<"
//     comparison, so the first of several equal-cost predecessors wins.
//   - The heap frontier uses lazy decrease-key: duplicates are pushed and
//     stale entries are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

// noVertex marks an absent predecessor.
const noVertex = -1

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: vertex ID → predecessor on one shortest path, "" for the source and
//     for unreachable vertices. Nil unless WithReturnPath() is given.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - FrontierScan: O(V² + E) time, O(V) space.
//   - FrontierHeap: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	snap := g.Snapshot()
	src, ok := snap.Index(cfg.Source)
	if !ok {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}

	r := newRunner(snap, cfg)
	r.run(src, noVertex)

	n := snap.Len()
	dist := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		dist[snap.ID(i)] = r.dist[i]
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	prev := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if r.prev[i] == noVertex {
			prev[snap.ID(i)] = ""
			continue
		}
		prev[snap.ID(i)] = snap.ID(r.prev[i])
	}

	return dist, prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *core.Snapshot // read-only topology
	options Options
	dist    []float64 // index → current best distance from the source
	prev    []int     // index → predecessor index, or noVertex
	via     []float64 // index → weight of the edge from prev
	done    []bool    // index → distance finalized (removed from the frontier)
	pq      nodePQ    // heap frontier; unused by FrontierScan
}

// newRunner allocates working state with every distance at +Inf and no predecessors.
func newRunner(snap *core.Snapshot, cfg Options) *runner {
	n := snap.Len()
	r := &runner{
		snap:    snap,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		via:     make([]float64, n),
		done:    make([]bool, n),
	}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		r.dist[i] = inf
		r.prev[i] = noVertex
	}
	if cfg.Frontier == FrontierHeap {
		r.pq = make(nodePQ, 0, n)
	}

	return r
}

// run expands vertices in non-decreasing distance order starting at src.
// If target is a valid index, run stops as soon as target is selected and
// reports true; otherwise it exhausts the reachable frontier.
func (r *runner) run(src, target int) bool {
	r.dist[src] = 0
	if r.options.Frontier == FrontierHeap {
		heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
	}

	for {
		u, ok := r.next()
		if !ok {
			return false
		}
		if u == target {
			return true
		}
		r.done[u] = true
		r.relax(u)
	}
}

// next selects the frontier vertex with the smallest (distance, index) pair.
// It reports false when no unfinalized vertex has a finite distance within MaxDistance.
func (r *runner) next() (int, bool) {
	if r.options.Frontier == FrontierHeap {
		return r.nextFromHeap()
	}

	best := noVertex
	bestDist := math.Inf(1)
	for i, d := range r.dist {
		if r.done[i] {
			continue
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == noVertex || bestDist > r.options.MaxDistance {
		return noVertex, false
	}

	return best, true
}

// nextFromHeap pops until a live entry surfaces.
func (r *runner) nextFromHeap() (int, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.done[item.id] || item.dist > r.dist[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			return noVertex, false
		}

		return item.id, true
	}

	return noVertex, false
}

// relax examines each arc leaving u and improves distances of frontier neighbors.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.snap.Arcs(u) {
		v := a.To
		if r.done[v] {
			continue
		}
		// Closed road.
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + a.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.via[v] = a.Weight
		if r.options.Frontier == FrontierHeap {
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}
}

// nodeItem represents a vertex index and its tentative distance in the heap.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id). Ordering ties by
// registration index makes the heap finalize vertices in the same order as
// the linear scan.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
