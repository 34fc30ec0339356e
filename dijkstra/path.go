// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// ShortestPath returns the minimum-distance route from source to target in g.
//
// Implementation:
//   - Stage 1: Validate g (ErrNilGraph) and take a Snapshot.
//   - Stage 2: Resolve source and target (ErrVertexNotFound, wrapped with the name).
//   - Stage 3: Run the frontier loop with early exit on target.
//   - Stage 4: Walk predecessors back from target; a walk that does not end at
//     source yields the unreachable result.
//
// Behavior highlights:
//   - ShortestPath(g, s, s) returns Path=[s], Distance=0, Found=true.
//   - Unreachable targets return Found=false, Path=nil, Distance=+Inf, err=nil.
//   - Options.Source and ReturnPath are ignored.
//
// Complexity:
//   - FrontierScan: O(V² + E); FrontierHeap: O((V + E) log V).
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Result, error) {
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = source

	if g == nil {
		return Result{}, ErrNilGraph
	}

	snap := g.Snapshot()
	src, ok := snap.Index(source)
	if !ok {
		return Result{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	dst, ok := snap.Index(target)
	if !ok {
		return Result{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	r := newRunner(snap, cfg)
	if !r.run(src, dst) {
		return notFound(source, target), nil
	}

	return r.result(src, dst), nil
}

// result reconstructs the route to dst by walking predecessor links.
func (r *runner) result(src, dst int) Result {
	// A simple path visits each vertex at most once; the bound also guards
	// against a corrupted chain.
	chain := make([]int, 0, 8)
	for cur := dst; cur != noVertex; cur = r.prev[cur] {
		chain = append(chain, cur)
		if len(chain) > r.snap.Len() {
			break
		}
	}
	if chain[len(chain)-1] != src {
		return notFound(r.snap.ID(src), r.snap.ID(dst))
	}

	n := len(chain)
	path := make([]string, n)
	for i, idx := range chain {
		path[n-1-i] = r.snap.ID(idx)
	}
	hops := make([]Hop, 0, n-1)
	for i := n - 1; i > 0; i-- {
		to := chain[i-1]
		hops = append(hops, Hop{
			From:     r.snap.ID(chain[i]),
			To:       r.snap.ID(to),
			Distance: r.via[to],
		})
	}

	return Result{
		Source:   path[0],
		Target:   path[n-1],
		Path:     path,
		Hops:     hops,
		Distance: r.dist[dst],
		Found:    true,
	}
}

// PathTo rebuilds the vertex sequence from source to target out of a
// predecessor map returned by Dijkstra with WithReturnPath.
// It reports false when target is unreachable or the map is inconsistent.
func PathTo(prev map[string]string, source, target string) ([]string, bool) {
	if source == target {
		if _, ok := prev[target]; !ok {
			return nil, false
		}
		return []string{source}, true
	}

	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" || len(path) > len(prev) {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
