// SPDX-License-Identifier: MIT

package network

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/pathfinder/core"
)

// Components groups g's vertices into connected components. Members of each
// component keep registration order; components are ordered largest first,
// ties by their earliest-registered member. A network with more than one
// component has locations no delivery can reach from the others.
func Components(g *core.Graph) [][]string {
	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	ug := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To || ug.HasEdgeBetween(index[e.From], index[e.To]) {
			continue
		}
		ug.SetEdge(ug.NewEdge(ug.Node(index[e.From]), ug.Node(index[e.To])))
	}

	parts := topo.ConnectedComponents(ug)
	out := make([][]int64, 0, len(parts))
	for _, part := range parts {
		members := make([]int64, len(part))
		for i, n := range part {
			members[i] = n.ID()
		}
		sort.Slice(members, func(a, b int) bool { return members[a] < members[b] })
		out = append(out, members)
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) != len(out[b]) {
			return len(out[a]) > len(out[b])
		}
		return out[a][0] < out[b][0]
	})

	named := make([][]string, len(out))
	for i, members := range out {
		named[i] = make([]string, len(members))
		for j, id := range members {
			named[i][j] = ids[id]
		}
	}

	return named
}
