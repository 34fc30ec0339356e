// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2_5 = 2.5
	Weight4   = 4.0
)

// Concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// origin is the default display coordinate.
var origin = core.Point{}

// newSquare builds A–B–C–D–A with unit weights.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{VertexA, VertexB, VertexC, VertexD} {
		require.NoError(t, g.AddVertex(id, origin))
	}
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD}, {VertexD, VertexA}} {
		_, err := g.AddEdge(e[0], e[1], Weight1)
		require.NoError(t, err)
	}

	return g
}

// neighborIDs flattens a neighbor list into its IDs.
func neighborIDs(nbs []core.Neighbor) []string {
	ids := make([]string, len(nbs))
	for i, n := range nbs {
		ids[i] = n.ID
	}

	return ids
}
