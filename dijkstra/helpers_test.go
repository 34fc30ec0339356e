// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// Delivery network used throughout the tests.
const (
	Warehouse  = "Warehouse"
	Downtown   = "Downtown"
	Airport    = "Airport"
	University = "University"
	Hospital   = "Hospital"
	Mall       = "Mall"
	Station    = "Station"
	Park       = "Park"
	Island     = "Island"
)

// eps absorbs float summation error in distance comparisons.
const eps = 1e-9

// frontiers lists every selection strategy; behavioral tests run against each.
var frontiers = []dijkstra.Frontier{dijkstra.FrontierScan, dijkstra.FrontierHeap}

type road struct {
	from, to string
	km       float64
}

var cityRoads = []road{
	{Warehouse, Downtown, 3.5},
	{Warehouse, Park, 2.1},
	{Warehouse, Mall, 4.2},
	{Downtown, Hospital, 1.8},
	{Downtown, University, 2.5},
	{Downtown, Park, 2.0},
	{Park, Mall, 2.3},
	{Mall, Airport, 3.1},
	{Mall, Station, 2.8},
	{Airport, Station, 3.5},
	{University, Station, 3.2},
	{University, Hospital, 2.7},
	{Hospital, Station, 4.1},
}

// newCity builds the eight-location delivery network.
func newCity(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	places := []struct {
		id string
		at core.Point
	}{
		{Warehouse, core.Point{X: 0, Y: 0}},
		{Downtown, core.Point{X: 2, Y: 3}},
		{Airport, core.Point{X: 5, Y: 1}},
		{University, core.Point{X: 3, Y: 5}},
		{Hospital, core.Point{X: 1, Y: 4}},
		{Mall, core.Point{X: 4, Y: 2}},
		{Station, core.Point{X: 6, Y: 4}},
		{Park, core.Point{X: 2, Y: 1}},
	}
	for _, p := range places {
		require.NoError(t, g.AddVertex(p.id, p.at))
	}
	for _, r := range cityRoads {
		_, err := g.AddEdge(r.from, r.to, r.km)
		require.NoError(t, err)
	}

	return g
}

// newGraph registers ids in order, then adds roads.
func newGraph(t testing.TB, ids []string, roads []road) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id, core.Point{}))
	}
	for _, r := range roads {
		_, err := g.AddEdge(r.from, r.to, r.km)
		require.NoError(t, err)
	}

	return g
}
