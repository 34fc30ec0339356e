// SPDX-License-Identifier: MIT

package network_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/network"
)

const eps = 1e-9

func TestSample_Shape(t *testing.T) {
	n := network.Sample()
	require.NoError(t, n.Validate())
	assert.Equal(t, "city", n.Name)
	assert.Len(t, n.Locations, 8)
	assert.Len(t, n.Roads, 13)

	// Fresh copy on every call.
	n.Locations[0].Name = "changed"
	assert.Equal(t, "Warehouse", network.Sample().Locations[0].Name)
}

func TestSample_DemoRoutes(t *testing.T) {
	g, err := network.Sample().Graph()
	require.NoError(t, err)

	want := map[[2]string]float64{
		{"Warehouse", "Airport"}: 7.3,
		{"Hospital", "Mall"}:     6.1,
		{"University", "Park"}:   4.5,
		{"Station", "Warehouse"}: 7.0,
	}
	for _, q := range network.SampleRoutes() {
		res, err := dijkstra.ShortestPath(g, q[0], q[1])
		require.NoError(t, err)
		require.True(t, res.Found, "%v", q)
		assert.InDelta(t, want[q], res.Distance, eps, "%v", q)
	}
}

func TestGraph_KeepsOrderAndCoordinates(t *testing.T) {
	g, err := network.Sample().Graph()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Warehouse", "Downtown", "Airport", "University", "Hospital", "Mall", "Station", "Park"},
		g.Vertices())
	v, err := g.Vertex("Station")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 6, Y: 4}, v.At)
	assert.Equal(t, 13, g.EdgeCount())
}

func TestGraph_PropagatesCoreErrors(t *testing.T) {
	n := &network.Network{
		Name:      "broken",
		Locations: []network.Location{{Name: "A"}},
		Roads:     []network.Road{{From: "A", To: "Ghost", Km: 1}},
	}
	_, err := n.Graph()
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	n.Roads = []network.Road{{From: "A", To: "A", Km: -2}}
	_, err = n.Graph()
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestValidate(t *testing.T) {
	cases := map[string]*network.Network{
		"nil":              nil,
		"no network name":  {Locations: []network.Location{{Name: "A"}}},
		"unnamed location": {Name: "n", Locations: []network.Location{{Name: ""}}},
		"duplicate":        {Name: "n", Locations: []network.Location{{Name: "A"}, {Name: "A"}}},
		"unknown end":      {Name: "n", Locations: []network.Location{{Name: "A"}}, Roads: []network.Road{{From: "A", To: "B", Km: 1}}},
		"negative":         {Name: "n", Locations: []network.Location{{Name: "A"}, {Name: "B"}}, Roads: []network.Road{{From: "A", To: "B", Km: -1}}},
	}
	for name, n := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, n.Validate(), network.ErrInvalidNetwork)
		})
	}
}

func TestLoad_CityFile(t *testing.T) {
	n, err := network.Load(filepath.Join("testdata", "city.hcl"))
	require.NoError(t, err)

	sample := network.Sample()
	assert.Equal(t, sample.Name, n.Name)
	assert.Equal(t, sample.Locations, n.Locations)
	require.Len(t, n.Roads, len(sample.Roads))
	for i, r := range n.Roads {
		assert.Equal(t, sample.Roads[i].From, r.From)
		assert.Equal(t, sample.Roads[i].To, r.To)
		assert.InDelta(t, sample.Roads[i].Km, r.Km, eps, "road %d", i)
	}
}

func TestParse_UnitsAndFunctions(t *testing.T) {
	n, err := network.Load(filepath.Join("testdata", "islands.hcl"))
	require.NoError(t, err)
	require.Len(t, n.Roads, 3)
	assert.InDelta(t, 6*1.609344, n.Roads[0].Km, eps)
	assert.InDelta(t, 1.0, n.Roads[1].Km, eps)
	assert.Equal(t, 4.0, n.Roads[2].Km)
}

func TestParse_OptionalCoordinates(t *testing.T) {
	src := "network \"c\" {\n  location \"A\" {\n  }\n  location \"B\" {\n    x = 3\n  }\n  road {\n    from = \"A\"\n    to   = \"B\"\n    km   = 2\n  }\n}\n"
	n, err := network.Parse([]byte(src), "coords.hcl")
	require.NoError(t, err)
	assert.Equal(t, []network.Location{{Name: "A"}, {Name: "B", X: 3}}, n.Locations)

	g, err := n.Graph()
	require.NoError(t, err)
	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, core.Point{}, v.At)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":          `network "x" {`,
		"no network":      ``,
		"two networks":    "network \"a\" {\n}\nnetwork \"b\" {\n}\n",
		"empty name":      "network \"\" {\n location \"A\" {\n }\n}\n",
		"unknown unit":    "network \"a\" {\n location \"A\" {\n x = 0\n y = 0\n }\n road {\n from = \"A\"\n to = \"A\"\n km = 3 * furlong\n }\n}\n",
		"undeclared road": "network \"a\" {\n location \"A\" {\n x = 0\n y = 0\n }\n road {\n from = \"A\"\n to = \"B\"\n km = 1\n }\n}\n",
		"negative length": "network \"a\" {\n location \"A\" {\n x = 0\n y = 0\n }\n road {\n from = \"A\"\n to = \"A\"\n km = -1\n }\n}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.Parse([]byte(src), name+".hcl")
			require.Error(t, err)
			assert.ErrorIs(t, err, network.ErrInvalidNetwork)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := network.Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}

func TestEncode_ParsesBack(t *testing.T) {
	src := network.Encode(network.Sample())
	n, err := network.Parse(src, "encoded.hcl")
	require.NoError(t, err)
	assert.Equal(t, network.Sample(), n)
}

func TestFromGraph(t *testing.T) {
	g, err := network.Sample().Graph()
	require.NoError(t, err)
	assert.Equal(t, network.Sample(), network.FromGraph("city", g))
}

func TestLocation(t *testing.T) {
	loc, ok := network.Sample().Location("Mall")
	assert.True(t, ok)
	assert.Equal(t, network.Location{Name: "Mall", X: 4, Y: 2}, loc)
	_, ok = network.Sample().Location("Moon")
	assert.False(t, ok)
}

func TestComponents(t *testing.T) {
	g, err := network.Sample().Graph()
	require.NoError(t, err)
	comps := network.Components(g)
	require.Len(t, comps, 1)
	assert.Equal(t, g.Vertices(), comps[0])

	n, err := network.Load(filepath.Join("testdata", "islands.hcl"))
	require.NoError(t, err)
	g, err = n.Graph()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"North", "South", "Ferry"}, {"Lighthouse", "Reef"}}, network.Components(g))

	assert.Empty(t, network.Components(core.NewGraph()))
}

func TestComponents_LoopsAndParallelRoads(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id, core.Point{}))
	}
	_, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 2)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"B", "C"}, {"A"}}, network.Components(g))
}
