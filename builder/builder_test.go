// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
)

func TestPath_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.True(t, g.HasEdge("2", "3"))
	assert.False(t, g.HasEdge("0", "3"))

	v, err := g.Vertex("2")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 2}, v.At)

	for _, e := range g.Edges() {
		assert.Equal(t, 1.0, e.Weight, "default weight without rng")
	}
}

func TestCycle_Shape(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Cycle(5))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("E", "A"), "ring closes")
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 2, d, id)
	}
}

func TestComplete_EdgeCount(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		g, err := builder.BuildGraph(nil, builder.Complete(n))
		require.NoError(t, err)
		assert.Equal(t, n, g.VertexCount())
		assert.Equal(t, n*(n-1)/2, g.EdgeCount(), "n=%d", n)
	}
}

func TestGrid_IDsAndEdges(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithScale(2)}, builder.Grid(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	// rows*(cols-1) + (rows-1)*cols
	assert.Equal(t, 2*2+1*3, g.EdgeCount())
	assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(0, 1)))
	assert.True(t, g.HasEdge(builder.GridID(0, 2), builder.GridID(1, 2)))
	assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))

	v, err := g.Vertex("1,2")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 4, Y: 2}, v.At)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(42), builder.WithWeightRange(0.5, 9.5)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.Option{builder.WithSeed(42), builder.WithWeightRange(0.5, 9.5)},
		builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, g1.VertexList(), g2.VertexList())
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.5)
		assert.LessOrEqual(t, e.Weight, 9.5)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	g, err = builder.BuildGraph([]builder.Option{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.Option
		con  builder.Constructor
		want error
	}{
		{"path too short", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too short", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"complete empty", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"grid zero rows", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"sparse p>1", []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse p<0", []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"sparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.con)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConstructorErrors_CoreFailureIsWrapped(t *testing.T) {
	// An ID scheme that yields "" makes core reject the vertex.
	empty := func(int) string { return "" }
	_, err := builder.BuildGraph([]builder.Option{builder.WithIDScheme(empty)}, builder.Path(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(-1, 2) })
	assert.Panics(t, func() { builder.WithWeightRange(3, 2) })
	assert.Panics(t, func() { builder.WithScale(0) })
}

func TestComposition_SharedIDsMerge(t *testing.T) {
	// Path then Cycle over the same default IDs: AddVertex overwrites
	// coordinates but keeps registration order, edges accumulate.
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2+3, g.EdgeCount())
}

func TestSymbolIDFn(t *testing.T) {
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "V26", builder.SymbolIDFn(26))
}
