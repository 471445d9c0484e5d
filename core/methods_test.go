package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomtopo/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"), "re-adding is a no-op")

	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("z"))
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddEdge_Defaults(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	assert.True(t, g.HasVertex("a"), "endpoints are created")
	assert.True(t, g.HasEdge("b", "a"), "edges are undirected")

	_, err = g.AddEdge("b", "a")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "a")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_MultiAndExplicitID(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())

	for _, id := range []string{"20", "10"} {
		got, err := g.AddEdge("x", "y", core.WithEdgeID(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	_, err := g.AddEdge("y", "x", core.WithEdgeID("10"))
	assert.ErrorIs(t, err, core.ErrDuplicateEdgeID)

	auto, err := g.AddEdge("x", "x", core.WithEdgeID(""))
	require.NoError(t, err)
	assert.Equal(t, "e1", auto)

	assert.Equal(t, []string{"10", "20"}, g.EdgesBetween("y", "x"))
	assert.Nil(t, g.EdgesBetween("x", "nope"))

	e, err := g.GetEdge("20")
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: "20", From: "x", To: "y"}, e)
	_, err = g.GetEdge("missing")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "10", edges[0].ID)
	assert.Equal(t, "e1", edges[2].ID)
}

func TestNeighborIDs(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("m", "c")
	_, _ = g.AddEdge("m", "a")
	_, _ = g.AddEdge("a", "m")
	require.NoError(t, g.AddVertex("lonely"))

	got, err := g.NeighborIDs("m")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got, "parallel edges count once")

	got, err = g.NeighborIDs("lonely")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = g.NeighborIDs("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.AddEdge("hub", "spoke")
			assert.NoError(t, err)
			_ = g.Vertices()
		}()
	}
	wg.Wait()

	assert.Equal(t, n, g.EdgeCount())
	assert.Len(t, g.EdgesBetween("hub", "spoke"), n, "generated ids are unique")
}
