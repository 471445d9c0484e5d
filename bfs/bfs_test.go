package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomtopo/bfs"
	"github.com/katalvlaran/roomtopo/core"
)

// grid builds the undirected graph
//
//	a - b - c
//	|       |
//	d ----- e     f
func grid(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "d"}, {"d", "e"}, {"c", "e"}, {"e", "d"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("f"))
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := grid(t)
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "a", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(grid(t), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "d", "c", "e"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "d": 1, "c": 2, "e": 2}, res.Depth)
	assert.Equal(t, "d", res.Parent["e"], "e is discovered from d before c")
	_, hasRoot := res.Parent["a"]
	assert.False(t, hasRoot)

	path, err := res.PathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)

	path, err = res.PathTo("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)

	_, err = res.PathTo("f")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := grid(t)

	res, err := bfs.BFS(g, "a", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, res.Order)

	res, err = bfs.BFS(g, "a", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "d"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "e"}, res.Order)
	assert.Equal(t, 3, res.Depth["e"])
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []string
	res, err := bfs.BFS(grid(t), "e",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "c", "d", "b", "a"}, enq)
	assert.Equal(t, res.Order, deq)

	stop := errors.New("stop")
	res, err = bfs.BFS(grid(t), "a", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "d" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"a", "b", "d"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(grid(t), "a", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
