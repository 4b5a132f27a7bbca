package bfs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bfsgraph/bfs"
	"github.com/katalvlaran/bfsgraph/builder"
	"github.com/katalvlaran/bfsgraph/core"
)

// recorder collects hook invocations as readable events.
type recorder struct {
	events []string
	pre    []int
	post   []int
	edges  [][2]int
}

func (r *recorder) options() []bfs.Option {
	return []bfs.Option{
		bfs.WithPreVisit(func(u int) {
			r.pre = append(r.pre, u)
			r.events = append(r.events, fmt.Sprintf("pre:%d", u))
		}),
		bfs.WithPostVisit(func(u int) {
			r.post = append(r.post, u)
			r.events = append(r.events, fmt.Sprintf("post:%d", u))
		}),
		bfs.WithOnEdge(func(u, v int) {
			r.edges = append(r.edges, [2]int{u, v})
			r.events = append(r.events, fmt.Sprintf("edge:%d-%d", u, v))
		}),
	}
}

// brokenAdjacency reports one node but fails to return its neighbors.
type brokenAdjacency struct{}

func (brokenAdjacency) NumOfNodes() int { return 1 }
func (brokenAdjacency) Edges(int) ([]int, error) {
	return nil, errors.New("storage offline")
}

// strayAdjacency reports two nodes but lists a neighbor outside that range.
type strayAdjacency struct{ neighbor int }

func (strayAdjacency) NumOfNodes() int { return 2 }
func (s strayAdjacency) Edges(u int) ([]int, error) {
	if u == 0 {
		return []int{1, s.neighbor}, nil
	}

	return []int{0}, nil
}

// TestTraverse_Errors verifies that invalid inputs are rejected.
func TestTraverse_Errors(t *testing.T) {
	assert.ErrorIs(t, bfs.Traverse(nil, 0), bfs.ErrGraphNil)

	g := core.NewGraph[string]()
	g.Insert("a", "b")
	for _, start := range []int{-1, 2, 10} {
		err := bfs.Traverse(g, start)
		assert.ErrorIs(t, err, bfs.ErrIndexOutOfRange, "start=%d", start)
		assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "start=%d", start)
	}

	empty := core.NewGraph[string]()
	assert.ErrorIs(t, bfs.Traverse(empty, 0), bfs.ErrIndexOutOfRange)

	assert.ErrorIs(t, bfs.Traverse(brokenAdjacency{}, 0), bfs.ErrNeighbors)
}

// TestTraverse_TypedNilGraph rejects a nil *core.Graph held in the interface.
func TestTraverse_TypedNilGraph(t *testing.T) {
	var g *core.Graph[string]
	assert.ErrorIs(t, bfs.Traverse(g, 0), bfs.ErrGraphNil)
	assert.ErrorIs(t, bfs.NewTraverser(g).Run(0), bfs.ErrGraphNil)
}

// TestTraverse_NeighborOutOfRange fails with ErrNeighbors instead of indexing past the flags.
func TestTraverse_NeighborOutOfRange(t *testing.T) {
	for _, v := range []int{2, 7, -1} {
		var r recorder
		err := bfs.Traverse(strayAdjacency{neighbor: v}, 0, r.options()...)
		assert.ErrorIs(t, err, bfs.ErrNeighbors, "neighbor=%d", v)
		assert.Equal(t, []int{0}, r.pre, "neighbor=%d", v)
		assert.Empty(t, r.post, "neighbor=%d", v)
	}

	_, err := bfs.ConnectedComponents(strayAdjacency{neighbor: 3})
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
}

// TestTraverse_HookSequence pins the exact pre/edge/post order on a triangle.
func TestTraverse_HookSequence(t *testing.T) {
	g := core.NewGraph[string]()
	g.Insert("a", "b")
	g.Insert("a", "c")
	g.Insert("b", "c")

	var r recorder
	require.NoError(t, bfs.Traverse(g, 0, r.options()...))

	want := []string{
		"pre:0", "edge:0-1", "edge:0-2", "post:0",
		"pre:1", "edge:1-2", "post:1",
		"pre:2", "post:2",
	}
	assert.Equal(t, want, r.events)
}

// TestTraverse_StartVisitedOnce ensures the start node is not re-enqueued by a back edge.
func TestTraverse_StartVisitedOnce(t *testing.T) {
	g := core.NewGraph[string]()
	g.Insert("a", "b")

	var r recorder
	require.NoError(t, bfs.Traverse(g, 0, r.options()...))
	assert.Equal(t, []int{0, 1}, r.pre)
	assert.Equal(t, []int{0, 1}, r.post)
	assert.Equal(t, [][2]int{{0, 1}}, r.edges)
}

// TestTraverse_Disconnected ensures only the start's component is explored.
func TestTraverse_Disconnected(t *testing.T) {
	g := core.NewGraph[string]()
	g.Insert("x", "y")
	g.Insert("p", "q")

	var r recorder
	require.NoError(t, bfs.Traverse(g, 2, r.options()...))
	assert.Equal(t, []int{2, 3}, r.pre)
}

// TestTraverse_Directed follows edges only forward.
func TestTraverse_Directed(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.Insert("a", "b")
	g.Insert("c", "a")

	var r recorder
	require.NoError(t, bfs.Traverse(g, 0, r.options()...))
	assert.Equal(t, []int{0, 1}, r.pre)

	r = recorder{}
	require.NoError(t, bfs.Traverse(g, 2, r.options()...))
	assert.Equal(t, []int{2, 0, 1}, r.pre)
}

// TestTraverse_SelfLoopAndParallel checks dedup of enqueueing and raw edge reporting.
func TestTraverse_SelfLoopAndParallel(t *testing.T) {
	g := core.NewGraph[string]()
	g.Insert("a", "a")
	g.Insert("a", "b")
	g.Insert("a", "b")

	var r recorder
	require.NoError(t, bfs.Traverse(g, 0, r.options()...))
	assert.Equal(t, []int{0, 1}, r.pre)
	assert.Equal(t, [][2]int{{0, 0}, {0, 0}, {0, 1}, {0, 1}}, r.edges)
}

// TestTraverse_LevelOrder checks breadth-first layering on a grid.
func TestTraverse_LevelOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)

	var order []string
	start, _ := g.Index("0,0")
	require.NoError(t, bfs.Traverse(g, start, bfs.WithPreVisit(func(u int) {
		l, _ := g.Key(u)
		order = append(order, l)
	})))
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "0,2", "1,1", "2,0", "1,2", "2,1", "2,2"}, order)
}

// TestTraverse_EdgeOncePerUndirectedEdge verifies that on a simple undirected
// graph OnEdge fires exactly once per edge of the explored component.
func TestTraverse_EdgeOncePerUndirectedEdge(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"grid":  builder.Grid(5, 7),
		"cube":  builder.PlatonicSolid(builder.Cube),
		"K6":    builder.Complete(6),
		"K3x5":  builder.CompleteBipartite(3, 5),
		"cycle": builder.Cycle(9),
	} {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, con)
			require.NoError(t, err)

			seen := map[[2]int]int{}
			require.NoError(t, bfs.Traverse(g, 0, bfs.WithOnEdge(func(u, v int) {
				if u > v {
					u, v = v, u
				}
				seen[[2]int{u, v}]++
			})))
			assert.Len(t, seen, g.NumOfEdges())
			for e, n := range seen {
				assert.Equal(t, 1, n, "edge %v", e)
			}
		})
	}
}

// TestTraverser_Reuse runs several traversals on one Traverser, including
// after the graph has grown.
func TestTraverser_Reuse(t *testing.T) {
	g := core.NewGraph[string]()
	g.Insert("a", "b")
	g.Insert("c", "d")

	tr := bfs.NewTraverser(g)
	for k := 0; k < 3; k++ {
		var r recorder
		require.NoError(t, tr.Run(0, r.options()...))
		assert.Equal(t, []int{0, 1}, r.pre, "run %d", k)
	}

	g.Insert("b", "c")
	g.Insert("d", "e")
	var r recorder
	require.NoError(t, tr.Run(4, r.options()...))
	assert.Equal(t, []int{4, 3, 2, 1, 0}, r.pre)

	r = recorder{}
	require.NoError(t, tr.Run(0, r.options()...))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r.pre)
}

// TestTraverse_NilHooksIgnored keeps defaults when nil hooks are passed.
func TestTraverse_NilHooksIgnored(t *testing.T) {
	g := core.NewGraph[string]()
	g.Insert("a", "b")
	assert.NoError(t, bfs.Traverse(g, 0,
		bfs.WithPreVisit(nil), bfs.WithPostVisit(nil), bfs.WithOnEdge(nil), bfs.WithLogger(nil)))
}

// TestTraverse_Logger asserts the traversal summary entry.
func TestTraverse_Logger(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := core.NewGraph[string]()
	g.Insert("a", "b")
	g.Insert("b", "c")
	g.Insert("x", "y")

	require.NoError(t, bfs.Traverse(g, 1, bfs.WithLogger(zap.New(obs))))

	entries := logs.FilterMessage("bfs: traversal complete").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(1), ctx["start"])
	assert.Equal(t, int64(3), ctx["visited"])
	assert.Equal(t, int64(5), ctx["nodes"])
}

func TestColor(t *testing.T) {
	assert.Equal(t, bfs.Black, bfs.White.Opposite())
	assert.Equal(t, bfs.White, bfs.Black.Opposite())
	assert.Equal(t, bfs.Uncolored, bfs.Uncolored.Opposite())
	assert.Equal(t, "White", bfs.White.String())
	assert.Equal(t, "Black", bfs.Black.String())
	assert.Equal(t, "Uncolored", bfs.Uncolored.String())
}
