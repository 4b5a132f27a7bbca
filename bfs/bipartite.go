package bfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/bfsgraph/core"
)

// twoColor colors g component by component. Each root is colored White
// before its traversal starts. For every reported edge u→v, equal colors on
// both ends record a conflict; otherwise v takes the color opposite to u.
// A conflict does not stop the traversal.
func twoColor(g Adjacency, o Options) ([]Color, bool, error) {
	if isNil(g) {
		return nil, false, ErrGraphNil
	}
	colors := make([]Color, g.NumOfNodes())
	conflict := false

	walk := o
	walk.OnEdge = func(u, v int) {
		if colors[v] != Uncolored && colors[u] == colors[v] {
			conflict = true
		} else {
			colors[v] = colors[u].Opposite()
		}
		o.OnEdge(u, v)
	}

	if _, err := sweep(g, walk, func(root int) { colors[root] = White }); err != nil {
		return nil, false, err
	}

	return colors, !conflict, nil
}

// Bipartite reports whether g admits a two-coloring, checking every
// component. As with ConnectedComponents, a directed store is checked over
// its directed adjacency only; use an undirected store for this query.
//
// Complexity: O(V + E) time, O(V) memory.
func Bipartite(g Adjacency, opts ...Option) (bool, error) {
	o := resolve(opts)
	_, ok, err := twoColor(g, o)
	if err != nil {
		return false, fmt.Errorf("bfs: Bipartite: %w", err)
	}

	o.Logger.Debug("bfs: bipartite check", zap.Bool("bipartite", ok))

	return ok, nil
}

// Bipartition returns the two color classes of g: left holds the White
// nodes (every component root is White), right the Black ones, each in
// index order. Returns ErrNotBipartite if no two-coloring exists.
func Bipartition[T comparable](g *core.Graph[T], opts ...Option) (left, right []T, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	colors, ok, err := twoColor(g, resolve(opts))
	if err != nil {
		return nil, nil, fmt.Errorf("bfs: Bipartition: %w", err)
	}
	if !ok {
		return nil, nil, ErrNotBipartite
	}

	for i, c := range colors {
		label, err := g.Key(i)
		if err != nil {
			return nil, nil, fmt.Errorf("bfs: Bipartition: %w", err)
		}
		if c == Black {
			right = append(right, label)
		} else {
			left = append(left, label)
		}
	}

	return left, right, nil
}
