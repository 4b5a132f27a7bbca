package bfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/bfsgraph/core"
)

// sweep launches one traversal from every node, in increasing index order,
// that no earlier traversal has pre-visited. onRoot runs before each launch.
// It returns the number of traversals launched.
func sweep(g Adjacency, o Options, onRoot func(root int)) (int, error) {
	if isNil(g) {
		return 0, ErrGraphNil
	}
	n := g.NumOfNodes()
	discovered := make([]bool, n)

	walk := o
	walk.PreVisit = func(u int) {
		discovered[u] = true
		o.PreVisit(u)
	}

	t := NewTraverser(g)
	launched := 0
	for root := 0; root < n; root++ {
		if discovered[root] {
			continue
		}
		onRoot(root)
		if err := t.run(root, walk); err != nil {
			return launched, err
		}
		launched++
	}

	return launched, nil
}

// ConnectedComponents returns the number of connected components of g.
//
// Every node not yet discovered by an earlier traversal starts a new one;
// the count of traversals launched is the result. The adjacency is taken as
// given: on a directed store this is not true weak connectivity (a node only
// reachable "backwards" starts its own traversal), so use an undirected
// store for this query.
//
// Complexity: O(V + E) time, O(V) memory.
func ConnectedComponents(g Adjacency, opts ...Option) (int, error) {
	o := resolve(opts)
	count, err := sweep(g, o, func(int) {})
	if err != nil {
		return 0, fmt.Errorf("bfs: ConnectedComponents: %w", err)
	}

	o.Logger.Debug("bfs: components counted", zap.Int("components", count))

	return count, nil
}

// Components groups the labels of g by connected component. Groups appear in
// the order their roots were launched, labels within a group in visit order.
// The same directed-store caveat as ConnectedComponents applies.
func Components[T comparable](g *core.Graph[T], opts ...Option) ([][]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)

	var groups [][]int
	walk := o
	walk.PreVisit = func(u int) {
		groups[len(groups)-1] = append(groups[len(groups)-1], u)
		o.PreVisit(u)
	}
	if _, err := sweep(g, walk, func(int) { groups = append(groups, nil) }); err != nil {
		return nil, fmt.Errorf("bfs: Components: %w", err)
	}

	out := make([][]T, len(groups))
	for k, members := range groups {
		out[k] = make([]T, len(members))
		for j, u := range members {
			label, err := g.Key(u)
			if err != nil {
				return nil, fmt.Errorf("bfs: Components: %w", err)
			}
			out[k][j] = label
		}
	}

	return out, nil
}
