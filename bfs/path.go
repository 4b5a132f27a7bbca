package bfs

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/bfsgraph/core"
)

// FindPath returns a fewest-edges path from `from` to `to` as a sequence of
// labels, starting with from and ending with to.
//
// The traversal records, for each node, the first node that reported an edge
// into it (first writer wins). That is the node which discovered it, so the
// parent chain is a BFS tree and the reconstructed path is minimal in edge count.
//
// Behavior:
//   - from == to yields [from].
//   - An unreachable destination yields ErrNoPath; no partial path is returned.
//   - Unknown labels yield an error wrapping core.ErrUnknownLabel.
//   - Hooks in opts observe the underlying traversal.
//
// Complexity: O(V + E) time, O(V) memory.
func FindPath[T comparable](g *core.Graph[T], from, to T, opts ...Option) ([]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	src, err := g.Index(from)
	if err != nil {
		return nil, fmt.Errorf("bfs: FindPath source: %w", err)
	}
	dst, err := g.Index(to)
	if err != nil {
		return nil, fmt.Errorf("bfs: FindPath destination: %w", err)
	}

	o := resolve(opts)
	parents := make([]int, g.NumOfNodes())
	for i := range parents {
		parents[i] = -1
	}

	walk := o
	walk.OnEdge = func(u, v int) {
		if v != src && parents[v] < 0 {
			parents[v] = u
		}
		o.OnEdge(u, v)
	}
	if err = NewTraverser(g).run(src, walk); err != nil {
		return nil, fmt.Errorf("bfs: FindPath: %w", err)
	}

	if dst != src && parents[dst] < 0 {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, from, to)
	}

	// walk parent links back to the source, then flip
	indices := []int{dst}
	for cur := dst; cur != src; {
		cur = parents[cur]
		indices = append(indices, cur)
	}
	slices.Reverse(indices)

	path := make([]T, len(indices))
	for k, i := range indices {
		if path[k], err = g.Key(i); err != nil {
			return nil, fmt.Errorf("bfs: FindPath: %w", err)
		}
	}

	if ce := o.Logger.Check(zap.DebugLevel, "bfs: path found"); ce != nil {
		ce.Write(zap.Int("source", src), zap.Int("destination", dst), zap.Int("hops", len(path)-1))
	}

	return path, nil
}
