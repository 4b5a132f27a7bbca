// Package bfsgraph is a small in-memory graph library built around one
// hook-driven breadth-first traversal.
//
// What is inside?
//
//	core/     Graph[T]: generic append-only adjacency-list store mapping
//	          labels of any comparable type to dense indices
//	bfs/      the traversal engine (pre-visit, edge, post-visit hooks) and
//	          the queries derived from it: FindPath, ConnectedComponents,
//	          Components, Bipartite, Bipartition
//	builder/  deterministic fixture topologies (path, cycle, star, complete,
//	          complete bipartite, grid, Platonic solids)
//
// Quick example:
//
//	    f───a───b───c
//	        │ ╱   │
//	        e─────d
//
//	g := core.NewGraph[string]()
//	g.Insert("f", "a")
//	g.Insert("a", "b")
//	g.Insert("a", "e")
//	g.Insert("b", "e")
//	g.Insert("b", "c")
//	g.Insert("e", "d")
//	g.Insert("c", "d")
//	path, _ := bfs.FindPath(g, "f", "c") // [f a b c]
//
// Logging goes through go.uber.org/zap at Debug level only and is off
// unless a logger is supplied with core.WithLogger or bfs.WithLogger.
//
// Nothing here locks. Build a graph from one goroutine, then query it.
package bfsgraph
