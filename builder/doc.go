// Package builder provides deterministic topology constructors for
// core.Graph[string]: paths, cycles, stars, complete and complete bipartite
// graphs, grids and small Platonic solids.
//
// It is used to produce fixtures for traversal tests, examples and benchmarks.
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(8),
//	)
//
// Constructors only insert edges, so core assigns node indices in edge
// emission order. On a directed graph every edge is inserted in both
// directions, keeping the topology symmetric.
//
// Label schemes (IDFn):
//
//	DefaultIDFn      "0","1",...
//	SymbolIDFn       "A".."Z"
//	ExcelColumnIDFn  "A".."Z","AA",...
//
// Errors:
//
//	ErrTooFewVertices   size parameter below the constructor minimum
//	ErrConstructFailed  nil constructor, nil graph or unknown solid
package builder
