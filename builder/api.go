// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// api.go: public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Constructors only insert edges; core.Graph registers labels on first sight,
//     so node indices follow the documented edge emission order.
//   • Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   • Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

// Constructor applies a deterministic topology to g using the resolved
// builderConfig. Constructors validate parameters before inserting anything.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph[string] with graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. The first constructor error is wrapped with "BuildGraph: %w" and
// returned; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add a second
// disjoint component with a different label scheme.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// link inserts u-v. Directed graphs get both u→v and v→u so every
// topology keeps its symmetric shape regardless of the graph mode.
func link(g *core.Graph[string], u, v string) {
	g.Insert(u, v)
	if g.Directed() {
		g.Insert(v, u)
	}
}
