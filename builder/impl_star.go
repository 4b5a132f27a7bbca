// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// impl_star.go: Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (hub + at least one leaf).
//   • Hub has the fixed label "Center"; leaves are idFn(0..n-2).
//   • Spokes are emitted Center-leaf in ascending leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			link(g, centerVertexID, cfg.idFn(i))
		}

		return nil
	}
}
