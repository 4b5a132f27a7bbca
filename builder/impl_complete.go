// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// impl_complete.go: Complete(n) and CompleteBipartite(n1, n2) constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 2
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds K_n: one edge per unordered
// pair (i, j), i < j, emitted in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}. Left labels
// are leftPrefix+i, right labels rightPrefix+j (defaults "L0".., "R0"..).
// Edges are emitted left-major.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < n1; i++ {
			u := fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			for j := 0; j < n2; j++ {
				link(g, u, fmt.Sprintf("%s%d", cfg.rightPrefix, j))
			}
		}

		return nil
	}
}
