// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// impl_path.go: Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; edges idFn(i)-idFn(i+1) for i = 0..n-2.
//   • Cycle: n ≥ 3; the same chain plus the closing edge idFn(n-1)-idFn(0).
//   • Node indices therefore equal i for label idFn(i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			link(g, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		// emit edges in ascending i; i == n-1 closes the ring
		for i := 0; i < n; i++ {
			link(g, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
