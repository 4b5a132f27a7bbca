// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (a lone cell has no edge to insert).
//   • Labels are "r,c" coordinates, independent of idFn.
//   • Row-major emission: for each cell, right neighbor first, then bottom neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, at least 2 cells): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					link(g, u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					link(g, u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}
