// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// impl_platonic.go: PlatonicSolid(name) constructor and its canonical edge sets.
//
// Determinism:
//   • Labels are idFn(i) for the documented vertex numbering of each solid.
//   • Edge emission follows the fixed order of platonicEdgeSets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsgraph/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota // V=4, E=6
	Cube                            // V=8, E=12
	Octahedron                      // V=6, E=12
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	default:
		return "Unknown"
	}
}

// chord is an unordered vertex pair {U, V} of a canonical shell.
type chord struct{ U, V int }

var platonicEdgeSets = map[PlatonicName][]chord{
	// complete graph K4 on 0..3
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// Bottom face 0-1-2-3-0, top face 4-5-6-7-4, verticals i-i+4.
	Cube: {
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7}, {U: 5, V: 6}, {U: 6, V: 7},
	},

	// Poles 0 and 1, equator 2-4-3-5-2.
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},
}

// PlatonicSolid returns a Constructor that builds the chosen solid's shell.
// An unknown name yields ErrConstructFailed.
// Complexity: O(E) with E ≤ 12.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}
		for _, ch := range edges {
			link(g, cfg.idFn(ch.U), cfg.idFn(ch.V))
		}

		return nil
	}
}
