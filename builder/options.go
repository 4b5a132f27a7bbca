// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil IDFn).
//   • Constructors themselves never panic.

package builder

// BuilderOption customizes label generation before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic label generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbolIDs sets the label scheme to SymbolIDFn ("A".."Z").
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the label scheme to ExcelColumnIDFn ("A".."Z","AA",...).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPartitionPrefix sets the CompleteBipartite side prefixes.
// Empty values keep the defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix = left
		c.rightPrefix = right
	}
}
