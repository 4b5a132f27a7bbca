// SPDX-License-Identifier: MIT
// Package: bfsgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: builder: parameter too small").
//   • Constructors never panic; option constructors (WithX) may, on programmer error.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition size)
// is smaller than the minimum the requested constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the builder could not apply a constructor,
// e.g. a nil Constructor was passed or an unknown Platonic solid was requested.
var ErrConstructFailed = errors.New("builder: construction failed")
