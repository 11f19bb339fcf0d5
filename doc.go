// Package raven is an in-memory solver for verbal Raven's progressive
// matrices: grids of figures described as objects with attributes, where
// the last cell is missing and must be chosen among numbered candidates.
//
// The solver builds a semantic network. Objects of the first cell get
// identities, the identities are carried across each row and column by the
// simplest transformation that explains the change, and the recorded
// transformations are replayed to synthesize the missing cell. The candidate
// that reproduces it best is the answer, or the solver abstains.
//
// Packages:
//
//	property/  attribute bags with defaults and object relations
//	transform/ the ordered transformation catalogue and reflection tables
//	grid/      matrix layouts, axis groups and propagation tables (2×2)
//	semnet/    nodes, cells and the staged solving network
//	problem/   YAML problem files
//	config/    TOML solver settings and logging
//	agent/     strict→permissive retries, skips and batch solving
//	cmd/ravens the command-line front end
//
// Quick ASCII example:
//
//	A: filled square   B: empty square
//	C: filled circle   ?: empty circle
//
// Row A→B is "fill changed(fill=no)", column A→C is
// "shape changed(shape=circle)"; replaying both yields an empty circle.
//
//	go run ./cmd/ravens solve testdata/problems
package raven
