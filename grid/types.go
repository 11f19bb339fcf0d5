// Package grid defines core types and sentinel errors for grid topologies.
package grid

import (
	"errors"

	"github.com/katalvlaran/raven/transform"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrGridTooLarge indicates more cells than available position letters.
	ErrGridTooLarge = errors.New("grid: layout has more cells than position names")
	// ErrUnsupportedShape indicates a problem type with no registered topology (e.g. 3x3).
	ErrUnsupportedShape = errors.New("grid: unsupported matrix shape")
	// ErrUnknownCell indicates a cell name that is not part of the layout.
	ErrUnknownCell = errors.New("grid: unknown cell")
)

// Group is an ordered run of cells walked along one direction,
// e.g. {Row, [A B]}. Consecutive cells are compared pairwise.
type Group struct {
	Direction transform.Direction
	Cells     []string
}

// Contains reports whether name is part of the group.
func (g Group) Contains(name string) bool {
	for _, c := range g.Cells {
		if c == name {
			return true
		}
	}
	return false
}

// Propagation replays the transformation inferred on Source onto Apply.
// For a 2×2 row: Source = A (walked A→B), Apply = C, producing the target D.
type Propagation struct {
	Direction transform.Direction
	Source    string
	Apply     string
}

// Layout is an immutable W×H grid of named cells.
// names[y][x] holds the position name; positions maps names back to (x,y).
type Layout struct {
	Width, Height int
	names         [][]string
	positions     map[string][2]int
}

// Topology is a Layout plus the tables used to solve it.
type Topology struct {
	Type         string
	Layout       *Layout
	Anchor       string
	Target       string
	Groups       []Group
	Propagations []Propagation
}
