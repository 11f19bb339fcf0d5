package grid

import (
	"fmt"

	"github.com/katalvlaran/raven/transform"
)

// positionNames is the alphabet of grid positions, row-major.
const positionNames = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewLayout constructs a width×height Layout named "A", "B", ... row by row.
// Returns ErrEmptyGrid if either side is below one and ErrGridTooLarge if the
// grid has more cells than position names.
// Complexity: O(W×H) time and memory.
func NewLayout(width, height int) (*Layout, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if width*height > len(positionNames) {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, width, height)
	}
	l := &Layout{
		Width:     width,
		Height:    height,
		names:     make([][]string, height),
		positions: make(map[string][2]int, width*height),
	}
	for y := 0; y < height; y++ {
		l.names[y] = make([]string, width)
		for x := 0; x < width; x++ {
			name := string(positionNames[l.index(x, y)])
			l.names[y][x] = name
			l.positions[name] = [2]int{x, y}
		}
	}

	return l, nil
}

// InBounds reports whether (x,y) lies within the layout.
func (l *Layout) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (l *Layout) index(x, y int) int {
	return y*l.Width + x
}

// Name returns the position name of (x,y).
func (l *Layout) Name(x, y int) (string, error) {
	if !l.InBounds(x, y) {
		return "", fmt.Errorf("%w: (%d,%d)", ErrUnknownCell, x, y)
	}
	return l.names[y][x], nil
}

// Coordinate converts a position name back to (x,y).
func (l *Layout) Coordinate(name string) (x, y int, err error) {
	p, ok := l.positions[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownCell, name)
	}
	return p[0], p[1], nil
}

// Names returns every position name in row-major order.
func (l *Layout) Names() []string {
	out := make([]string, 0, l.Width*l.Height)
	for y := 0; y < l.Height; y++ {
		out = append(out, l.names[y]...)
	}
	return out
}

// Rows returns one Row group per grid row, top to bottom.
func (l *Layout) Rows() []Group {
	groups := make([]Group, l.Height)
	for y := 0; y < l.Height; y++ {
		cells := make([]string, l.Width)
		copy(cells, l.names[y])
		groups[y] = Group{Direction: transform.Row, Cells: cells}
	}
	return groups
}

// Columns returns one Column group per grid column, left to right.
func (l *Layout) Columns() []Group {
	groups := make([]Group, l.Width)
	for x := 0; x < l.Width; x++ {
		cells := make([]string, l.Height)
		for y := 0; y < l.Height; y++ {
			cells[y] = l.names[y][x]
		}
		groups[x] = Group{Direction: transform.Column, Cells: cells}
	}
	return groups
}

// Last returns the bottom-right position, conventionally the cell to solve.
func (l *Layout) Last() string {
	return l.names[l.Height-1][l.Width-1]
}
