package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/raven/transform"
)

// Problem type names.
const (
	Type2x2 = "2x2"
	Type3x3 = "3x3"
)

// topologies holds one builder per supported problem type.
// 3x3 is not registered yet.
var topologies = map[string]func() (*Topology, error){
	Type2x2: twoByTwo,
}

// For returns the topology registered for problemType ("2x2").
// Any other type, 3x3 included, yields ErrUnsupportedShape.
func For(problemType string) (*Topology, error) {
	build, ok := topologies[strings.TrimSpace(problemType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedShape, problemType)
	}
	return build()
}

// twoByTwo builds the 2×2 tables:
//
//	A   B     rows:    A→B (C→D holds the target and is skipped)
//	C   ?     columns: A→C (B→D holds the target and is skipped)
//
// Propagations replay A→B onto C and A→C onto B to produce D.
func twoByTwo() (*Topology, error) {
	l, err := NewLayout(2, 2)
	if err != nil {
		return nil, err
	}
	anchor, _ := l.Name(0, 0)
	groups := append(l.Rows(), l.Columns()...)

	return &Topology{
		Type:   Type2x2,
		Layout: l,
		Anchor: anchor,
		Target: l.Last(),
		Groups: groups,
		Propagations: []Propagation{
			{Direction: transform.Row, Source: "A", Apply: "C"},
			{Direction: transform.Column, Source: "A", Apply: "B"},
		},
	}, nil
}

// Cells returns the problem cells of the topology, target excluded.
func (t *Topology) Cells() []string {
	names := t.Layout.Names()
	out := names[:0:0]
	for _, n := range names {
		if n != t.Target {
			out = append(out, n)
		}
	}
	return out
}

// ActiveGroups returns the groups that do not contain the target cell.
func (t *Topology) ActiveGroups() []Group {
	var out []Group
	for _, g := range t.Groups {
		if !g.Contains(t.Target) {
			out = append(out, g)
		}
	}
	return out
}
