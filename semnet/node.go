// SPDX-License-Identifier: MIT

package semnet

import (
	"fmt"

	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/property"
	"github.com/katalvlaran/raven/transform"
)

// Node is one object of a cell.
//
// Label names the node inside its cell only ('a', 'b', ...). ID links the
// node to "the same" object in other cells: 0 means unidentified, and once
// set the ID never changes. transformations memoizes, per direction, the
// rule that explained the change from this node to its counterpart.
type Node struct {
	Label string
	ID    int
	Props property.Bag

	object          *problem.Object
	catalogue       *transform.Catalogue
	transformations map[transform.Direction]transform.Record
}

// NewNode wraps props in an unidentified node that resolves rules through cat.
// A nil cat selects transform.Default().
func NewNode(label string, props property.Bag, cat *transform.Catalogue) *Node {
	if cat == nil {
		cat = transform.Default()
	}
	return &Node{
		Label:           label,
		Props:           props.Clone(),
		catalogue:       cat,
		transformations: make(map[transform.Direction]transform.Record),
	}
}

func newNodeFromObject(o *problem.Object, cat *transform.Catalogue) *Node {
	n := NewNode(o.Name, property.FromAttributes(o.Attributes), cat)
	n.object = o
	return n
}

// Object returns the loader object the node was built from, or nil for
// synthesized nodes.
func (n *Node) Object() *problem.Object { return n.object }

// Identified reports whether the node carries an identity.
func (n *Node) Identified() bool { return n.ID > 0 }

// SameAs reports property-wise equality after defaults.
func (n *Node) SameAs(other *Node) bool {
	return n.Props.Equal(other.Props)
}

// Transformation returns the rule recorded for dir.
func (n *Node) Transformation(dir transform.Direction) (transform.Record, bool) {
	rec, ok := n.transformations[dir]
	return rec, ok
}

// Transformations returns a copy of every recorded rule.
func (n *Node) Transformations() map[transform.Direction]transform.Record {
	out := make(map[transform.Direction]transform.Record, len(n.transformations))
	for d, r := range n.transformations {
		out[d] = r
	}
	return out
}

// RuleIndex returns the catalogue index of the rule called name, or -1.
func (n *Node) RuleIndex(name string) int {
	return n.catalogue.IndexOf(name)
}

// Explain returns the first catalogue rule explaining the change from n to
// other along dir, and its catalogue index. Nothing is mutated.
func (n *Node) Explain(other *Node, dir transform.Direction) (transform.Record, int, bool, error) {
	rec, idx, ok, err := n.catalogue.Detect(n.Props, other.Props, dir)
	if err != nil {
		return transform.Record{}, -1, false, fmt.Errorf("node %s→%s: %w", n.Label, other.Label, err)
	}
	return rec, idx, ok, nil
}

// MatchAgainst tries the catalogue rules in order against other. On the first
// match it links other to n's identity, records the rule for dir and returns
// true.
func (n *Node) MatchAgainst(other *Node, dir transform.Direction) (bool, error) {
	rec, _, ok, err := n.Explain(other, dir)
	if err != nil || !ok {
		return false, err
	}
	n.link(other, rec, dir)
	return true, nil
}

// link records rec for dir and hands n's identity to an unidentified other.
func (n *Node) link(other *Node, rec transform.Record, dir transform.Direction) {
	if other.ID == 0 {
		other.ID = n.ID
	}
	n.transformations[dir] = rec
}

// ApplyTransformation applies n's own recorded rule for dir. The result is
// target updated in place, or a new node when target is nil; its ID is n's.
func (n *Node) ApplyTransformation(dir transform.Direction, target *Node) (*Node, error) {
	rec, ok := n.transformations[dir]
	if !ok {
		return nil, fmt.Errorf("%w: node %s (id %d) has no %s transformation",
			ErrIdentityConsistency, n.Label, n.ID, dir)
	}
	return n.ApplyRecord(rec, dir, target)
}

// ApplyRecord applies rec, typically recorded on n's counterpart in another
// cell, to n's properties.
func (n *Node) ApplyRecord(rec transform.Record, dir transform.Direction, target *Node) (*Node, error) {
	var base *property.Bag
	if target != nil {
		base = &target.Props
	}
	props, err := n.catalogue.Apply(n.Props, base, rec, dir)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", n.Label, err)
	}
	if target == nil {
		target = NewNode("", props, n.catalogue)
	} else {
		target.Props = props
	}
	target.ID = n.ID

	return target, nil
}

func (n *Node) String() string {
	return fmt.Sprintf("%s#%d%s", n.Label, n.ID, n.Props)
}
