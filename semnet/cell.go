// SPDX-License-Identifier: MIT

package semnet

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/transform"
)

// Cell is the set of object nodes extracted from one figure.
// Nodes are only ever appended, never removed.
type Cell struct {
	Name   string
	Figure *problem.Figure // nil for the synthesized cell

	nodes      map[string]*Node
	order      []string // insertion order of labels
	labels     labelAllocator
	catalogue  *transform.Catalogue
	identified bool
	seeded     bool
}

// NewCell builds a cell from fig. A nil fig yields an empty cell, as used for
// the synthesized solution. A nil cat selects transform.Default().
func NewCell(name string, fig *problem.Figure, cat *transform.Catalogue) *Cell {
	if cat == nil {
		cat = transform.Default()
	}
	c := &Cell{
		Name:      name,
		Figure:    fig,
		nodes:     make(map[string]*Node),
		catalogue: cat,
	}
	if fig == nil {
		return c
	}
	for _, o := range fig.Objects {
		c.insert(newNodeFromObject(o, cat))
	}
	return c
}

func (c *Cell) insert(n *Node) {
	c.nodes[n.Label] = n
	c.order = append(c.order, n.Label)
	c.labels.observe(n.Label)
}

// SeedIdentities numbers every node 1, 2, 3, ... in insertion order.
// It is meant for the anchor cell only and may run once.
func (c *Cell) SeedIdentities() error {
	if c.seeded {
		return fmt.Errorf("%w: %s", ErrAlreadySeeded, c.Name)
	}
	for i, label := range c.order {
		c.nodes[label].ID = i + 1
	}
	c.seeded = true
	c.identified = true
	return nil
}

// Identified reports whether every node of the cell carries an identity.
func (c *Cell) Identified() bool {
	if c.identified {
		return true
	}
	for _, n := range c.nodes {
		if !n.Identified() {
			return false
		}
	}
	c.identified = len(c.nodes) > 0
	return c.identified
}

// AddNode appends n under the next free label and returns that label.
func (c *Cell) AddNode(n *Node) string {
	n.Label = c.labels.next()
	c.insert(n)
	c.identified = false
	return n.Label
}

// Node returns the node called label, or nil.
func (c *Cell) Node(label string) *Node {
	return c.nodes[label]
}

// Nodes returns the nodes in insertion order.
func (c *Cell) Nodes() []*Node {
	out := make([]*Node, len(c.order))
	for i, label := range c.order {
		out[i] = c.nodes[label]
	}
	return out
}

// Len returns the number of nodes.
func (c *Cell) Len() int { return len(c.order) }

// NodesByID indexes the identified nodes by ID.
func (c *Cell) NodesByID() map[int]*Node {
	out := make(map[int]*Node, len(c.nodes))
	for _, n := range c.nodes {
		if n.Identified() {
			out[n.ID] = n
		}
	}
	return out
}

// IDs returns the identities present in the cell, ascending.
func (c *Cell) IDs() []int {
	ids := make([]int, 0, len(c.nodes))
	for id := range c.NodesByID() {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CompareWith scores how well other reproduces c, in [0,1].
//
// Cells with different node counts score 0. Otherwise each node of c, in
// insertion order, consumes the first unmatched node of other it is SameAs;
// the score is matched/len(c). Two empty cells score 1.
func (c *Cell) CompareWith(other *Cell) float64 {
	if c.Len() != other.Len() {
		return 0
	}
	if c.Len() == 0 {
		return 1
	}
	used := make([]bool, other.Len())
	theirs := other.Nodes()
	matched := 0
	for _, mine := range c.Nodes() {
		for j, n := range theirs {
			if used[j] || !mine.SameAs(n) {
				continue
			}
			used[j] = true
			matched++
			break
		}
	}
	return float64(matched) / float64(c.Len())
}

func (c *Cell) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Nodes())
}
