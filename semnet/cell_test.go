package semnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/semnet"
)

func figure(name string, objs ...*problem.Object) *problem.Figure {
	return &problem.Figure{Name: name, Objects: objs}
}

func object(name string, kv ...string) *problem.Object {
	attrs := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs[kv[i]] = kv[i+1]
	}
	return &problem.Object{Name: name, Attributes: attrs}
}

func TestNewCell(t *testing.T) {
	fig := figure("A",
		object("a", "shape", "square"),
		object("b", "shape", "circle", "inside", "a"),
	)
	c := semnet.NewCell("A", fig, nil)

	require.Equal(t, 2, c.Len())
	assert.Same(t, fig, c.Figure)
	b := c.Node("b")
	require.NotNil(t, b)
	assert.Same(t, fig.Objects[1], b.Object())
	assert.Equal(t, []string{"a"}, b.Props.Relation("inside"))
	assert.Nil(t, c.Node("z"))
	assert.False(t, c.Identified())
}

func TestCell_SeedIdentities(t *testing.T) {
	c := semnet.NewCell("A", figure("A",
		object("x", "shape", "square"),
		object("y", "shape", "circle"),
		object("z", "shape", "plus"),
	), nil)

	require.NoError(t, c.SeedIdentities())
	assert.True(t, c.Identified())
	assert.Equal(t, []int{1, 2, 3}, c.IDs())
	assert.Equal(t, 2, c.Node("y").ID)

	require.ErrorIs(t, c.SeedIdentities(), semnet.ErrAlreadySeeded)
}

func TestCell_AddNode(t *testing.T) {
	c := semnet.NewCell("D", nil, nil)
	assert.Zero(t, c.Len())

	l1 := c.AddNode(semnet.NewNode("ignored", props("shape", "square"), nil))
	l2 := c.AddNode(semnet.NewNode("", props("shape", "circle"), nil))
	assert.Equal(t, "a", l1)
	assert.Equal(t, "b", l2)

	// labels stay unique after objects named out of sequence
	named := semnet.NewCell("B", figure("B", object("c", "shape", "plus")), nil)
	assert.Equal(t, "d", named.AddNode(semnet.NewNode("", props(), nil)))
	assert.False(t, named.Identified())
}

func TestCell_NodesByID(t *testing.T) {
	c := semnet.NewCell("B", figure("B",
		object("a", "shape", "square"),
		object("b", "shape", "circle"),
	), nil)
	c.Node("b").ID = 7

	byID := c.NodesByID()
	require.Len(t, byID, 1)
	assert.Equal(t, "b", byID[7].Label)
	assert.Equal(t, []int{7}, c.IDs())
}

func TestCell_CompareWith(t *testing.T) {
	sq := object("a", "shape", "square", "fill", "yes")
	ci := object("b", "shape", "circle")
	sqCopy := object("x", "shape", "square", "fill", "yes", "angle", "0")

	cases := []struct {
		name  string
		left  *problem.Figure
		right *problem.Figure
		want  float64
	}{
		{"both empty", figure("D"), figure("1"), 1},
		{"count differs", figure("D", sq), figure("1", sq, ci), 0},
		{"identical after defaults", figure("D", sq), figure("1", sqCopy), 1},
		{"order independent", figure("D", sq, ci), figure("1", ci, sqCopy), 1},
		{"half", figure("D", sq, ci), figure("1", sq, sqCopy), 0.5},
		{"disjoint", figure("D", ci), figure("1", sq), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := semnet.NewCell("D", tc.left, nil)
			r := semnet.NewCell("1", tc.right, nil)
			assert.InDelta(t, tc.want, l.CompareWith(r), 1e-9)
		})
	}
}

func TestCell_CompareWith_EachNodeMatchedOnce(t *testing.T) {
	sq := object("a", "shape", "square")
	l := semnet.NewCell("D", figure("D", sq, object("b", "shape", "square")), nil)
	r := semnet.NewCell("1", figure("1", sq, object("b", "shape", "circle")), nil)
	assert.InDelta(t, 0.5, l.CompareWith(r), 1e-9)
}
