package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raven/transform"
)

// TestReflectAngle_Symmetric verifies that rotation-invariant shapes always
// reflect to angle 0, along either axis and in either order.
func TestReflectAngle_Symmetric(t *testing.T) {
	for _, shape := range []string{"circle", "diamond", "plus", "square"} {
		for _, angle := range []int{0, 45, 90, 135, 180, 270} {
			a, err := transform.ReflectAngle(shape, angle, transform.Row)
			require.NoError(t, err)
			b, err := transform.ReflectAngle(shape, a, transform.Column)
			require.NoError(t, err)
			assert.Equal(t, 0, b, "%s at %d", shape, angle)

			c, err := transform.ReflectAngle(shape, angle, transform.Column)
			require.NoError(t, err)
			d, err := transform.ReflectAngle(shape, c, transform.Row)
			require.NoError(t, err)
			assert.Equal(t, 0, d, "%s at %d", shape, angle)
		}
	}
}

func TestReflectAngle_PacMan(t *testing.T) {
	cases := []struct {
		angle int
		dir   transform.Direction
		want  int
	}{
		{0, transform.Row, 180},
		{180, transform.Row, 0},
		{0, transform.Column, 0},
		{45, transform.Row, 135},
		{45, transform.Column, 315},
		{90, transform.Column, 270},
		{135, transform.Row, 45},
		{225, transform.Column, 135},
		{270, transform.Column, 90},
		{315, transform.Row, 225},
		{315, transform.Column, 45},
	}
	for _, tc := range cases {
		got, err := transform.ReflectAngle("pac-man", tc.angle, tc.dir)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "pac-man %d along %s", tc.angle, tc.dir)
	}
}

// TestReflectAngle_PacManRoundTrip checks that two reflections along the same
// axis restore the original angle.
func TestReflectAngle_PacManRoundTrip(t *testing.T) {
	once, err := transform.ReflectAngle("pac-man", 0, transform.Row)
	require.NoError(t, err)
	require.Equal(t, 180, once)

	twice, err := transform.ReflectAngle("pac-man", once, transform.Row)
	require.NoError(t, err)
	assert.Equal(t, 0, twice)
}

func TestReflectAngle_RightTriangle(t *testing.T) {
	got, err := transform.ReflectAngle("right triangle", 0, transform.Row)
	require.NoError(t, err)
	assert.Equal(t, 270, got)

	got, err = transform.ReflectAngle("right-triangle", 90, transform.Row)
	require.NoError(t, err)
	assert.Equal(t, 180, got, "hyphenated spelling resolves to the same table")

	got, err = transform.ReflectAngle("right triangle", 270, transform.Column)
	require.NoError(t, err)
	assert.Equal(t, 180, got)
}

func TestReflectAngle_Missing(t *testing.T) {
	cases := []struct {
		name  string
		shape string
		angle int
	}{
		{"UnknownShape", "heart", 0},
		{"PacManOffGrid", "pac-man", 30},
		{"TriangleOffGrid", "right triangle", 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transform.ReflectAngle(tc.shape, tc.angle, transform.Row)
			require.Error(t, err)
			assert.True(t, errors.Is(err, transform.ErrMissingReflectionMapping))

			var mm *transform.MissingMappingError
			require.True(t, errors.As(err, &mm))
			assert.Equal(t, "angle", mm.Table)
		})
	}
}

func TestReflectAlignment(t *testing.T) {
	cases := []struct {
		in, row, column string
	}{
		{"none", "none", "none"},
		{"top", "top", "bottom"},
		{"bottom", "bottom", "top"},
		{"left", "right", "left"},
		{"right", "left", "right"},
		{"top-left", "top-right", "bottom-left"},
		{"top-right", "top-left", "bottom-right"},
		{"bottom-left", "bottom-right", "top-left"},
		{"bottom-right", "bottom-left", "top-right"},
	}
	for _, tc := range cases {
		got, err := transform.ReflectAlignment(tc.in, transform.Row)
		require.NoError(t, err)
		assert.Equal(t, tc.row, got, "%s along row", tc.in)

		got, err = transform.ReflectAlignment(tc.in, transform.Column)
		require.NoError(t, err)
		assert.Equal(t, tc.column, got, "%s along column", tc.in)
	}

	_, err := transform.ReflectAlignment("center", transform.Row)
	assert.True(t, errors.Is(err, transform.ErrMissingReflectionMapping))
}

func TestReflect_UnsupportedDirection(t *testing.T) {
	_, err := transform.ReflectAngle("pac-man", 0, transform.Direction("diagonal"))
	assert.True(t, errors.Is(err, transform.ErrUnsupportedDirection))

	_, err = transform.ReflectAlignment("top", transform.Direction("diagonal"))
	assert.True(t, errors.Is(err, transform.ErrUnsupportedDirection))
}
