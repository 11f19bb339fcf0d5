package transform_test

import (
	"fmt"

	"github.com/katalvlaran/raven/property"
	"github.com/katalvlaran/raven/transform"
)

// ExampleCatalogue_Detect shows the first matching rule winning: a pac-man
// turned from 0° to 180° along a row is a reflection, not a shape change.
func ExampleCatalogue_Detect() {
	cat := transform.Default()
	src := property.New(map[string]string{"shape": "pac-man", "fill": "yes", "size": "large", "angle": "0"})
	dst := src.With(property.Angle, "180")

	rec, idx, ok, err := cat.Detect(src, dst, transform.Row)
	fmt.Println(rec, idx, ok, err)

	out, _ := cat.Apply(src, nil, rec, transform.Column)
	fmt.Println("same record along the column:", out.Value(property.Angle))

	// Output:
	// reflected 2 true <nil>
	// same record along the column: 0
}
