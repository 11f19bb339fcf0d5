// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is the grid axis along which a transformation is inferred or applied.
type Direction string

const (
	// Row walks left to right across a row.
	Row Direction = "row"
	// Column walks top to bottom down a column.
	Column Direction = "column"
)

// Validate returns ErrUnsupportedDirection unless d is Row or Column.
func (d Direction) Validate() error {
	switch d {
	case Row, Column:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedDirection, string(d))
}

// Kind names a transformation rule.
type Kind int

const (
	Unchanged Kind = iota
	FillChanged
	Reflected
	Rotated
	Scaled
	Deleted
	ShapeChanged
)

var kindNames = [...]string{
	Unchanged:    "unchanged",
	FillChanged:  "fill changed",
	Reflected:    "reflected",
	Rotated:      "rotated",
	Scaled:       "scaled",
	Deleted:      "deleted",
	ShapeChanged: "shape changed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a transformation name such as "fill changed".
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Record parameter keys.
const (
	ParamFill  = "fill"
	ParamShape = "shape"
)

// Record is a resolved transformation: the matching rule plus any
// rule-specific parameters, e.g. {fill changed, fill=yes}.
type Record struct {
	Kind   Kind              `json:"kind" yaml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// NewRecord builds a Record from kind and alternating key/value parameters.
func NewRecord(kind Kind, kv ...string) Record {
	r := Record{Kind: kind}
	for i := 0; i+1 < len(kv); i += 2 {
		if r.Params == nil {
			r.Params = make(map[string]string, len(kv)/2)
		}
		r.Params[kv[i]] = kv[i+1]
	}

	return r
}

// Name returns the rule name of the record.
func (r Record) Name() string { return r.Kind.String() }

// Param returns a parameter value.
func (r Record) Param(key string) (string, bool) {
	v, ok := r.Params[key]
	return v, ok
}

func (r Record) String() string {
	if len(r.Params) == 0 {
		return r.Name()
	}
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+r.Params[k])
	}

	return r.Name() + "(" + strings.Join(parts, ",") + ")"
}
