// SPDX-License-Identifier: MIT

package property

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrBadAngle indicates the angle property cannot be parsed as an integer.
var ErrBadAngle = errors.New("property: angle is not an integer")

// Property keys of the fixed vocabulary.
const (
	Shape     = "shape"
	Fill      = "fill"
	Size      = "size"
	Angle     = "angle"
	Alignment = "alignment"
)

// Relation keys recognised by FromAttributes.
const (
	Inside = "inside"
	Above  = "above"
)

// Default values applied when a property is absent.
const (
	DefaultAngle     = "0"
	DefaultAlignment = "none"
)

// Keys lists the property vocabulary in canonical order.
var Keys = []string{Shape, Fill, Size, Angle, Alignment}

// RelationKeys lists the relation vocabulary.
var RelationKeys = []string{Inside, Above}

// Bag is the attribute record of one object.
// The zero value is usable and behaves like an object with only defaults.
type Bag struct {
	values    map[string]string
	relations map[string][]string
}

// New builds a Bag from property values. Keys outside the vocabulary are
// ignored; defaults are applied for angle and alignment.
func New(values map[string]string) Bag {
	b := Bag{values: make(map[string]string, len(Keys))}
	for _, k := range Keys {
		if v, ok := values[k]; ok {
			b.values[k] = v
		}
	}
	b.applyDefaults()

	return b
}

// FromAttributes builds a Bag from a raw attribute mapping as produced by the
// problem loader. Relation attributes may carry several comma-separated labels.
func FromAttributes(attrs map[string]string) Bag {
	b := New(attrs)
	for _, k := range RelationKeys {
		raw, ok := attrs[k]
		if !ok {
			continue
		}
		for _, label := range strings.Split(raw, ",") {
			if label = strings.TrimSpace(label); label != "" {
				b.AddRelation(k, label)
			}
		}
	}

	return b
}

func (b *Bag) applyDefaults() {
	if b.values == nil {
		b.values = make(map[string]string, len(Keys))
	}
	if _, ok := b.values[Angle]; !ok {
		b.values[Angle] = DefaultAngle
	}
	if _, ok := b.values[Alignment]; !ok {
		b.values[Alignment] = DefaultAlignment
	}
}

// Get returns the value of key and whether it is present.
// Angle and alignment are always present.
func (b Bag) Get(key string) (string, bool) {
	switch key {
	case Angle:
		if v, ok := b.values[key]; ok {
			return v, true
		}
		return DefaultAngle, true
	case Alignment:
		if v, ok := b.values[key]; ok {
			return v, true
		}
		return DefaultAlignment, true
	}
	v, ok := b.values[key]

	return v, ok
}

// Value returns the value of key, or "" when absent.
func (b Bag) Value(key string) string {
	v, _ := b.Get(key)
	return v
}

// Has reports whether key is set.
func (b Bag) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Angle parses the angle property.
func (b Bag) Angle() (int, error) {
	raw := b.Value(Angle)
	a, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAngle, raw)
	}

	return a, nil
}

// With returns a copy of b with key set to value.
func (b Bag) With(key, value string) Bag {
	c := b.Clone()
	c.values[key] = value

	return c
}

// SameProperty reports whether key is present in both bags with equal values.
func (b Bag) SameProperty(key string, o Bag) bool {
	v1, ok1 := b.Get(key)
	v2, ok2 := o.Get(key)

	return ok1 && ok2 && v1 == v2
}

// Equal reports exact field-wise equality of properties after defaults.
// Relations are cell-scoped and do not take part in equality.
func (b Bag) Equal(o Bag) bool {
	for _, k := range Keys {
		v1, ok1 := b.Get(k)
		v2, ok2 := o.Get(k)
		if ok1 != ok2 || v1 != v2 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of b.
func (b Bag) Clone() Bag {
	c := Bag{values: make(map[string]string, len(b.values))}
	for k, v := range b.values {
		c.values[k] = v
	}
	if len(b.relations) > 0 {
		c.relations = make(map[string][]string, len(b.relations))
		for k, labels := range b.relations {
			c.relations[k] = append([]string(nil), labels...)
		}
	}
	c.applyDefaults()

	return c
}

// AddRelation appends labels to the relation name.
func (b *Bag) AddRelation(name string, labels ...string) {
	if b.relations == nil {
		b.relations = make(map[string][]string)
	}
	b.relations[name] = append(b.relations[name], labels...)
}

// Relation returns a copy of the labels recorded under name.
func (b Bag) Relation(name string) []string {
	return append([]string(nil), b.relations[name]...)
}

// Values returns a copy of the property values, defaults included.
func (b Bag) Values() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		if v, ok := b.Get(k); ok {
			out[k] = v
		}
	}

	return out
}

// String renders properties as "key=value" pairs in sorted key order.
func (b Bag) String() string {
	vals := b.Values()
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+vals[k])
	}

	return "{" + strings.Join(parts, " ") + "}"
}
