// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/raven/property"
)

// Option customizes a Catalogue before it is frozen.
// Option constructors panic on meaningless input; catalogue methods never panic.
type Option func(*catalogueConfig)

type catalogueConfig struct {
	permissive bool
	overrides  map[Kind]Rule
}

// WithPermissiveShapeChange turns "shape changed" into an unconditional
// fallback, so every pair of objects is explained by some rule.
func WithPermissiveShapeChange() Option {
	return func(c *catalogueConfig) { c.permissive = true }
}

// WithRule replaces the catalogue entry of r.Kind() with r. The slot, and so
// the tie-break order, is kept. Panics on nil.
func WithRule(r Rule) Option {
	if r == nil {
		panic("transform: WithRule(nil)")
	}
	return func(c *catalogueConfig) {
		if c.overrides == nil {
			c.overrides = make(map[Kind]Rule)
		}
		c.overrides[r.Kind()] = r
	}
}

// Catalogue is the ordered, immutable list of transformation rules.
// It is safe for concurrent use.
type Catalogue struct {
	rules []Rule
}

// New builds a catalogue in the fixed order
// unchanged, fill changed, reflected, rotated, scaled, deleted, shape changed.
func New(opts ...Option) *Catalogue {
	var cfg catalogueConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rules := []Rule{
		unchangedRule{},
		fillChangedRule{},
		reflectedRule{},
		placeholderRule{kind: Rotated},
		placeholderRule{kind: Scaled},
		placeholderRule{kind: Deleted},
		shapeChangedRule{permissive: cfg.permissive},
	}
	for i, r := range rules {
		if o, ok := cfg.overrides[r.Kind()]; ok {
			rules[i] = o
		}
	}

	return &Catalogue{rules: rules}
}

var (
	defaultCatalogue    = New()
	permissiveCatalogue = New(WithPermissiveShapeChange())
)

// Default returns the shared strict catalogue.
func Default() *Catalogue { return defaultCatalogue }

// Permissive returns the shared catalogue whose shape-changed rule is an
// unconditional fallback.
func Permissive() *Catalogue { return permissiveCatalogue }

// Len returns the number of rules.
func (c *Catalogue) Len() int { return len(c.rules) }

// At returns the rule at catalogue index i.
func (c *Catalogue) At(i int) (Rule, error) {
	if i < 0 || i >= len(c.rules) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownKind, i)
	}
	return c.rules[i], nil
}

// Rule returns the rule registered for kind.
func (c *Catalogue) Rule(kind Kind) (Rule, error) {
	for _, r := range c.rules {
		if r.Kind() == kind {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// IndexOf returns the catalogue index of the rule called name, or -1.
func (c *Catalogue) IndexOf(name string) int {
	for i, r := range c.rules {
		if r.Kind().String() == name {
			return i
		}
	}
	return -1
}

// Kinds returns the rule kinds in catalogue order.
func (c *Catalogue) Kinds() []Kind {
	out := make([]Kind, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Kind()
	}
	return out
}

// Detect tries every rule in order and returns the first match together
// with its catalogue index. ok is false when no rule explains the change.
func (c *Catalogue) Detect(src, dst property.Bag, dir Direction) (rec Record, index int, ok bool, err error) {
	if err = dir.Validate(); err != nil {
		return Record{}, -1, false, err
	}
	for i, r := range c.rules {
		rec, ok, err = r.Detect(src, dst, dir)
		if err != nil {
			return Record{}, -1, false, fmt.Errorf("%s: %w", r.Kind(), err)
		}
		if ok {
			return rec, i, true, nil
		}
	}

	return Record{}, -1, false, nil
}

// Apply dispatches rec to the rule of its kind.
func (c *Catalogue) Apply(src property.Bag, target *property.Bag, rec Record, dir Direction) (property.Bag, error) {
	if err := dir.Validate(); err != nil {
		return property.Bag{}, err
	}
	r, err := c.Rule(rec.Kind)
	if err != nil {
		return property.Bag{}, err
	}
	out, err := r.Apply(src, target, rec, dir)
	if err != nil {
		return property.Bag{}, fmt.Errorf("%s: %w", rec.Kind, err)
	}

	return out, nil
}
