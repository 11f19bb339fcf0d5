// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/raven/property"
)

// Rule is one catalogue entry: a detector paired with an applicator.
//
// Detect reports whether the change from src to dst is explained by the rule
// and returns the resolved Record. A plain "no match" is (Record{}, false, nil);
// errors are reserved for data-integrity violations such as a reflection
// table miss.
//
// Apply produces the properties that result from applying rec to src. When
// target is non-nil the rule updates a copy of *target instead of a copy of
// src. Neither src nor *target is mutated.
type Rule interface {
	Kind() Kind
	Detect(src, dst property.Bag, dir Direction) (Record, bool, error)
	Apply(src property.Bag, target *property.Bag, rec Record, dir Direction) (property.Bag, error)
}

// base returns the bag an applicator starts from.
func base(src property.Bag, target *property.Bag) property.Bag {
	if target != nil {
		return target.Clone()
	}
	return src.Clone()
}

type unchangedRule struct{}

func (unchangedRule) Kind() Kind { return Unchanged }

func (unchangedRule) Detect(src, dst property.Bag, _ Direction) (Record, bool, error) {
	if src.Equal(dst) {
		return NewRecord(Unchanged), true, nil
	}
	return Record{}, false, nil
}

// Apply copies the full source bag, overriding anything already in target.
func (unchangedRule) Apply(src property.Bag, _ *property.Bag, _ Record, _ Direction) (property.Bag, error) {
	return src.Clone(), nil
}

type fillChangedRule struct{}

func (fillChangedRule) Kind() Kind { return FillChanged }

func (fillChangedRule) Detect(src, dst property.Bag, _ Direction) (Record, bool, error) {
	if !src.SameProperty(property.Shape, dst) || !src.SameProperty(property.Size, dst) {
		return Record{}, false, nil
	}
	if !src.Has(property.Fill) || !dst.Has(property.Fill) {
		return Record{}, false, nil
	}
	if src.Value(property.Fill) == dst.Value(property.Fill) {
		return Record{}, false, nil
	}

	return NewRecord(FillChanged, ParamFill, dst.Value(property.Fill)), true, nil
}

func (fillChangedRule) Apply(src property.Bag, target *property.Bag, rec Record, _ Direction) (property.Bag, error) {
	fill, ok := rec.Param(ParamFill)
	if !ok {
		return property.Bag{}, fmt.Errorf("%w: %s needs %q", ErrMissingParam, rec.Name(), ParamFill)
	}

	return base(src, target).With(property.Fill, fill), nil
}

type reflectedRule struct{}

func (reflectedRule) Kind() Kind { return Reflected }

func (reflectedRule) Detect(src, dst property.Bag, dir Direction) (Record, bool, error) {
	for _, k := range []string{property.Shape, property.Size, property.Fill} {
		if !src.SameProperty(k, dst) {
			return Record{}, false, nil
		}
	}
	angle, alignment, err := reflectBag(src, dir)
	if err != nil {
		return Record{}, false, err
	}
	dstAngle, err := dst.Angle()
	if err != nil {
		return Record{}, false, err
	}
	if normalizeAngle(dstAngle) != angle || dst.Value(property.Alignment) != alignment {
		return Record{}, false, nil
	}

	return NewRecord(Reflected), true, nil
}

// Apply computes the reflection from src and writes angle and alignment
// onto the base bag.
func (reflectedRule) Apply(src property.Bag, target *property.Bag, _ Record, dir Direction) (property.Bag, error) {
	angle, alignment, err := reflectBag(src, dir)
	if err != nil {
		return property.Bag{}, err
	}

	return base(src, target).
		With(property.Angle, strconv.Itoa(angle)).
		With(property.Alignment, alignment), nil
}

func reflectBag(b property.Bag, dir Direction) (int, string, error) {
	srcAngle, err := b.Angle()
	if err != nil {
		return 0, "", err
	}
	angle, err := ReflectAngle(b.Value(property.Shape), srcAngle, dir)
	if err != nil {
		return 0, "", err
	}
	alignment, err := ReflectAlignment(b.Value(property.Alignment), dir)
	if err != nil {
		return 0, "", err
	}

	return angle, alignment, nil
}

// placeholderRule never matches. Rotated, Scaled and Deleted hold their
// catalogue slot so that rule order stays fixed when they are implemented.
type placeholderRule struct{ kind Kind }

func (p placeholderRule) Kind() Kind { return p.kind }

func (placeholderRule) Detect(_, _ property.Bag, _ Direction) (Record, bool, error) {
	return Record{}, false, nil
}

func (placeholderRule) Apply(src property.Bag, target *property.Bag, _ Record, _ Direction) (property.Bag, error) {
	return base(src, target), nil
}

// shapeChangedRule is the catalogue fallback. In permissive mode it explains
// any pair of objects.
type shapeChangedRule struct{ permissive bool }

func (shapeChangedRule) Kind() Kind { return ShapeChanged }

func (r shapeChangedRule) Detect(src, dst property.Bag, _ Direction) (Record, bool, error) {
	if !r.permissive && src.Value(property.Shape) == dst.Value(property.Shape) {
		return Record{}, false, nil
	}
	return NewRecord(ShapeChanged, ParamShape, dst.Value(property.Shape)), true, nil
}

func (shapeChangedRule) Apply(src property.Bag, target *property.Bag, rec Record, _ Direction) (property.Bag, error) {
	shape, ok := rec.Param(ParamShape)
	if !ok {
		return property.Bag{}, fmt.Errorf("%w: %s needs %q", ErrMissingParam, rec.Name(), ParamShape)
	}

	return base(src, target).With(property.Shape, shape), nil
}
