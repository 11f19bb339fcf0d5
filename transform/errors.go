// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingReflectionMapping indicates a reflection table has no entry for
	// the requested shape, angle or alignment.
	ErrMissingReflectionMapping = errors.New("transform: missing reflection mapping")

	// ErrUnsupportedDirection indicates a direction other than Row or Column.
	ErrUnsupportedDirection = errors.New("transform: unsupported direction")

	// ErrUnknownKind indicates a transformation name or index outside the catalogue.
	ErrUnknownKind = errors.New("transform: unknown transformation kind")

	// ErrMissingParam indicates a record lacks a parameter its rule needs to apply.
	ErrMissingParam = errors.New("transform: record parameter missing")
)

// MissingMappingError describes a reflection lookup miss.
// It matches ErrMissingReflectionMapping under errors.Is.
type MissingMappingError struct {
	Table     string // "angle" or "alignment"
	Shape     string // empty for alignment lookups
	Key       string // the angle or alignment that was not found
	Direction Direction
}

func (e *MissingMappingError) Error() string {
	if e.Shape != "" {
		return fmt.Sprintf("transform: no %s reflection for shape %q at %q along %s",
			e.Table, e.Shape, e.Key, e.Direction)
	}
	return fmt.Sprintf("transform: no %s reflection for %q along %s", e.Table, e.Key, e.Direction)
}

// Is reports whether target is ErrMissingReflectionMapping.
func (e *MissingMappingError) Is(target error) bool {
	return target == ErrMissingReflectionMapping
}
