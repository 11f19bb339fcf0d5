// SPDX-License-Identifier: MIT

// Package transform is the ordered catalogue of object transformations used to
// explain how a figure object changes between two grid cells.
//
// What:
//
//   - Kind is a tagged variant naming each transformation: unchanged,
//     fill changed, reflected, rotated, scaled, deleted and shape changed.
//   - Every Rule owns a detector (does the change from src to dst follow this
//     rule?) and an applicator (produce the object resulting from applying the
//     rule to src).
//   - Catalogue keeps the rules in a fixed order. The first matching rule wins,
//     so simpler explanations are always preferred over lossier ones.
//
// Reflections are resolved through fixed per-shape angle tables and a
// nine-entry alignment table. Directions are Row and Column only.
//
// Errors:
//
//   - ErrMissingReflectionMapping: shape, angle or alignment has no reflection
//     entry (returned as *MissingMappingError).
//   - ErrUnsupportedDirection: direction is neither Row nor Column.
//   - ErrUnknownKind: a name or index does not denote a catalogue rule.
//
// All tables are read-only and safe to share between goroutines.
package transform
