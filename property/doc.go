// SPDX-License-Identifier: MIT

// Package property holds the normalized attribute record of a single figure
// object: its visual properties and its intra-cell relations.
//
// What:
//
//   - Bag maps the fixed property vocabulary (shape, fill, size, angle,
//     alignment) to string values, applying defaults for angle ("0") and
//     alignment ("none").
//   - Relations (inside, above, ...) map to ordered lists of object labels.
//     They are accumulated and never overwritten.
//
// Bags follow value semantics: Clone and With return fresh copies, so a
// transformation applied to one object never leaks into another.
//
// Errors:
//
//   - ErrBadAngle: the angle property is not an integer.
package property
