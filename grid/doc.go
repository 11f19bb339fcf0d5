// Package grid describes the topology of a Raven's matrix: which figure
// sits at which position, and which cells are walked together when
// transformations are inferred and replayed.
//
// What:
//
//   - Layout names the cells of a W×H grid in row-major order ("A", "B", ...).
//   - Topology adds the solving tables: anchor cell, target cell, the axis
//     groups to walk (rows and columns) and the propagations that turn an
//     inferred transformation into the missing cell.
//
// Group and propagation tables are data, not control flow: supporting 3×3
// means registering one more Topology, not branching the solver.
//
// Complexity:
//
//   - NewLayout: O(W×H) time and memory.
//   - Name, Coordinate, InBounds: O(1).
//   - Rows, Columns: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrGridTooLarge: more cells than position letters.
//   - ErrUnsupportedShape: no topology is registered for the problem type.
//   - ErrUnknownCell: a cell name outside the layout.
package grid
