// SPDX-License-Identifier: MIT

// Package semnet solves verbal Raven's matrices with a semantic network:
// every grid cell is a set of object nodes, nodes are linked across cells by
// identity, and each link is explained by a transformation from the
// transform catalogue.
//
// Solving walks a fixed sequence of stages:
//
//	Initialized → IdentitiesSeeded → TransformationsGenerated →
//	SolutionSynthesized → Solved | Unconfident
//
//  1. NewNetwork builds one Cell per grid figure and per candidate answer.
//  2. SeedIdentities numbers the objects of the anchor cell 1, 2, 3, ...
//  3. GenerateTransformations walks every row and column group that does not
//     contain the missing cell, linking each object to its simplest
//     counterpart in the next cell and recording the matched rule.
//  4. GenerateSolutionCell replays the recorded rules onto the application
//     cells to synthesize the missing cell.
//  5. Solve compares the synthesized cell with every candidate and returns
//     the best one if it reaches the confidence threshold (1.0 by default).
//
// Concurrency: a Network and its Cells are not safe for concurrent use; solve
// independent problems with independent Networks.
//
// Errors:
//
//   - grid.ErrUnsupportedShape: the problem is not 2×2 (from NewNetwork).
//   - transform.ErrMissingReflectionMapping: reflection table miss.
//   - ErrNoConfidentSolution: no candidate reached the threshold.
//   - ErrIdentityConsistency: a node reached synthesis without a record.
//   - ErrStage: a stage was run out of order.
//   - ErrAlreadySeeded: SeedIdentities was called twice on a cell.
package semnet
