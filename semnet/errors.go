// SPDX-License-Identifier: MIT

package semnet

import "errors"

var (
	// ErrNoConfidentSolution indicates that no candidate matched the
	// synthesized cell well enough. Callers may skip or retry with a
	// relaxed catalogue.
	ErrNoConfidentSolution = errors.New("semnet: no confident solution")

	// ErrIdentityConsistency indicates a node reached synthesis without a
	// recorded transformation for the required direction.
	ErrIdentityConsistency = errors.New("semnet: identity consistency violation")

	// ErrStage indicates a solving stage was invoked out of order.
	ErrStage = errors.New("semnet: stage out of order")

	// ErrAlreadySeeded indicates SeedIdentities was called on a cell twice.
	ErrAlreadySeeded = errors.New("semnet: cell identities already seeded")

	// ErrNoCandidates indicates the problem has no candidate answers to score.
	ErrNoCandidates = errors.New("semnet: no candidate figures")
)
