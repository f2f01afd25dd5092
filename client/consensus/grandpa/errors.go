// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"errors"
)

// ErrInvalidAuthorityList is returned when the authority list cannot
// form a valid non-empty weighted voter set.
var ErrInvalidAuthorityList = errors.New("invalid authority list")

// ErrInvalidJustificationTarget is returned when the justification
// commit target does not match the header the caller expects to be
// proven finalized.
var ErrInvalidJustificationTarget = errors.New("invalid justification target")

// ErrDuplicateVotesAncestries is returned when the votes ancestries
// contain duplicate headers and the active policy rejects that.
var ErrDuplicateVotesAncestries = errors.New("duplicate headers in votes ancestries")

// ErrTooLowCumulativeWeight is returned when the cumulative weight of
// valid precommits never reaches the supermajority threshold.
var ErrTooLowCumulativeWeight = errors.New("cumulative precommit weight is below the threshold")

// ErrRedundantVotesAncestries is returned when the votes ancestries
// contain headers not used to connect any vote to the base and the
// active policy rejects that.
var ErrRedundantVotesAncestries = errors.New("redundant headers in votes ancestries")

// Precommit errors, each corresponding to one policy callback
// rejecting the vote it was invoked for.
var (
	// ErrRedundantAuthorityVote rejects a vote processed after the
	// threshold has already been reached.
	ErrRedundantAuthorityVote = errors.New("redundant vote from authority")
	// ErrUnknownAuthorityVote rejects a vote from an authority that is
	// not in the voter set.
	ErrUnknownAuthorityVote = errors.New("vote from unknown authority")
	// ErrDuplicateAuthorityVote rejects a second vote from the same
	// authority.
	ErrDuplicateAuthorityVote = errors.New("duplicate vote from authority")
	// ErrInvalidAuthoritySignature rejects a vote whose signature does
	// not verify.
	ErrInvalidAuthoritySignature = errors.New("invalid authority signature")
	// ErrUnrelatedAncestryVote rejects a vote whose target has no
	// ancestry route to the justification base.
	ErrUnrelatedAncestryVote = errors.New("vote target is unrelated to the justification base")
)

var (
	errBadJustification         = errors.New("bad justification for header")
	errBlockNotDescendantOfBase = errors.New("block not descendant of base")
)
