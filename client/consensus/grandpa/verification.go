// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"golang.org/x/exp/constraints"
)

// IterationFlow is the control flow signal a policy callback returns
// for the precommit it was invoked on.
type IterationFlow uint8

const (
	// IterationFlowRun continues with the remaining checks for the
	// current precommit.
	IterationFlowRun IterationFlow = iota
	// IterationFlowSkip advances to the next precommit without further
	// checks on the current one.
	IterationFlowSkip
)

// JustificationVerifier is the set of callbacks invoked at each
// decision point of the justification verification algorithm. The
// shared orchestration in verifyJustificationWith calls them in a
// fixed order; a callback either steers the iteration (Run/Skip) or
// returns an error which aborts the whole verification. Callbacks are
// invoked with the index of the precommit they concern, so a policy
// can record per-vote diagnostics; the verification result itself
// carries none.
type JustificationVerifier[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID] interface {
	// ProcessDuplicateVotesAncestries is called once, before the vote
	// loop, with the indices of duplicate votes ancestries headers.
	ProcessDuplicateVotesAncestries(duplicateVotesAncestries []int) error
	// ProcessRedundantVote is called for a vote processed after the
	// threshold has already been reached.
	ProcessRedundantVote(precommitIdx int) (IterationFlow, error)
	// ProcessKnownAuthorityVote is called for a vote by an authority
	// present in the voter set.
	ProcessKnownAuthorityVote(precommitIdx int,
		signed finalityGrandpa.SignedPrecommit[H, N, S, ID]) (IterationFlow, error)
	// ProcessUnknownAuthorityVote is called for a vote by an authority
	// absent from the voter set. Whatever the policy decides, the vote
	// is never counted.
	ProcessUnknownAuthorityVote(precommitIdx int) error
	// ProcessUnrelatedAncestryVote is called for a vote whose target
	// has no ancestry route to the base. Even when the policy answers
	// Run, the vote contributes no weight since there is no route to
	// mark.
	ProcessUnrelatedAncestryVote(precommitIdx int) (IterationFlow, error)
	// ProcessInvalidSignatureVote is called for a vote whose signature
	// does not verify. Whatever the policy decides, the vote is never
	// counted.
	ProcessInvalidSignatureVote(precommitIdx int) error
	// ProcessValidVote is called for every vote that passed all
	// checks. It is bookkeeping only and cannot steer the iteration.
	ProcessValidVote(signed finalityGrandpa.SignedPrecommit[H, N, S, ID])
	// ProcessRedundantVotesAncestries is called once, after the vote
	// loop, with the ancestry hashes never used to connect any vote to
	// the base.
	ProcessRedundantVotesAncestries(redundantVotesAncestries []H) error
}

// verifyJustificationWith runs the justification verification
// algorithm under the given policy. It is deterministic: identical
// inputs yield identical results, regardless of the policy's internal
// bookkeeping.
func verifyJustificationWith[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]](
	verifier JustificationVerifier[H, N, S, ID],
	finalizedTarget finalityGrandpa.HashNumber[H, N],
	context JustificationVerificationContext[ID],
	justification *GrandpaJustification[H, N, S, ID, Hdr],
) error {
	if justification.Commit.TargetHash != finalizedTarget.Hash ||
		justification.Commit.TargetNumber != finalizedTarget.Number {
		return ErrInvalidJustificationTarget
	}

	threshold := context.VoterSet.Threshold()
	chain, duplicateVotesAncestries := newAncestryChain[H, N, Hdr](
		justification.Target(), justification.VotesAncestries)
	if len(duplicateVotesAncestries) > 0 {
		if err := verifier.ProcessDuplicateVotesAncestries(duplicateVotesAncestries); err != nil {
			return err
		}
	}

	var cumulativeWeight finalityGrandpa.VoterWeight
	for i, signed := range justification.Commit.Precommits {
		// once the threshold is reached, remaining votes are redundant
		// and the policy decides whether they are still validated
		if cumulativeWeight >= threshold {
			flow, err := verifier.ProcessRedundantVote(i)
			if err != nil {
				return err
			}
			if flow == IterationFlowSkip {
				continue
			}
		}

		authorityInfo := context.VoterSet.Get(signed.ID)
		if authorityInfo == nil {
			logger.Tracef("precommit %d: unknown authority, vote not counted", i)
			if err := verifier.ProcessUnknownAuthorityVote(i); err != nil {
				return err
			}
			continue
		}
		flow, err := verifier.ProcessKnownAuthorityVote(i, signed)
		if err != nil {
			return err
		}
		if flow == IterationFlowSkip {
			continue
		}

		route, routeErr := chain.ancestry(signed.Precommit.TargetHash, signed.Precommit.TargetNumber)
		if routeErr != nil {
			logger.Tracef("precommit %d: target unrelated to justification base", i)
			flow, err := verifier.ProcessUnrelatedAncestryVote(i)
			if err != nil {
				return err
			}
			if flow == IterationFlowSkip {
				continue
			}
		}

		valid, err := checkMessageSignature[H, N](signed.Precommit, signed.ID,
			signed.Signature, justification.Round, context.AuthoritySetID)
		if err != nil || !valid {
			logger.Tracef("precommit %d: invalid signature, vote not counted", i)
			if err := verifier.ProcessInvalidSignatureVote(i); err != nil {
				return err
			}
			continue
		}

		verifier.ProcessValidVote(signed)
		// a vote without a route to the base carries no weight even if
		// correctly signed
		if routeErr == nil {
			chain.markRouteAsVisited(route)
			cumulativeWeight = cumulativeWeight.SaturatingAdd(authorityInfo.Weight())
		}
	}

	if cumulativeWeight < threshold {
		return ErrTooLowCumulativeWeight
	}

	if !chain.isFullyVisited() {
		if err := verifier.ProcessRedundantVotesAncestries(chain.unvisitedHashes()); err != nil {
			return err
		}
	}
	return nil
}
