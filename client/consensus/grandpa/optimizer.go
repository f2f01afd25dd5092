// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"golang.org/x/exp/constraints"
)

// verificationOptimizer is the verification policy of the common,
// performance sensitive on-chain path. It favors short proofs and
// fast rejection: once the threshold weight is reached it skips the
// remaining per-vote validation, it rejects a second vote from the
// same authority, and it treats duplicate or unused ancestry material
// as a hard failure, keeping proofs minimal. Votes from unknown
// authorities or with invalid signatures are ignored but never abort
// the verification, so that garbage precommits injected into an
// otherwise sufficient justification cannot deny service.
type verificationOptimizer[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID] struct {
	votes map[ID]struct{}
}

func newVerificationOptimizer[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID]() *verificationOptimizer[H, N, S, ID] {
	return &verificationOptimizer[H, N, S, ID]{
		votes: make(map[ID]struct{}),
	}
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessDuplicateVotesAncestries(_ []int) error {
	return ErrDuplicateVotesAncestries
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessRedundantVote(_ int) (IterationFlow, error) {
	return IterationFlowSkip, nil
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessKnownAuthorityVote(_ int,
	signed finalityGrandpa.SignedPrecommit[H, N, S, ID]) (IterationFlow, error) {
	if _, has := o.votes[signed.ID]; has {
		return IterationFlowRun, ErrDuplicateAuthorityVote
	}
	return IterationFlowRun, nil
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessUnknownAuthorityVote(_ int) error {
	return nil
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessUnrelatedAncestryVote(_ int) (IterationFlow, error) {
	return IterationFlowSkip, nil
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessInvalidSignatureVote(_ int) error {
	return nil
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessValidVote(
	signed finalityGrandpa.SignedPrecommit[H, N, S, ID]) {
	o.votes[signed.ID] = struct{}{}
}

func (o *verificationOptimizer[H, N, S, ID]) ProcessRedundantVotesAncestries(_ []H) error {
	return ErrRedundantVotesAncestries
}

// VerifyJustification checks whether the justification proves finality
// of the finalized target under the given verification context, using
// the optimizing policy. It is pure with respect to its inputs,
// performs no I/O and is safe to call from independent goroutines on
// independent inputs.
func VerifyJustification[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]](
	finalizedTarget finalityGrandpa.HashNumber[H, N],
	context JustificationVerificationContext[ID],
	justification *GrandpaJustification[H, N, S, ID, Hdr],
) error {
	verifier := newVerificationOptimizer[H, N, S, ID]()
	return verifyJustificationWith[H, N, S, ID, Hdr](verifier, finalizedTarget, context, justification)
}
