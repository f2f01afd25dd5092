// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"golang.org/x/exp/constraints"
)

// StrictVerificationReport lists every anomaly found while verifying a
// justification under the strict policy. All slices are ordered by
// precommit or ancestry index, so the report is deterministic for
// identical inputs.
type StrictVerificationReport[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID] struct {
	// DuplicateVotesAncestries holds the indices of votes ancestries
	// headers beyond the first occurrence of their hash.
	DuplicateVotesAncestries []int
	// RedundantVotes holds the indices of precommits processed after
	// the threshold was already reached.
	RedundantVotes []int
	// UnknownAuthorityVotes holds the indices of precommits by
	// authorities absent from the voter set.
	UnknownAuthorityVotes []int
	// UnrelatedAncestryVotes holds the indices of precommits whose
	// target has no route to the justification base.
	UnrelatedAncestryVotes []int
	// InvalidSignatureVotes holds the indices of precommits whose
	// signature does not verify.
	InvalidSignatureVotes []int
	// RedundantVotesAncestries holds the ancestry hashes never used to
	// connect any vote to the base.
	RedundantVotesAncestries []H
	// Equivocations holds one record per authority that cast two
	// correctly signed votes for different targets in the round.
	Equivocations []finalityGrandpa.Equivocation[ID, finalityGrandpa.Precommit[H, N], S]
}

// HasAnomalies returns true if the report contains any anomaly.
func (r *StrictVerificationReport[H, N, S, ID]) HasAnomalies() bool {
	return len(r.DuplicateVotesAncestries) > 0 ||
		len(r.RedundantVotes) > 0 ||
		len(r.UnknownAuthorityVotes) > 0 ||
		len(r.UnrelatedAncestryVotes) > 0 ||
		len(r.InvalidSignatureVotes) > 0 ||
		len(r.RedundantVotesAncestries) > 0 ||
		len(r.Equivocations) > 0
}

// strictVerifier is the exhaustive verification policy: it validates
// every precommit and every ancestry entry regardless of whether the
// threshold was already met, and records every anomaly instead of
// failing on it. It is meant for tooling that must produce complete
// evidence, such as equivocation reporting.
type strictVerifier[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID] struct {
	round  uint64
	votes  map[ID]finalityGrandpa.VoteSignature[finalityGrandpa.Precommit[H, N], S]
	report StrictVerificationReport[H, N, S, ID]
}

func newStrictVerifier[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID](round uint64) *strictVerifier[H, N, S, ID] {
	return &strictVerifier[H, N, S, ID]{
		round: round,
		votes: make(map[ID]finalityGrandpa.VoteSignature[finalityGrandpa.Precommit[H, N], S]),
	}
}

func (s *strictVerifier[H, N, S, ID]) ProcessDuplicateVotesAncestries(
	duplicateVotesAncestries []int) error {
	s.report.DuplicateVotesAncestries = duplicateVotesAncestries
	return nil
}

func (s *strictVerifier[H, N, S, ID]) ProcessRedundantVote(precommitIdx int) (IterationFlow, error) {
	s.report.RedundantVotes = append(s.report.RedundantVotes, precommitIdx)
	return IterationFlowRun, nil
}

func (s *strictVerifier[H, N, S, ID]) ProcessKnownAuthorityVote(_ int,
	_ finalityGrandpa.SignedPrecommit[H, N, S, ID]) (IterationFlow, error) {
	return IterationFlowRun, nil
}

func (s *strictVerifier[H, N, S, ID]) ProcessUnknownAuthorityVote(precommitIdx int) error {
	s.report.UnknownAuthorityVotes = append(s.report.UnknownAuthorityVotes, precommitIdx)
	return nil
}

func (s *strictVerifier[H, N, S, ID]) ProcessUnrelatedAncestryVote(precommitIdx int) (IterationFlow, error) {
	s.report.UnrelatedAncestryVotes = append(s.report.UnrelatedAncestryVotes, precommitIdx)
	return IterationFlowRun, nil
}

func (s *strictVerifier[H, N, S, ID]) ProcessInvalidSignatureVote(precommitIdx int) error {
	s.report.InvalidSignatureVotes = append(s.report.InvalidSignatureVotes, precommitIdx)
	return nil
}

func (s *strictVerifier[H, N, S, ID]) ProcessValidVote(
	signed finalityGrandpa.SignedPrecommit[H, N, S, ID]) {
	first, has := s.votes[signed.ID]
	if !has {
		s.votes[signed.ID] = finalityGrandpa.VoteSignature[finalityGrandpa.Precommit[H, N], S]{
			Vote:      signed.Precommit,
			Signature: signed.Signature,
		}
		return
	}
	if first.Vote == signed.Precommit {
		// a repeat of the same vote is a duplicate, not an equivocation
		return
	}
	s.report.Equivocations = append(s.report.Equivocations,
		finalityGrandpa.Equivocation[ID, finalityGrandpa.Precommit[H, N], S]{
			RoundNumber: s.round,
			Identity:    signed.ID,
			First:       first,
			Second: finalityGrandpa.VoteSignature[finalityGrandpa.Precommit[H, N], S]{
				Vote:      signed.Precommit,
				Signature: signed.Signature,
			},
		})
}

func (s *strictVerifier[H, N, S, ID]) ProcessRedundantVotesAncestries(
	redundantVotesAncestries []H) error {
	s.report.RedundantVotesAncestries = redundantVotesAncestries
	return nil
}

// VerifyJustificationStrict checks the justification under the strict
// policy and returns a report of every anomaly found. The error is
// non-nil only for failures no policy can waive: a target mismatch or
// insufficient cumulative weight. The report is valid in both cases.
func VerifyJustificationStrict[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]](
	finalizedTarget finalityGrandpa.HashNumber[H, N],
	context JustificationVerificationContext[ID],
	justification *GrandpaJustification[H, N, S, ID, Hdr],
) (StrictVerificationReport[H, N, S, ID], error) {
	verifier := newStrictVerifier[H, N, S, ID](justification.Round)
	err := verifyJustificationWith[H, N, S, ID, Hdr](verifier, finalizedTarget, context, justification)
	return verifier.report, err
}
