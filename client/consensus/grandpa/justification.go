// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"golang.org/x/exp/constraints"
)

// GrandpaJustification is a GRANDPA justification for block finality.
// It includes a commit message and an ancestry proof including all
// headers routing all precommit target blocks to the commit target
// block. Due to the current voting strategy the precommit targets
// should be the same as the commit target, since honest voters don't
// vote past authority set change blocks.
//
// It is produced by the bridged chain's finality gadget and is
// immutable once received.
type GrandpaJustification[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]] struct {
	Round           uint64
	Commit          finalityGrandpa.Commit[H, N, S, ID]
	VotesAncestries []Hdr
}

// Target returns the block this justification proves finality for.
func (j *GrandpaJustification[H, N, S, ID, Hdr]) Target() finalityGrandpa.HashNumber[H, N] {
	return finalityGrandpa.HashNumber[H, N]{
		Hash:   j.Commit.TargetHash,
		Number: j.Commit.TargetNumber,
	}
}

// NewJustificationFromCommit creates a GRANDPA justification from the
// given commit. The commit is assumed to be valid and well-formed; the
// votes ancestries are populated by routing every precommit target
// back to the precommit for the lowest block, which serves as the
// base.
func NewJustificationFromCommit[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]](
	client HeaderBackend[H, N, Hdr],
	round uint64,
	commit finalityGrandpa.Commit[H, N, S, ID],
) (GrandpaJustification[H, N, S, ID, Hdr], error) {
	var minPrecommit *finalityGrandpa.Precommit[H, N]
	for i := range commit.Precommits {
		precommit := commit.Precommits[i].Precommit
		if minPrecommit == nil || precommit.TargetNumber < minPrecommit.TargetNumber {
			minPrecommit = &precommit
		}
	}
	if minPrecommit == nil {
		return GrandpaJustification[H, N, S, ID, Hdr]{},
			fmt.Errorf("%w: invalid precommits for target commit", errBadJustification)
	}

	baseHash := minPrecommit.TargetHash
	baseNumber := minPrecommit.TargetNumber

	votesAncestriesHashes := make(map[H]struct{})
	voteAncestries := make([]Hdr, 0)
	for _, signed := range commit.Precommits {
		currentHash := signed.Precommit.TargetHash
		for currentHash != baseHash {
			header, err := client.Header(currentHash)
			if err != nil || header == nil {
				return GrandpaJustification[H, N, S, ID, Hdr]{},
					fmt.Errorf("%w: invalid precommits for target commit", errBadJustification)
			}
			currentHeader := *header

			// this should never happen as we pick the lowest block as
			// base and only traverse backwards from the other blocks in
			// the commit, but better be safe to avoid an unbound loop
			if currentHeader.Number() <= baseNumber {
				return GrandpaJustification[H, N, S, ID, Hdr]{},
					fmt.Errorf("%w: invalid precommits for target commit", errBadJustification)
			}

			if _, has := votesAncestriesHashes[currentHash]; !has {
				voteAncestries = append(voteAncestries, currentHeader)
				votesAncestriesHashes[currentHash] = struct{}{}
			}
			currentHash = currentHeader.ParentHash()
		}
	}

	return GrandpaJustification[H, N, S, ID, Hdr]{
		Round:           round,
		Commit:          commit,
		VotesAncestries: voteAncestries,
	}, nil
}
