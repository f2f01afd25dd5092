// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
)

// AuthoritySet represents one epoch of GRANDPA validators: the
// weighted authority list and the id of the set.
type AuthoritySet[ID AuthorityID] struct {
	Authorities []finalityGrandpa.IDWeight[ID]
	SetID       uint64
}

// JustificationVerificationContext is the derived context a
// justification is verified against: the weighted voter set of the
// epoch and its authority set id. It is built once per epoch via
// NewJustificationVerificationContext.
type JustificationVerificationContext[ID AuthorityID] struct {
	VoterSet       finalityGrandpa.VoterSet[ID]
	AuthoritySetID uint64
}

// NewJustificationVerificationContext builds the verification context
// from an authority set. It returns ErrInvalidAuthorityList if the
// authority list cannot form a valid non-empty weighted voter set.
func NewJustificationVerificationContext[ID AuthorityID](
	authoritySet AuthoritySet[ID],
) (JustificationVerificationContext[ID], error) {
	voterSet := finalityGrandpa.NewVoterSet(authoritySet.Authorities)
	if voterSet == nil {
		return JustificationVerificationContext[ID]{}, ErrInvalidAuthorityList
	}
	return JustificationVerificationContext[ID]{
		VoterSet:       *voterSet,
		AuthoritySetID: authoritySet.SetID,
	}, nil
}
