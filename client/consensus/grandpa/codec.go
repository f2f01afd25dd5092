// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"bytes"
	"fmt"

	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"golang.org/x/exp/constraints"
)

// Encode returns the SCALE encoding of the justification.
func (j *GrandpaJustification[H, N, S, ID, Hdr]) Encode() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := scale.NewEncoder(&buffer)
	if err := encoder.Encode(*j); err != nil {
		return nil, fmt.Errorf("encoding justification: %w", err)
	}
	return buffer.Bytes(), nil
}

// DecodeJustification decodes a SCALE encoded GRANDPA justification.
func DecodeJustification[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]](
	encoded []byte,
) (*GrandpaJustification[H, N, S, ID, Hdr], error) {
	justification := GrandpaJustification[H, N, S, ID, Hdr]{
		VotesAncestries: make([]Hdr, 0),
	}
	decoder := scale.NewDecoder(bytes.NewReader(encoded))
	if err := decoder.Decode(&justification); err != nil {
		return nil, fmt.Errorf("decoding justification: %w", err)
	}
	return &justification, nil
}

// DecodeAndVerifyFinalizes decodes a GRANDPA justification and
// validates that it finalizes the given block under the given voter
// set, using the optimizing policy.
func DecodeAndVerifyFinalizes[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID, Hdr Header[H, N]](
	encoded []byte,
	finalizedTarget finalityGrandpa.HashNumber[H, N],
	setID uint64,
	voters *finalityGrandpa.VoterSet[ID],
) (*GrandpaJustification[H, N, S, ID, Hdr], error) {
	justification, err := DecodeJustification[H, N, S, ID, Hdr](encoded)
	if err != nil {
		return nil, err
	}

	if voters == nil {
		return nil, ErrInvalidAuthorityList
	}
	context := JustificationVerificationContext[ID]{
		VoterSet:       *voters,
		AuthoritySetID: setID,
	}
	if err := VerifyJustification(finalizedTarget, context, justification); err != nil {
		return nil, fmt.Errorf("%w: %s", errBadJustification, err)
	}
	return justification, nil
}
