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

// precommitStage is the message variant voters sign for precommits.
const precommitStage uint8 = 1

type precommitMessage[H comparable, N constraints.Unsigned] struct {
	Stage        uint8
	TargetHash   H
	TargetNumber N
}

// messageData is the localized payload over which a precommit
// signature is made: the precommit message together with the round and
// authority set id it was cast in.
type messageData[H comparable, N constraints.Unsigned] struct {
	Message precommitMessage[H, N]
	Round   uint64
	SetID   uint64
}

// PrecommitSignaturePayload returns the SCALE encoded payload a voter
// signs for the given precommit, round and authority set id.
func PrecommitSignaturePayload[H comparable, N constraints.Unsigned](
	precommit finalityGrandpa.Precommit[H, N], round, setID uint64,
) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := scale.NewEncoder(&buffer)
	err := encoder.Encode(messageData[H, N]{
		Message: precommitMessage[H, N]{
			Stage:        precommitStage,
			TargetHash:   precommit.TargetHash,
			TargetNumber: precommit.TargetNumber,
		},
		Round: round,
		SetID: setID,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding precommit payload: %w", err)
	}
	return buffer.Bytes(), nil
}

// checkMessageSignature verifies the precommit signature over the
// localized payload against the authority id.
func checkMessageSignature[H comparable, N constraints.Unsigned,
	S AuthoritySignature, ID AuthorityID](
	precommit finalityGrandpa.Precommit[H, N], id ID, signature S, round, setID uint64,
) (bool, error) {
	payload, err := PrecommitSignaturePayload(precommit, round, setID)
	if err != nil {
		return false, err
	}
	return id.Verify(payload, signature.Bytes())
}
