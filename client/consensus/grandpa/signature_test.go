// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"testing"

	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecommitSignaturePayload(t *testing.T) {
	precommit := finalityGrandpa.Precommit[string, uint32]{TargetHash: "a", TargetNumber: 11}

	payload, err := PrecommitSignaturePayload(precommit, testRound, testSetID)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, precommitStage, payload[0])

	again, err := PrecommitSignaturePayload(precommit, testRound, testSetID)
	require.NoError(t, err)
	assert.Equal(t, payload, again)

	// the payload localizes the vote to its round and authority set
	otherRound, err := PrecommitSignaturePayload(precommit, testRound+1, testSetID)
	require.NoError(t, err)
	assert.NotEqual(t, payload, otherRound)

	otherSet, err := PrecommitSignaturePayload(precommit, testRound, testSetID+1)
	require.NoError(t, err)
	assert.NotEqual(t, payload, otherSet)

	otherTarget, err := PrecommitSignaturePayload(
		finalityGrandpa.Precommit[string, uint32]{TargetHash: "a", TargetNumber: 12},
		testRound, testSetID)
	require.NoError(t, err)
	assert.NotEqual(t, payload, otherTarget)
}

func TestCheckMessageSignature(t *testing.T) {
	precommit := finalityGrandpa.Precommit[string, uint32]{TargetHash: "a", TargetNumber: 11}

	valid, err := checkMessageSignature[string, uint32](precommit,
		testAuthorityID("alice"), validSignature("alice"), testRound, testSetID)
	require.NoError(t, err)
	assert.True(t, valid)

	// bob's signature does not verify under alice's id
	valid, err = checkMessageSignature[string, uint32](precommit,
		testAuthorityID("alice"), validSignature("bob"), testRound, testSetID)
	require.NoError(t, err)
	assert.False(t, valid)
}
