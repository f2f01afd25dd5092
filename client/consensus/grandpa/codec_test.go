// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJustificationCodecRoundTrip(t *testing.T) {
	justification := makeJustification(t, []testSignedPrecommit{
		makePrecommit(t, "c", 13, "alice"),
		makePrecommit(t, "c", 13, "bob"),
		makePrecommit(t, "c", 13, "charlie"),
	}, testHeaderA, testHeaderB, testHeaderC)

	encoded, err := justification.Encode()
	require.NoError(t, err)

	decoded, err := DecodeJustification[string, uint32, testSignature,
		testAuthorityID, testHeader[string, uint32]](encoded)
	require.NoError(t, err)
	assert.Equal(t, justification, decoded)
}

func TestDecodeJustification_Garbage(t *testing.T) {
	_, err := DecodeJustification[string, uint32, testSignature,
		testAuthorityID, testHeader[string, uint32]]([]byte{0xff, 0x01})
	assert.Error(t, err)
}

func TestDecodeAndVerifyFinalizes(t *testing.T) {
	context := testContext(t)
	justification := makeJustification(t, []testSignedPrecommit{
		makePrecommit(t, "a", 11, "alice"),
		makePrecommit(t, "a", 11, "bob"),
		makePrecommit(t, "a", 11, "charlie"),
	}, testHeaderA)
	encoded, err := justification.Encode()
	require.NoError(t, err)

	decoded, err := DecodeAndVerifyFinalizes[string, uint32, testSignature,
		testAuthorityID, testHeader[string, uint32]](
		encoded, testBase, testSetID, &context.VoterSet)
	require.NoError(t, err)
	assert.Equal(t, justification, decoded)

	// a justification for the wrong block decodes but does not verify
	_, err = DecodeAndVerifyFinalizes[string, uint32, testSignature,
		testAuthorityID, testHeader[string, uint32]](
		encoded, hashNumber("other", 7), testSetID, &context.VoterSet)
	assert.ErrorIs(t, err, errBadJustification)

	_, err = DecodeAndVerifyFinalizes[string, uint32, testSignature,
		testAuthorityID, testHeader[string, uint32]](
		encoded, testBase, testSetID, nil)
	assert.ErrorIs(t, err, ErrInvalidAuthorityList)
}
