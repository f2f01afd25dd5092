// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"bytes"
	"testing"

	grandpa "github.com/ChainSafe/grandpa-verifier/client/consensus/grandpa"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e2eRound uint64 = 42
	e2eSetID uint64 = 7
)

// e2eFixture is a base header, three descendant headers and four
// equal weight authorities with real ed25519 keys.
type e2eFixture struct {
	base     Header
	headers  []Header // descendants of base, oldest first
	keypairs []*ed25519.Keypair
	context  VerificationContext
}

func newE2EFixture(t *testing.T) *e2eFixture {
	t.Helper()

	base := Header{
		ParentHashField: common.MustBlake2bHash([]byte("genesis")),
		NumberField:     10,
	}
	headers := make([]Header, 0, 3)
	parent := base
	for i := 0; i < 3; i++ {
		header := Header{
			ParentHashField: parent.Hash(),
			NumberField:     parent.NumberField + 1,
		}
		headers = append(headers, header)
		parent = header
	}

	keypairs := make([]*ed25519.Keypair, 0, 4)
	authorities := make([]finalityGrandpa.IDWeight[AuthorityID], 0, 4)
	for i := 0; i < 4; i++ {
		seed := bytes.Repeat([]byte{byte(i + 1)}, ed25519.SeedLength)
		kp, err := ed25519.NewKeypairFromSeed(seed)
		require.NoError(t, err)
		keypairs = append(keypairs, kp)
		authorities = append(authorities, finalityGrandpa.IDWeight[AuthorityID]{
			ID:     NewAuthorityID(kp.Public()),
			Weight: 1,
		})
	}

	context, err := NewVerificationContext(AuthoritySet{
		Authorities: authorities,
		SetID:       e2eSetID,
	})
	require.NoError(t, err)

	return &e2eFixture{
		base:     base,
		headers:  headers,
		keypairs: keypairs,
		context:  context,
	}
}

func (f *e2eFixture) target() HashNumber {
	return HashNumber{Hash: f.base.Hash(), Number: f.base.NumberField}
}

// signedPrecommit signs a vote for the given block with the given
// authority's key.
func (f *e2eFixture) signedPrecommit(t *testing.T, authority int, header Header) SignedPrecommit {
	t.Helper()
	precommit := Precommit{
		TargetHash:   header.Hash(),
		TargetNumber: header.NumberField,
	}
	kp := f.keypairs[authority]
	signature, err := SignPrecommit(kp, precommit, e2eRound, e2eSetID)
	require.NoError(t, err)
	return SignedPrecommit{
		Precommit: precommit,
		Signature: signature,
		ID:        NewAuthorityID(kp.Public()),
	}
}

func (f *e2eFixture) justification(precommits []SignedPrecommit,
	votesAncestries ...Header) *Justification {
	return &Justification{
		Round: e2eRound,
		Commit: Commit{
			TargetHash:   f.base.Hash(),
			TargetNumber: f.base.NumberField,
			Precommits:   precommits,
		},
		VotesAncestries: votesAncestries,
	}
}

func TestVerifyJustificationEndToEnd(t *testing.T) {
	fixture := newE2EFixture(t)

	// three of four authorities vote for the tip, connected to the base
	// through the ancestry headers
	tip := fixture.headers[2]
	justification := fixture.justification([]SignedPrecommit{
		fixture.signedPrecommit(t, 0, tip),
		fixture.signedPrecommit(t, 1, tip),
		fixture.signedPrecommit(t, 2, tip),
	}, fixture.headers...)

	require.NoError(t, VerifyJustification(fixture.target(), fixture.context, justification))

	report, err := VerifyJustificationStrict(fixture.target(), fixture.context, justification)
	require.NoError(t, err)
	assert.False(t, report.HasAnomalies())
}

func TestVerifyJustificationEndToEnd_TooLowWeight(t *testing.T) {
	fixture := newE2EFixture(t)

	justification := fixture.justification([]SignedPrecommit{
		fixture.signedPrecommit(t, 0, fixture.base),
		fixture.signedPrecommit(t, 1, fixture.base),
	})

	err := VerifyJustification(fixture.target(), fixture.context, justification)
	assert.ErrorIs(t, err, grandpa.ErrTooLowCumulativeWeight)
}

func TestVerifyJustificationEndToEnd_TamperedSignature(t *testing.T) {
	fixture := newE2EFixture(t)

	// charlie's signature is flipped, so only two votes count
	tampered := fixture.signedPrecommit(t, 2, fixture.base)
	tampered.Signature[0] ^= 0xff

	justification := fixture.justification([]SignedPrecommit{
		fixture.signedPrecommit(t, 0, fixture.base),
		fixture.signedPrecommit(t, 1, fixture.base),
		tampered,
	})

	err := VerifyJustification(fixture.target(), fixture.context, justification)
	assert.ErrorIs(t, err, grandpa.ErrTooLowCumulativeWeight)

	report, err := VerifyJustificationStrict(fixture.target(), fixture.context, justification)
	assert.ErrorIs(t, err, grandpa.ErrTooLowCumulativeWeight)
	assert.Equal(t, []int{2}, report.InvalidSignatureVotes)
}

func TestJustificationEncodingEndToEnd(t *testing.T) {
	fixture := newE2EFixture(t)

	tip := fixture.headers[2]
	justification := fixture.justification([]SignedPrecommit{
		fixture.signedPrecommit(t, 0, tip),
		fixture.signedPrecommit(t, 1, tip),
		fixture.signedPrecommit(t, 2, tip),
	}, fixture.headers...)

	encoded, err := justification.Encode()
	require.NoError(t, err)

	decoded, err := DecodeJustification(encoded)
	require.NoError(t, err)
	assert.Equal(t, justification, decoded)

	require.NoError(t, VerifyJustification(fixture.target(), fixture.context, decoded))
}
