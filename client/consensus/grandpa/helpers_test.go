// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"testing"

	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

const (
	testRound uint64 = 1
	testSetID uint64 = 2
)

// testAuthorityID accepts a signature iff it is "sig:" followed by the
// authority id, so tests can forge valid and invalid signatures at
// will without real cryptography.
type testAuthorityID string

func (id testAuthorityID) Verify(_, sig []byte) (bool, error) {
	return string(sig) == "sig:"+string(id), nil
}

type testSignature string

func (s testSignature) Bytes() []byte {
	return []byte(s)
}

func validSignature(id testAuthorityID) testSignature {
	return testSignature("sig:" + string(id))
}

type testHeader[H comparable, N constraints.Unsigned] struct {
	HashField       H
	ParentHashField H
	NumberField     N
}

func (h testHeader[H, N]) Hash() H       { return h.HashField }
func (h testHeader[H, N]) ParentHash() H { return h.ParentHashField }
func (h testHeader[H, N]) Number() N     { return h.NumberField }

type (
	testSignedPrecommit = finalityGrandpa.SignedPrecommit[string, uint32, testSignature, testAuthorityID]
	testJustification   = GrandpaJustification[string, uint32, testSignature, testAuthorityID, testHeader[string, uint32]]
)

// the standard test fixture is a chain base <- a <- b <- c <- d with
// the commit target at the base, plus a fork block x with an unknown
// parent
var (
	testBase = finalityGrandpa.HashNumber[string, uint32]{Hash: "base", Number: 10}

	testHeaderA = testHeader[string, uint32]{HashField: "a", ParentHashField: "base", NumberField: 11}
	testHeaderB = testHeader[string, uint32]{HashField: "b", ParentHashField: "a", NumberField: 12}
	testHeaderC = testHeader[string, uint32]{HashField: "c", ParentHashField: "b", NumberField: 13}
	testHeaderD = testHeader[string, uint32]{HashField: "d", ParentHashField: "c", NumberField: 14}
	testHeaderX = testHeader[string, uint32]{HashField: "x", ParentHashField: "zzz", NumberField: 11}
)

// testContext builds a context over four equal weight authorities,
// giving a supermajority threshold of three.
func testContext(t *testing.T) JustificationVerificationContext[testAuthorityID] {
	t.Helper()
	context, err := NewJustificationVerificationContext(AuthoritySet[testAuthorityID]{
		Authorities: []finalityGrandpa.IDWeight[testAuthorityID]{
			{ID: "alice", Weight: 1},
			{ID: "bob", Weight: 1},
			{ID: "charlie", Weight: 1},
			{ID: "dave", Weight: 1},
		},
		SetID: testSetID,
	})
	require.NoError(t, err)
	return context
}

func makePrecommit(t *testing.T, targetHash string, targetNumber uint32,
	id testAuthorityID) testSignedPrecommit {
	t.Helper()
	return testSignedPrecommit{
		Precommit: finalityGrandpa.Precommit[string, uint32]{
			TargetHash:   targetHash,
			TargetNumber: targetNumber,
		},
		Signature: validSignature(id),
		ID:        id,
	}
}

func makeJustification(t *testing.T, precommits []testSignedPrecommit,
	votesAncestries ...testHeader[string, uint32]) *testJustification {
	t.Helper()
	return &testJustification{
		Round: testRound,
		Commit: finalityGrandpa.Commit[string, uint32, testSignature, testAuthorityID]{
			TargetHash:   testBase.Hash,
			TargetNumber: testBase.Number,
			Precommits:   precommits,
		},
		VotesAncestries: votesAncestries,
	}
}
