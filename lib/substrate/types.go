// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package substrate provides the concrete header and authority types
// of a bridged Substrate chain, instantiating the generic
// justification verification of client/consensus/grandpa with
// blake2b hashed headers and ed25519 authorities.
package substrate

import (
	"fmt"

	grandpa "github.com/ChainSafe/grandpa-verifier/client/consensus/grandpa"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
)

// AuthorityID identifies a GRANDPA authority by the 0x prefixed hex
// encoding of its ed25519 public key. The lexicographic order of the
// encoding gives the voter set its total order.
type AuthorityID string

// NewAuthorityID returns the AuthorityID for the given public key.
func NewAuthorityID(pub *ed25519.PublicKey) AuthorityID {
	return AuthorityID(pub.Hex())
}

// Verify checks the ed25519 signature over the message.
func (id AuthorityID) Verify(msg, sig []byte) (bool, error) {
	pub, err := ed25519.NewPublicKeyFromHex(string(id))
	if err != nil {
		return false, fmt.Errorf("decoding authority id: %w", err)
	}
	return pub.Verify(msg, sig)
}

// AuthoritySignature is a 64 byte ed25519 signature made by a GRANDPA
// authority.
type AuthoritySignature [ed25519.SignatureLength]byte

// NewAuthoritySignature casts raw signature bytes to an
// AuthoritySignature.
func NewAuthoritySignature(sig []byte) (AuthoritySignature, error) {
	if len(sig) != ed25519.SignatureLength {
		return AuthoritySignature{}, fmt.Errorf("%w: got %d bytes",
			ed25519.ErrSignatureLength, len(sig))
	}
	var s AuthoritySignature
	copy(s[:], sig)
	return s, nil
}

// Bytes returns the signature as a byte slice.
func (s AuthoritySignature) Bytes() []byte {
	b := [ed25519.SignatureLength]byte(s)
	return b[:]
}

// Instantiations of the generic verification types for a bridged
// Substrate chain.
type (
	// HashNumber identifies a block by hash and number.
	HashNumber = finalityGrandpa.HashNumber[common.Hash, uint32]
	// Precommit is a vote for a block and its ancestors.
	Precommit = finalityGrandpa.Precommit[common.Hash, uint32]
	// SignedPrecommit is a precommit with its authority and signature.
	SignedPrecommit = finalityGrandpa.SignedPrecommit[common.Hash, uint32, AuthoritySignature, AuthorityID]
	// Commit aggregates the precommits of a round.
	Commit = finalityGrandpa.Commit[common.Hash, uint32, AuthoritySignature, AuthorityID]
	// Justification proves finality of its commit target.
	Justification = grandpa.GrandpaJustification[common.Hash, uint32, AuthoritySignature, AuthorityID, Header]
	// AuthoritySet is one epoch of weighted authorities.
	AuthoritySet = grandpa.AuthoritySet[AuthorityID]
	// VerificationContext is the context justifications are verified
	// against.
	VerificationContext = grandpa.JustificationVerificationContext[AuthorityID]
	// StrictReport lists the anomalies found by strict verification.
	StrictReport = grandpa.StrictVerificationReport[common.Hash, uint32, AuthoritySignature, AuthorityID]
)

// SignPrecommit signs the localized payload for the precommit with the
// given keypair.
func SignPrecommit(kp *ed25519.Keypair, precommit Precommit, round, setID uint64,
) (AuthoritySignature, error) {
	payload, err := grandpa.PrecommitSignaturePayload(precommit, round, setID)
	if err != nil {
		return AuthoritySignature{}, err
	}
	sig, err := kp.Sign(payload)
	if err != nil {
		return AuthoritySignature{}, fmt.Errorf("signing precommit: %w", err)
	}
	return NewAuthoritySignature(sig)
}

// NewVerificationContext builds the verification context from an
// authority set.
func NewVerificationContext(authoritySet AuthoritySet) (VerificationContext, error) {
	return grandpa.NewJustificationVerificationContext(authoritySet)
}

// VerifyJustification checks the justification against the expected
// finalized target using the optimizing policy.
func VerifyJustification(finalizedTarget HashNumber, context VerificationContext,
	justification *Justification) error {
	return grandpa.VerifyJustification(finalizedTarget, context, justification)
}

// VerifyJustificationStrict checks the justification exhaustively and
// reports every anomaly.
func VerifyJustificationStrict(finalizedTarget HashNumber, context VerificationContext,
	justification *Justification) (StrictReport, error) {
	return grandpa.VerifyJustificationStrict(finalizedTarget, context, justification)
}

// DecodeJustification decodes a SCALE encoded justification.
func DecodeJustification(encoded []byte) (*Justification, error) {
	return grandpa.DecodeJustification[common.Hash, uint32, AuthoritySignature, AuthorityID, Header](encoded)
}
