// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package grandpa holds the vote and voter set primitives of the
// GRANDPA finality gadget that are needed to check commits and
// justifications produced by a bridged chain.
package grandpa

import (
	"golang.org/x/exp/constraints"
)

// HashNumber contains a block hash and block number
type HashNumber[Hash, Number any] struct {
	Hash   Hash
	Number Number
}

// Precommit is a precommit for a block and its ancestors.
type Precommit[Hash, Number any] struct {
	// The target block's hash.
	TargetHash Hash
	// The target block's number.
	TargetNumber Number
}

// SignedPrecommit is a signed precommit message.
type SignedPrecommit[Hash, Number, Signature, ID any] struct {
	// The precommit message which has been signed.
	Precommit Precommit[Hash, Number]
	// The signature on the message.
	Signature Signature
	// The ID of the signer.
	ID ID
}

// Commit is a commit message which is an aggregate of precommits.
type Commit[Hash, Number, Signature, ID any] struct {
	// The target block's hash.
	TargetHash Hash
	// The target block's number.
	TargetNumber Number
	// Precommits for target block or any block after it that justify this commit.
	Precommits []SignedPrecommit[Hash, Number, Signature, ID]
}

// VoteSignature is a vote together with the signature authenticating it.
type VoteSignature[Vote, Signature comparable] struct {
	Vote      Vote
	Signature Signature
}

// Equivocation is an equivocation (double-vote) in a given round.
type Equivocation[ID constraints.Ordered, Vote, Signature comparable] struct {
	// The round number equivocated in.
	RoundNumber uint64
	// The identity of the equivocator.
	Identity ID
	// The first vote in the equivocation.
	First VoteSignature[Vote, Signature]
	// The second vote in the equivocation.
	Second VoteSignature[Vote, Signature]
}
