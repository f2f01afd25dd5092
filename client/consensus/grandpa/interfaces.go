// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"golang.org/x/exp/constraints"
)

// Header is the part of a block header this package needs: its hash,
// number and parent hash. It is supplied by the embedding chain client.
type Header[H comparable, N constraints.Unsigned] interface {
	ParentHash() H
	Hash() H
	Number() N
}

// HeaderBackend supplies headers by hash when building a justification
// from a commit.
type HeaderBackend[H comparable, N constraints.Unsigned, Hdr Header[H, N]] interface {
	// Header returns the block header, or nil if the block is not found.
	Header(hash H) (*Hdr, error)
}

// AuthorityID identifies a GRANDPA authority and verifies signatures
// made by it. The ordering of IDs gives the voter set its total order.
type AuthorityID interface {
	constraints.Ordered
	// Verify checks the signature over the message. It returns an
	// error only for malformed inputs, never for a mere mismatch.
	Verify(msg, sig []byte) (bool, error)
}

// AuthoritySignature is a signature made by a GRANDPA authority.
type AuthoritySignature interface {
	comparable
	Bytes() []byte
}
