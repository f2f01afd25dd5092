// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// HashLength is the expected length of the common.Hash type
const HashLength = 32

// EmptyHash is the zero value of the Hash type
var EmptyHash = Hash{}

var errHexStringLength = errors.New("hex string is not 32 bytes")

// Hash is a 32 byte blake2b hash
type Hash [32]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// Bytes returns the hash as a byte slice
func (h Hash) Bytes() []byte {
	b := [32]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is the zero value
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hash as a 0x prefixed hex string
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes of the hash as a 0x prefixed hex string
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...", h[:nBytes])
}

// HexToHash turns a 0x prefixed hex string into a Hash
func HexToHash(in string) (Hash, error) {
	if !strings.HasPrefix(in, "0x") {
		return Hash{}, fmt.Errorf("could not byteify non 0x prefixed string: %s", in)
	}
	in = strings.TrimPrefix(in, "0x")
	out, err := hex.DecodeString(in)
	if err != nil {
		return Hash{}, fmt.Errorf("decoding hex string: %w", err)
	}
	if len(out) != HashLength {
		return Hash{}, fmt.Errorf("%w: got %d bytes", errHexStringLength, len(out))
	}
	var buf [32]byte
	copy(buf[:], out)
	return buf, nil
}

// MustHexToHash turns a 0x prefixed hex string into a Hash.
// It panics if the input cannot be parsed.
func MustHexToHash(in string) Hash {
	hash, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return hash
}
