// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"bytes"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Header is a bridged chain block header. The suffixed field names
// leave room for the accessor methods the verification core requires.
type Header struct {
	ParentHashField common.Hash
	NumberField     uint32
	StateRoot       common.Hash
	ExtrinsicsRoot  common.Hash
}

// ParentHash returns the parent block hash.
func (h Header) ParentHash() common.Hash {
	return h.ParentHashField
}

// Number returns the block number.
func (h Header) Number() uint32 {
	return h.NumberField
}

// Hash returns the blake2b hash of the SCALE encoded header.
func (h Header) Hash() common.Hash {
	var buffer bytes.Buffer
	encoder := scale.NewEncoder(&buffer)
	if err := encoder.Encode(h); err != nil {
		// the header is a fixed shape of arrays and integers, encoding
		// it cannot fail
		panic(err)
	}
	return common.MustBlake2bHash(buffer.Bytes())
}
