// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package ed25519 wraps the standard library ed25519 implementation
// with the key types used by GRANDPA authorities.
package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// PublicKeyLength is the expected public key length
	PublicKeyLength = 32
	// SeedLength is the expected seed length
	SeedLength = 32
	// SignatureLength is the expected signature length
	SignatureLength = 64
)

var (
	// ErrSignatureLength is returned when a signature is not 64 bytes
	ErrSignatureLength = errors.New("invalid signature length")
	errPublicKeyLength = errors.New("invalid public key length")
	errSeedLength      = errors.New("invalid seed length")
)

// PublicKey is an ed25519 public key
type PublicKey ed25519.PublicKey

// PrivateKey is an ed25519 private key
type PrivateKey ed25519.PrivateKey

// Keypair is an ed25519 keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// NewKeypair returns a Keypair given an ed25519 private key
func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	pubkey := PublicKey(priv.Public().(ed25519.PublicKey))
	privkey := PrivateKey(priv)
	return &Keypair{
		public:  &pubkey,
		private: &privkey,
	}
}

// NewKeypairFromSeed generates a Keypair from a 32 byte seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("%w: got %d bytes", errSeedLength, len(seed))
	}
	return NewKeypair(ed25519.NewKeyFromSeed(seed)), nil
}

// GenerateKeypair returns a new ed25519 keypair
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating ed25519 key: %w", err)
	}
	return NewKeypair(priv), nil
}

// Sign signs the message using the keypair's private key
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(*kp.private), msg), nil
}

// Public returns the keypair's public key
func (kp *Keypair) Public() *PublicKey {
	return kp.public
}

// Private returns the keypair's private key
func (kp *Keypair) Private() *PrivateKey {
	return kp.private
}

// NewPublicKey returns a PublicKey given a 32 byte key
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes", errPublicKeyLength, len(in))
	}
	pub := PublicKey(in)
	return &pub, nil
}

// NewPublicKeyFromHex returns a PublicKey given its 0x prefixed hex encoding
func NewPublicKeyFromHex(in string) (*PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(in, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding hex public key: %w", err)
	}
	return NewPublicKey(raw)
}

// Verify checks the signature over the message against the public key.
// It returns an error only for malformed inputs, never for a mere
// signature mismatch.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, fmt.Errorf("%w: got %d bytes", ErrSignatureLength, len(sig))
	}
	return ed25519.Verify(ed25519.PublicKey(*k), msg, sig), nil
}

// Encode returns the raw bytes of the public key
func (k *PublicKey) Encode() []byte {
	return []byte(*k)
}

// Hex returns the 0x prefixed hex encoding of the public key
func (k *PublicKey) Hex() string {
	return "0x" + hex.EncodeToString(k.Encode())
}
