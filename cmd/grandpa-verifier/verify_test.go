// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-verifier/lib/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestJustification(t *testing.T) (string, *substrate.Justification) {
	t.Helper()
	justification := &substrate.Justification{
		Round: 1,
		Commit: substrate.Commit{
			TargetHash:   common.MustBlake2bHash([]byte("target")),
			TargetNumber: 10,
			Precommits: []substrate.SignedPrecommit{{
				Precommit: substrate.Precommit{
					TargetHash:   common.MustBlake2bHash([]byte("target")),
					TargetNumber: 10,
				},
				ID: "0x00",
			}},
		},
		VotesAncestries: []substrate.Header{{NumberField: 11}},
	}
	encoded, err := justification.Encode()
	require.NoError(t, err)
	return "0x" + hex.EncodeToString(encoded), justification
}

func TestLoadJustification(t *testing.T) {
	hexValue, justification := encodeTestJustification(t)

	loaded, err := loadJustification(hexValue)
	require.NoError(t, err)
	assert.Equal(t, justification, loaded)

	// the same hex can come from a file
	path := filepath.Join(t.TempDir(), "justification.hex")
	require.NoError(t, os.WriteFile(path, []byte(hexValue+"\n"), 0o600))
	loaded, err = loadJustification(path)
	require.NoError(t, err)
	assert.Equal(t, justification, loaded)

	_, err = loadJustification("")
	assert.Error(t, err)
	_, err = loadJustification("0xzz")
	assert.Error(t, err)
	_, err = loadJustification(filepath.Join(t.TempDir(), "missing.hex"))
	assert.Error(t, err)
}

func TestLoadAuthoritySet(t *testing.T) {
	kp, err := ed25519.GenerateKeypair()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "authorities.json")
	content := `{"setID": 7, "authorities": [{"id": "` + kp.Public().Hex() + `", "weight": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	authoritySet, err := loadAuthoritySet(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), authoritySet.SetID)
	require.Len(t, authoritySet.Authorities, 1)
	assert.Equal(t, substrate.NewAuthorityID(kp.Public()), authoritySet.Authorities[0].ID)

	badPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"authorities": [{"id": "nothex"}]}`), 0o600))
	_, err = loadAuthoritySet(badPath)
	assert.Error(t, err)

	_, err = loadAuthoritySet("")
	assert.Error(t, err)
}
