// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyChainService_DeriveSessionKeys(t *testing.T) {
	svc := NewKeyChainService()

	proof, stretched, err := svc.DeriveSessionKeys(" Alice@Example.com", testPassword)
	require.NoError(t, err)
	defer stretched.Wipe()

	assert.Equal(t, testProof, proof)

	masterKey, _ := hex.DecodeString(testMasterKeyHex)
	want, err := StretchMasterKey(masterKey)
	require.NoError(t, err)
	assert.Equal(t, want, stretched)
}

func TestKeyChainService_SignUpThenSignIn(t *testing.T) {
	svc := NewKeyChainService()

	_, stretched, err := svc.DeriveSessionKeys(testEmail, testPassword)
	require.NoError(t, err)

	vaultKey, protected, err := svc.ProtectNewVaultKey(stretched)
	require.NoError(t, err)
	original := bytes.Clone(vaultKey)
	stretched.Wipe()

	// a later session re-derives everything from the same credentials
	_, again, err := svc.DeriveSessionKeys(testEmail, testPassword)
	require.NoError(t, err)
	defer again.Wipe()

	unwrapped, err := svc.UnwrapVaultKey(again, protected)
	require.NoError(t, err)
	assert.Equal(t, original, unwrapped)
}

func TestKeyChainService_SealOpenField(t *testing.T) {
	svc := NewKeyChainService()
	keys, err := SplitVaultKey(bytes.Repeat([]byte{0x42}, 64))
	require.NoError(t, err)

	sealed, err := svc.SealField(keys, "https://example.com")
	require.NoError(t, err)

	opened, err := svc.OpenField(keys, sealed)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", opened)

	_, err = svc.OpenField(keys, flipBit(t, sealed, 1))
	assert.ErrorIs(t, err, ErrIntegrity)
}
