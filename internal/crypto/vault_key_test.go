// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVaultKey_LengthAndRandomness(t *testing.T) {
	k1, err := GenerateVaultKey()
	require.NoError(t, err)
	k2, err := GenerateVaultKey()
	require.NoError(t, err)

	assert.Len(t, k1, VaultKeySize)
	assert.Len(t, k2, VaultKeySize)
	assert.NotEqual(t, k1, k2)
}

func TestProtectUnwrap_RoundTrip(t *testing.T) {
	stretched, err := StretchMasterKey(bytes.Repeat([]byte{0x05}, 32))
	require.NoError(t, err)

	vaultKey, protected, err := ProtectNewVaultKey(stretched)
	require.NoError(t, err)
	require.NoError(t, ValidateEnvelope(protected))

	got, err := UnwrapVaultKey(stretched, protected)
	require.NoError(t, err)
	assert.Equal(t, vaultKey, got)
}

func TestUnwrapVaultKey_WrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("runs Argon2id four times")
	}

	right, err := StretchMasterKey(DeriveMasterKey(testEmail, testPassword))
	require.NoError(t, err)
	wrong, err := StretchMasterKey(DeriveMasterKey(testEmail, "not_my_Password_123"))
	require.NoError(t, err)

	_, protected, err := ProtectNewVaultKey(right)
	require.NoError(t, err)

	_, err = UnwrapVaultKey(wrong, protected)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestUnwrapVaultKey_Malformed(t *testing.T) {
	stretched, err := StretchMasterKey(bytes.Repeat([]byte{0x05}, 32))
	require.NoError(t, err)

	_, err = UnwrapVaultKey(stretched, "a|b")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
	assert.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestUnwrapVaultKey_WrongPayloadLength(t *testing.T) {
	stretched, err := StretchMasterKey(bytes.Repeat([]byte{0x05}, 32))
	require.NoError(t, err)

	sealed, err := Seal(stretched, []byte("too short to be a vault key"))
	require.NoError(t, err)

	_, err = UnwrapVaultKey(stretched, sealed)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestProtectVaultKey_RejectsWrongLength(t *testing.T) {
	stretched, err := StretchMasterKey(bytes.Repeat([]byte{0x05}, 32))
	require.NoError(t, err)

	_, err = ProtectVaultKey(stretched, make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestSplitVaultKey(t *testing.T) {
	vaultKey := append(bytes.Repeat([]byte{0xAA}, 32), bytes.Repeat([]byte{0xBB}, 32)...)

	pair, err := SplitVaultKey(vaultKey)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 32), pair.EncryptionKey)
	assert.Equal(t, bytes.Repeat([]byte{0xBB}, 32), pair.AuthenticationKey)

	_, err = SplitVaultKey(vaultKey[:63])
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

// Wrapping keys and item keys must be different key material even when the
// vault key is sealed under the same account.
func TestItemKeysDifferFromWrappingKeys(t *testing.T) {
	stretched, err := StretchMasterKey(bytes.Repeat([]byte{0x05}, 32))
	require.NoError(t, err)

	vaultKey, _, err := ProtectNewVaultKey(stretched)
	require.NoError(t, err)

	items, err := SplitVaultKey(vaultKey)
	require.NoError(t, err)

	assert.NotEqual(t, stretched.EncryptionKey, items.EncryptionKey)
	assert.NotEqual(t, stretched.AuthenticationKey, items.AuthenticationKey)
}
