// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

// GenerateVaultKey returns 64 random bytes: the item encryption key followed
// by the item authentication key.
func GenerateVaultKey() ([]byte, error) {
	key := make([]byte, VaultKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate vault key: %w", err)
	}
	return key, nil
}

// ProtectVaultKey seals vaultKey under the stretched key pair. The result is
// what the server stores as the protected vault key.
func ProtectVaultKey(stretched KeyPair, vaultKey []byte) (string, error) {
	if len(vaultKey) != VaultKeySize {
		return "", fmt.Errorf("%w: vault key must be %d bytes, got %d", ErrInvalidKeyLength, VaultKeySize, len(vaultKey))
	}
	return Seal(stretched, vaultKey)
}

// ProtectNewVaultKey generates a vault key and seals it. It is used once, at
// sign-up.
func ProtectNewVaultKey(stretched KeyPair) ([]byte, string, error) {
	vaultKey, err := GenerateVaultKey()
	if err != nil {
		return nil, "", err
	}

	protected, err := ProtectVaultKey(stretched, vaultKey)
	if err != nil {
		memguard.WipeBytes(vaultKey)
		return nil, "", err
	}

	return vaultKey, protected, nil
}

// UnwrapVaultKey opens a protected vault key. A MAC mismatch is reported as
// [ErrAuthenticationFailed], still matching [ErrIntegrity].
func UnwrapVaultKey(stretched KeyPair, protected string) ([]byte, error) {
	vaultKey, err := Open(stretched, protected)
	if err != nil {
		if errors.Is(err, ErrIntegrity) {
			return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return nil, err
	}

	if len(vaultKey) != VaultKeySize {
		memguard.WipeBytes(vaultKey)
		return nil, fmt.Errorf("%w: unwrapped vault key has %d bytes", ErrMalformedEnvelope, len(vaultKey))
	}

	return vaultKey, nil
}
