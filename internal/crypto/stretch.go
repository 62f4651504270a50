// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

// KeyPair is a pair of independent 256-bit keys: one for AES-256-CBC and one
// for HMAC-SHA512. It is used both for the stretched master key, which wraps
// the vault key, and for the vault key itself, which protects item fields.
type KeyPair struct {
	EncryptionKey     []byte
	AuthenticationKey []byte
}

// NewKeyPair validates the sizes of both halves and returns them as a pair.
func NewKeyPair(encKey, authKey []byte) (KeyPair, error) {
	if len(encKey) != SubKeySize || len(authKey) != SubKeySize {
		return KeyPair{}, fmt.Errorf("%w: key pair needs two %d-byte keys", ErrInvalidKeyLength, SubKeySize)
	}
	return KeyPair{EncryptionKey: encKey, AuthenticationKey: authKey}, nil
}

// Wipe zeroes both keys in place.
func (k KeyPair) Wipe() {
	memguard.WipeBytes(k.EncryptionKey)
	memguard.WipeBytes(k.AuthenticationKey)
}

func (k KeyPair) valid() bool {
	return len(k.EncryptionKey) == SubKeySize && len(k.AuthenticationKey) == SubKeySize
}

// StretchMasterKey expands the master key with HKDF-SHA256 (empty salt and
// info) into 64 bytes. The first half becomes the encryption key and the
// second half the authentication key.
func StretchMasterKey(masterKey []byte) (KeyPair, error) {
	if len(masterKey) != MasterKeySize {
		return KeyPair{}, fmt.Errorf("%w: master key must be %d bytes, got %d", ErrInvalidKeyLength, MasterKeySize, len(masterKey))
	}

	okm := make([]byte, StretchedSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, nil, nil), okm); err != nil {
		return KeyPair{}, fmt.Errorf("hkdf expand: %w", err)
	}

	return KeyPair{EncryptionKey: okm[:SubKeySize], AuthenticationKey: okm[SubKeySize:]}, nil
}

// SplitVaultKey views a 64-byte vault key as an item key pair. The returned
// slices alias vaultKey.
func SplitVaultKey(vaultKey []byte) (KeyPair, error) {
	if len(vaultKey) != VaultKeySize {
		return KeyPair{}, fmt.Errorf("%w: vault key must be %d bytes, got %d", ErrInvalidKeyLength, VaultKeySize, len(vaultKey))
	}
	return KeyPair{EncryptionKey: vaultKey[:SubKeySize], AuthenticationKey: vaultKey[SubKeySize:]}, nil
}
