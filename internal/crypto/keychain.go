// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// keyChainService is the private implementation of [KeyChainService]. It is
// stateless; every method delegates to the package-level primitives.
type keyChainService struct{}

// NewKeyChainService constructs a [KeyChainService] for [ProtocolVersion].
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// DeriveSessionKeys implements [KeyChainService]. The two Argon2id runs are
// sequential: master key first, then the proof over it.
func (k *keyChainService) DeriveSessionKeys(email, password string) (string, KeyPair, error) {
	masterKey := DeriveMasterKey(email, password)
	defer memguard.WipeBytes(masterKey)

	proof := ProveKnowledge(masterKey, password)

	stretched, err := StretchMasterKey(masterKey)
	if err != nil {
		return "", KeyPair{}, fmt.Errorf("stretch master key: %w", err)
	}

	return proof, stretched, nil
}

// ProtectNewVaultKey implements [KeyChainService].
func (k *keyChainService) ProtectNewVaultKey(stretched KeyPair) ([]byte, string, error) {
	return ProtectNewVaultKey(stretched)
}

// UnwrapVaultKey implements [KeyChainService].
func (k *keyChainService) UnwrapVaultKey(stretched KeyPair, protected string) ([]byte, error) {
	return UnwrapVaultKey(stretched, protected)
}

// SealField implements [KeyChainService].
func (k *keyChainService) SealField(itemKeys KeyPair, plaintext string) (string, error) {
	return Seal(itemKeys, []byte(plaintext))
}

// OpenField implements [KeyChainService].
func (k *keyChainService) OpenField(itemKeys KeyPair, envelope string) (string, error) {
	plaintext, err := Open(itemKeys, envelope)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
