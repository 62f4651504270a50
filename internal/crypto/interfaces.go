// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side key hierarchy of the vault and
// the server-side proof store.
//
// Key hierarchy:
//
//	MasterKey  = Argon2id(password, hex(sha256(email)))          (DeriveMasterKey)
//	Proof      = base64(Argon2id(MasterKey, password))           (ProveKnowledge)
//	Stretched  = HKDF-SHA256(MasterKey) -> enc ‖ auth            (StretchMasterKey)
//	Protected  = Seal(Stretched, VaultKey)                       (ProtectVaultKey)
//	ItemField  = Seal(SplitVaultKey(VaultKey), plaintext)        (Seal)
//
// Only Proof and Protected ever leave the client. The server re-hashes Proof
// with [ProofHasher] before storing it.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService bundles the client-side protocol steps behind an interface
// so that services can be tested without running Argon2.
type KeyChainService interface {
	// DeriveSessionKeys derives the master key for email and password,
	// computes the authentication proof and stretches the master key. The
	// master key is wiped before returning; the caller owns the stretched
	// pair and must wipe it.
	DeriveSessionKeys(email, password string) (proof string, stretched KeyPair, err error)

	// ProtectNewVaultKey generates a fresh vault key and seals it under the
	// stretched pair. Used once, at sign-up.
	ProtectNewVaultKey(stretched KeyPair) (vaultKey []byte, protected string, err error)

	// UnwrapVaultKey opens the protected vault key. A wrong password results
	// in [ErrAuthenticationFailed].
	UnwrapVaultKey(stretched KeyPair, protected string) ([]byte, error)

	// SealField encrypts a single item field under the item key pair.
	SealField(itemKeys KeyPair, plaintext string) (string, error)

	// OpenField decrypts a single item field.
	OpenField(itemKeys KeyPair, envelope string) (string, error)
}
