// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// emailSalt returns the Argon2 salt for an account: the lowercase hex text of
// SHA-256 over the normalized email, as 64 ASCII bytes.
func emailSalt(email string) []byte {
	sum := sha256.Sum256([]byte(NormalizeEmail(email)))
	return []byte(hex.EncodeToString(sum[:]))
}

// DeriveMasterKey derives the 256-bit master key from an email and password
// using Argon2id with [MasterKeyParams].
//
// The result is deterministic for a given normalized email and password. It
// must never leave the client and should be wiped as soon as the proof and
// stretched key pair have been computed.
func DeriveMasterKey(email, password string) []byte {
	return deriveArgon2id([]byte(password), emailSalt(email), MasterKeyParams)
}

func deriveArgon2id(secret, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey(secret, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}
