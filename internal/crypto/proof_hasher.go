// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const phcPrefix = "$argon2id$"

// ProofHasher is the server side of the authentication handshake: the proof
// is stored only as an Argon2id re-hash in PHC format.
type ProofHasher interface {
	// Hash returns a PHC string for proof with a fresh random salt.
	Hash(proof string) (string, error)

	// Verify recomputes the hash of proof with the parameters and salt
	// embedded in encoded and compares in constant time.
	Verify(proof, encoded string) (bool, error)
}

type argon2ProofHasher struct {
	params  Argon2Params
	saltLen int
}

// NewProofHasher returns a [ProofHasher] using [StoredHashParams] and a
// 32-byte salt.
func NewProofHasher() ProofHasher {
	return &argon2ProofHasher{params: StoredHashParams, saltLen: StoredSaltSize}
}

// Hash implements [ProofHasher]. The proof text is hashed as-is, never
// base64-decoded.
func (h *argon2ProofHasher) Hash(proof string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := deriveArgon2id([]byte(proof), salt, h.params)

	// $argon2id$v=19$m=<M>,t=<T>,p=<P>$<b64(salt)>$<b64(key)>
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		phcPrefix, argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [ProofHasher].
func (h *argon2ProofHasher) Verify(proof, encoded string) (bool, error) {
	if !strings.HasPrefix(encoded, phcPrefix) {
		return false, ErrInvalidStoredHash
	}
	parts := strings.Split(encoded[len(phcPrefix):], "$")
	if len(parts) != 4 {
		return false, ErrInvalidStoredHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[0], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrInvalidStoredHash
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[1], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false, ErrInvalidStoredHash
	}
	if p.Memory == 0 || p.Time == 0 || p.Threads == 0 {
		return false, ErrInvalidStoredHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, ErrInvalidStoredHash
	}
	keyRef, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(keyRef) == 0 {
		return false, ErrInvalidStoredHash
	}
	p.KeyLen = uint32(len(keyRef))

	key := deriveArgon2id([]byte(proof), salt, p)
	return subtle.ConstantTimeCompare(key, keyRef) == 1, nil
}
