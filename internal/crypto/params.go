// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// ProtocolVersion identifies the set of primitives implemented by this
// package: Argon2id master key, HKDF-SHA256 stretch, AES-256-CBC with
// HMAC-SHA512 envelopes. The server stores it per account.
const ProtocolVersion = 1

// Key and block sizes used throughout the protocol.
const (
	MasterKeySize  = 32
	StretchedSize  = 64
	SubKeySize     = 32
	VaultKeySize   = 64
	IVSize         = 16
	MACSize        = 64
	StoredSaltSize = 32
)

// MinPasswordLength is the minimum number of characters a password must have.
const MinPasswordLength = 12

// Argon2Params holds the cost parameters of a single Argon2id invocation.
type Argon2Params struct {
	Time    uint32 // iterations
	Memory  uint32 // in KiB
	Threads uint8
	KeyLen  uint32
}

var (
	// MasterKeyParams derive the master key from the password.
	MasterKeyParams = Argon2Params{Time: 3, Memory: 64 * 1024, Threads: 4, KeyLen: MasterKeySize}

	// ProofParams derive the authentication proof from the master key.
	ProofParams = Argon2Params{Time: 2, Memory: 64 * 1024, Threads: 2, KeyLen: 32}

	// StoredHashParams re-hash the proof on the server before storage.
	StoredHashParams = Argon2Params{Time: 3, Memory: 64 * 1024, Threads: 4, KeyLen: 32}
)

// CheckProtocolVersion reports whether an account created with version v
// can be handled by this build. Zero is treated as the current version,
// matching accounts stored before the column existed.
func CheckProtocolVersion(v int) error {
	if v == 0 || v == ProtocolVersion {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedProtocolVersion, v)
}
