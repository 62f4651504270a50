// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the vault protocol primitives. Callers should
// match them with [errors.Is]; most are returned wrapped with additional
// context.
var (
	// ErrValidation is the parent of every input-validation failure raised
	// before any key derivation or network call takes place.
	ErrValidation = errors.New("validation error")

	// ErrPasswordTooShort is returned when a password is shorter than
	// [MinPasswordLength] characters. It matches [ErrValidation].
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 12 characters long", ErrValidation)

	// ErrInvalidEmail is returned when an email address does not look like
	// local@domain.tld after normalization. It matches [ErrValidation].
	ErrInvalidEmail = fmt.Errorf("%w: invalid email address", ErrValidation)

	// ErrMalformedEnvelope is returned when an envelope string does not have
	// three valid base64 segments, carries an IV of the wrong size, or
	// decrypts to badly padded plaintext.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrIntegrity is returned when the MAC of an envelope does not match the
	// one recomputed under the authentication key. No decryption is attempted.
	ErrIntegrity = errors.New("envelope integrity check failed")

	// ErrAuthenticationFailed is returned when a protected vault key cannot be
	// unwrapped, which almost always means a wrong password.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKeyLength is returned when key material has an unexpected size.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidStoredHash is returned when a stored PHC string cannot be parsed.
	ErrInvalidStoredHash = errors.New("invalid stored password hash")

	// ErrUnsupportedProtocolVersion is returned for accounts created with a
	// protocol version this build does not implement.
	ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")

	// ErrVaultLocked is returned by [Keyring] when no vault key is held.
	ErrVaultLocked = errors.New("vault is locked")
)
