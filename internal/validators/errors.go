// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidItemID    = errors.New("invalid item ID")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyProof       = errors.New("proof is required")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEnvelope  = errors.New("invalid ciphered field")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidProtocol  = errors.New("unsupported protocol version")
)
