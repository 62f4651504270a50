// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginItem is the decrypted form of a [VaultItem]. It only ever exists in
// client memory.
type LoginItem struct {
	ItemID   int64
	Name     string
	URI      string
	Username string
	Password string
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoginItemUpdate lists the plaintext fields to change. Nil fields are left
// untouched and are not re-encrypted.
type LoginItemUpdate struct {
	ItemID   int64
	Name     *string
	URI      *string
	Username *string
	Password *string
	Notes    *string
}
