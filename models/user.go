// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a vault account as the server sees it. It never carries the
// password, the master key or any key able to decrypt the vault.
type User struct {
	// UserID is the internal identifier; not exposed via JSON.
	UserID int64 `json:"-"`

	// Email is the normalized account identifier.
	Email string `json:"email"`

	// Proof is the client-computed password verification value. It travels
	// only in register and login requests and is never persisted.
	Proof string `json:"proof,omitempty"`

	// PasswordHash is the Argon2id PHC re-hash of Proof stored server side.
	PasswordHash string `json:"-"`

	// ProtectedVaultKey is the vault key sealed under the client's stretched
	// master key. Opaque to the server.
	ProtectedVaultKey string `json:"protected_vault_key,omitempty"`

	// ProtocolVersion identifies the key derivation and envelope scheme the
	// account was created with.
	ProtocolVersion int `json:"protocol_version,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthResponse is the body of a successful login: everything the client
// needs to unlock its vault and nothing more.
type AuthResponse struct {
	ProtectedVaultKey string `json:"protected_vault_key"`
	ProtocolVersion   int    `json:"protocol_version"`
}

// Credentials is what the user types. It exists only on the client.
type Credentials struct {
	Email    string
	Password string
}
