// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

// ClientAuthService turns typed credentials into an unlocked keyring. The
// password never leaves the process; only the proof and the protected vault
// key are sent.
type ClientAuthService interface {
	// SignUp validates the credentials, derives keys, generates and wraps a
	// new vault key, registers the account and leaves the vault unlocked.
	SignUp(ctx context.Context, creds models.Credentials) error

	// SignIn proves knowledge of the password to the server, unwraps the
	// returned vault key and leaves the vault unlocked. A wrong password and
	// an unknown email both yield [ErrInvalidCredentials].
	SignIn(ctx context.Context, creds models.Credentials) error

	// Unlock re-opens the vault from the locally cached protected key
	// without contacting the server.
	Unlock(ctx context.Context, creds models.Credentials) error

	// Lock clears the keyring but keeps the session token.
	Lock()

	// Logout clears the keyring and forgets the session token.
	Logout(ctx context.Context) error

	IsUnlocked() bool
}

// ClientVaultService encrypts items before they leave the client and
// decrypts them after they come back. Each field is sealed independently.
type ClientVaultService interface {
	AddItem(ctx context.Context, item models.LoginItem) (models.LoginItem, error)
	ListItems(ctx context.Context) ([]models.LoginItem, error)
	GetItem(ctx context.Context, itemID int64) (models.LoginItem, error)

	// UpdateItem re-encrypts and sends only the fields set in update.
	UpdateItem(ctx context.Context, update models.LoginItemUpdate) (models.LoginItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
}
