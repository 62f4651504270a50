// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

// UserRepository persists server-side accounts.
type UserRepository interface {
	// CreateUser inserts the account and returns it with UserID and
	// timestamps populated. A taken email yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields [ErrNoUserWasFound] for an unknown email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultItemRepository persists encrypted vault items. Every method is scoped
// to one owner; another account's item behaves as if it did not exist.
type VaultItemRepository interface {
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error)
	GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error)
	UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
