// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

// AuthService registers accounts and verifies sign-in proofs. It never sees
// a password or any key able to decrypt a vault.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultItemService stores encrypted vault items on behalf of their owner.
type VaultItemService interface {
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error)
	GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error)
	UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
}

// VaultItemServiceWrapper defines middleware composition for
// VaultItemService. Implementations wrap an existing VaultItemService to add
// behavior such as validation.
type VaultItemServiceWrapper interface {
	Wrap(VaultItemService) VaultItemService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
