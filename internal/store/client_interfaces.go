// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalAccountRepository is the client-side cache of protected vault keys.
type LocalAccountRepository interface {
	// SaveAccount inserts or replaces the cached account for its email.
	SaveAccount(ctx context.Context, account models.LocalAccount) error
	// FindAccount yields [ErrLocalAccountNotFound] for an unknown email.
	FindAccount(ctx context.Context, email string) (models.LocalAccount, error)
	DeleteAccount(ctx context.Context, email string) error
}
