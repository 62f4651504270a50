// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the vault server.
//
// [ServerAdapter] decouples the service layer from the protocol. The package
// ships an HTTP implementation ([NewHTTPServerAdapter]) built on resty and a
// gRPC implementation of the auth calls ([NewGRPCAuthAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// gRPC status codes so that callers can use [errors.Is] regardless of
// transport (e.g. [ErrConflict] for 409 / AlreadyExists).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is everything the client asks of the server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	Token() string

	// Register creates the account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) error

	// Login sends email and proof, stores the bearer token and returns the
	// protected vault key.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	CreateItem(ctx context.Context, fields models.VaultItemFields) (models.VaultItem, error)
	ListItems(ctx context.Context) ([]models.VaultItem, error)
	GetItem(ctx context.Context, itemID int64) (models.VaultItem, error)
	UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error)
	DeleteItem(ctx context.Context, itemID int64) error

	GetAppVersion(ctx context.Context) (string, error)
}
