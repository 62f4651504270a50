// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService

	// Keyring holds the vault key between sign-in and logout. The caller
	// clears it on exit.
	Keyring *crypto.Keyring
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keychain := crypto.NewKeyChainService()
	keyring := crypto.NewKeyring()

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, localStore.AccountRepository, keychain, keyring, logger),
		VaultService: NewClientVaultService(serverAdapter, keychain, keyring, logger),
		Keyring:      keyring,
	}
}
