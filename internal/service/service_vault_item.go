// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
)

type vaultItemService struct {
	vaultItemRepository store.VaultItemRepository

	logger *logger.Logger
}

func NewVaultItemService(vaultItemRepository store.VaultItemRepository, logger *logger.Logger) VaultItemService {
	return &vaultItemService{
		vaultItemRepository: vaultItemRepository,
		logger:              logger,
	}
}

func (s *vaultItemService) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if item.UserID <= 0 {
		return models.VaultItem{}, ErrValidationNoUserID
	}
	return s.vaultItemRepository.CreateItem(ctx, item)
}

func (s *vaultItemService) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}
	return s.vaultItemRepository.ListItems(ctx, userID)
}

func (s *vaultItemService) GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	if userID <= 0 {
		return models.VaultItem{}, ErrValidationNoUserID
	}
	return s.vaultItemRepository.GetItem(ctx, userID, itemID)
}

func (s *vaultItemService) UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	if update.UserID <= 0 {
		return models.VaultItem{}, ErrValidationNoUserID
	}
	if update.IsEmpty() {
		return models.VaultItem{}, ErrNothingToUpdate
	}
	return s.vaultItemRepository.UpdateItem(ctx, update)
}

func (s *vaultItemService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	return s.vaultItemRepository.DeleteItem(ctx, userID, itemID)
}
