// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
)

// VaultItemValidationService rejects items whose fields are not
// well-formed envelopes before they reach storage.
type VaultItemValidationService struct {
	inner     VaultItemService
	validator validators.Validator
}

func NewVaultItemValidationService() VaultItemServiceWrapper {
	return &VaultItemValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultItemValidationService) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("vault item rejected")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateItem(ctx, item)
}

func (v *VaultItemValidationService) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	return v.inner.ListItems(ctx, userID)
}

func (v *VaultItemValidationService) GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	return v.inner.GetItem(ctx, userID, itemID)
}

func (v *VaultItemValidationService) UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("vault item update rejected")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateItem(ctx, update)
}

func (v *VaultItemValidationService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	return v.inner.DeleteItem(ctx, userID, itemID)
}

func (v *VaultItemValidationService) Wrap(wrapped VaultItemService) VaultItemService {
	v.inner = wrapped
	return v
}
