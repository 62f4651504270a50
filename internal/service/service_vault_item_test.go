// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.VaultItemRepository
// ─────────────────────────────────────────────

type mockVaultItemRepository struct {
	createFn func(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	listFn   func(ctx context.Context, userID int64) ([]models.VaultItem, error)
	getFn    func(ctx context.Context, userID, itemID int64) (models.VaultItem, error)
	updateFn func(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error)
	deleteFn func(ctx context.Context, userID, itemID int64) error
}

func (m *mockVaultItemRepository) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	item.ItemID = 1
	return item, nil
}

func (m *mockVaultItemRepository) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVaultItemRepository) GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, itemID)
	}
	return models.VaultItem{}, store.ErrVaultItemNotFound
}

func (m *mockVaultItemRepository) UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.VaultItem{ItemID: update.ItemID}, nil
}

func (m *mockVaultItemRepository) DeleteItem(ctx context.Context, userID, itemID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, itemID)
	}
	return nil
}

func envelope(t *testing.T, plain string) models.CipheredField {
	t.Helper()
	pair, err := crypto.NewKeyPair(bytes.Repeat([]byte{0x05}, 32), bytes.Repeat([]byte{0x06}, 32))
	require.NoError(t, err)
	sealed, err := crypto.Seal(pair, []byte(plain))
	require.NoError(t, err)
	return models.CipheredField(sealed)
}

func newValidatedVaultService(repo store.VaultItemRepository) VaultItemService {
	return NewVaultItemValidationService().Wrap(NewVaultItemService(repo, logger.Nop()))
}

func TestVaultItemService_CreateItem(t *testing.T) {
	var stored models.VaultItem
	svc := newValidatedVaultService(&mockVaultItemRepository{
		createFn: func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
			stored = item
			item.ItemID = 5
			return item, nil
		},
	})
	name := envelope(t, "GitHub")

	item, err := svc.CreateItem(context.Background(), models.VaultItem{
		UserID:          2,
		VaultItemFields: models.VaultItemFields{Name: name},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ItemID)
	assert.Equal(t, name, stored.Name)
}

func TestVaultItemService_CreateItem_RejectsPlaintext(t *testing.T) {
	called := false
	svc := newValidatedVaultService(&mockVaultItemRepository{
		createFn: func(context.Context, models.VaultItem) (models.VaultItem, error) {
			called = true
			return models.VaultItem{}, nil
		},
	})
	plain := models.CipheredField("hunter2")

	_, err := svc.CreateItem(context.Background(), models.VaultItem{
		UserID:          2,
		VaultItemFields: models.VaultItemFields{Name: envelope(t, "GitHub"), Password: &plain},
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, called)
}

func TestVaultItemService_CreateItem_NoUser(t *testing.T) {
	svc := NewVaultItemService(&mockVaultItemRepository{}, logger.Nop())

	_, err := svc.CreateItem(context.Background(), models.VaultItem{VaultItemFields: models.VaultItemFields{Name: envelope(t, "x")}})

	assert.ErrorIs(t, err, ErrValidationNoUserID)
}

func TestVaultItemService_UpdateItem(t *testing.T) {
	password := envelope(t, "n3w")

	t.Run("passes the update through", func(t *testing.T) {
		var got models.VaultItemUpdate
		svc := newValidatedVaultService(&mockVaultItemRepository{
			updateFn: func(_ context.Context, upd models.VaultItemUpdate) (models.VaultItem, error) {
				got = upd
				return models.VaultItem{ItemID: upd.ItemID}, nil
			},
		})

		_, err := svc.UpdateItem(context.Background(), models.VaultItemUpdate{UserID: 1, ItemID: 9, Password: &password})
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ItemID)
		assert.Nil(t, got.Name)
	})

	t.Run("empty update", func(t *testing.T) {
		svc := newValidatedVaultService(&mockVaultItemRepository{})
		_, err := svc.UpdateItem(context.Background(), models.VaultItemUpdate{UserID: 1, ItemID: 9})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("empty update without validation", func(t *testing.T) {
		svc := NewVaultItemService(&mockVaultItemRepository{}, logger.Nop())
		_, err := svc.UpdateItem(context.Background(), models.VaultItemUpdate{UserID: 1, ItemID: 9})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})
}

func TestVaultItemService_OwnerScoped(t *testing.T) {
	svc := newValidatedVaultService(&mockVaultItemRepository{
		getFn: func(_ context.Context, userID, itemID int64) (models.VaultItem, error) {
			if userID == 1 && itemID == 7 {
				return models.VaultItem{ItemID: 7, UserID: 1}, nil
			}
			return models.VaultItem{}, store.ErrVaultItemNotFound
		},
		deleteFn: func(_ context.Context, userID, itemID int64) error {
			if userID != 1 {
				return store.ErrVaultItemNotFound
			}
			return nil
		},
	})
	ctx := context.Background()

	_, err := svc.GetItem(ctx, 1, 7)
	assert.NoError(t, err)

	_, err = svc.GetItem(ctx, 2, 7)
	assert.ErrorIs(t, err, store.ErrVaultItemNotFound)

	assert.ErrorIs(t, svc.DeleteItem(ctx, 2, 7), store.ErrVaultItemNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, 0, 7), ErrValidationNoUserID)
	assert.NoError(t, svc.DeleteItem(ctx, 1, 7))

	_, err = svc.ListItems(ctx, 0)
	assert.ErrorIs(t, err, ErrValidationNoUserID)
}
