// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/mock"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testVaultKey = append(bytes.Repeat([]byte{0x31}, 32), bytes.Repeat([]byte{0x32}, 32)...)

func itemKeys(t *testing.T) crypto.KeyPair {
	t.Helper()
	keys, err := crypto.SplitVaultKey(bytes.Clone(testVaultKey))
	require.NoError(t, err)
	return keys
}

func newUnlockedVault(t *testing.T) (ClientVaultService, *mock.MockServerAdapter, *crypto.Keyring) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	keyring := crypto.NewKeyring()
	require.NoError(t, keyring.Unlock(bytes.Clone(testVaultKey)))
	t.Cleanup(keyring.Clear)

	svc := NewClientVaultService(serverAdapter, crypto.NewKeyChainService(), keyring, logger.Nop())
	return svc, serverAdapter, keyring
}

func sealField(t *testing.T, plain string) models.CipheredField {
	t.Helper()
	sealed, err := crypto.Seal(itemKeys(t), []byte(plain))
	require.NoError(t, err)
	return models.CipheredField(sealed)
}

func openField(t *testing.T, f models.CipheredField) string {
	t.Helper()
	plain, err := crypto.Open(itemKeys(t), string(f))
	require.NoError(t, err)
	return string(plain)
}

func TestClientVault_AddItem_SealsEveryField(t *testing.T) {
	svc, serverAdapter, _ := newUnlockedVault(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	serverAdapter.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields models.VaultItemFields) (models.VaultItem, error) {
			assert.NoError(t, crypto.ValidateEnvelope(string(fields.Name)))
			assert.Equal(t, "GitHub", openField(t, fields.Name))
			require.NotNil(t, fields.Password)
			assert.Equal(t, "s3cr3t", openField(t, *fields.Password))
			assert.NotContains(t, string(*fields.Password), "s3cr3t")
			assert.Nil(t, fields.Notes, "empty fields are not sent")

			return models.VaultItem{ItemID: 7, VaultItemFields: fields, CreatedAt: created, UpdatedAt: created}, nil
		})

	item, err := svc.AddItem(context.Background(), models.LoginItem{
		Name:     "GitHub",
		URI:      "https://github.com",
		Username: "alice",
		Password: "s3cr3t",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ItemID)
	assert.Equal(t, created, item.CreatedAt)
	assert.Equal(t, "s3cr3t", item.Password)
}

func TestClientVault_AddItem_Locked(t *testing.T) {
	svc, _, keyring := newUnlockedVault(t)
	keyring.Clear()

	_, err := svc.AddItem(context.Background(), models.LoginItem{Name: "GitHub"})

	assert.ErrorIs(t, err, crypto.ErrVaultLocked)
}

func TestClientVault_AddItem_NameRequired(t *testing.T) {
	svc, _, _ := newUnlockedVault(t)

	_, err := svc.AddItem(context.Background(), models.LoginItem{Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientVault_ListItems_Decrypts(t *testing.T) {
	svc, serverAdapter, _ := newUnlockedVault(t)

	user := sealField(t, "alice")
	serverAdapter.EXPECT().ListItems(gomock.Any()).Return([]models.VaultItem{
		{ItemID: 1, VaultItemFields: models.VaultItemFields{Name: sealField(t, "GitHub"), Username: &user}},
		{ItemID: 2, VaultItemFields: models.VaultItemFields{Name: sealField(t, "Mail")}},
	}, nil)

	items, err := svc.ListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "GitHub", items[0].Name)
	assert.Equal(t, "alice", items[0].Username)
	assert.Equal(t, "Mail", items[1].Name)
	assert.Empty(t, items[1].Username)
}

func TestClientVault_ListItems_TamperedField(t *testing.T) {
	svc, serverAdapter, _ := newUnlockedVault(t)

	other, err := crypto.NewKeyPair(bytes.Repeat([]byte{0x31}, 32), bytes.Repeat([]byte{0x99}, 32))
	require.NoError(t, err)
	forged, err := crypto.Seal(other, []byte("GitHub"))
	require.NoError(t, err)

	serverAdapter.EXPECT().ListItems(gomock.Any()).Return([]models.VaultItem{
		{ItemID: 1, VaultItemFields: models.VaultItemFields{Name: models.CipheredField(forged)}},
	}, nil)

	_, err = svc.ListItems(context.Background())

	assert.ErrorIs(t, err, crypto.ErrIntegrity)
}

func TestClientVault_ListItems_LockedDoesNotCallServer(t *testing.T) {
	svc, _, keyring := newUnlockedVault(t)
	keyring.Clear()

	_, err := svc.ListItems(context.Background())

	assert.ErrorIs(t, err, crypto.ErrVaultLocked)
}

func TestClientVault_UpdateItem_OnlyChangedFields(t *testing.T) {
	svc, serverAdapter, _ := newUnlockedVault(t)
	newPassword := "n3w-pass"

	serverAdapter.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, upd models.VaultItemUpdate) (models.VaultItem, error) {
			assert.Equal(t, int64(3), upd.ItemID)
			assert.Nil(t, upd.Name)
			assert.Nil(t, upd.Username)
			require.NotNil(t, upd.Password)
			assert.Equal(t, newPassword, openField(t, *upd.Password))

			return models.VaultItem{
				ItemID:          3,
				VaultItemFields: models.VaultItemFields{Name: sealField(t, "GitHub"), Password: upd.Password},
			}, nil
		})

	item, err := svc.UpdateItem(context.Background(), models.LoginItemUpdate{ItemID: 3, Password: &newPassword})

	require.NoError(t, err)
	assert.Equal(t, "GitHub", item.Name)
	assert.Equal(t, newPassword, item.Password)
}

func TestClientVault_UpdateItem_NothingToUpdate(t *testing.T) {
	svc, _, _ := newUnlockedVault(t)

	_, err := svc.UpdateItem(context.Background(), models.LoginItemUpdate{ItemID: 3})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestClientVault_GetItem_NotFound(t *testing.T) {
	svc, serverAdapter, _ := newUnlockedVault(t)

	serverAdapter.EXPECT().GetItem(gomock.Any(), int64(42)).
		Return(models.VaultItem{}, fmt.Errorf("%w: item not found", adapter.ErrNotFound))

	_, err := svc.GetItem(context.Background(), 42)

	assert.ErrorIs(t, err, store.ErrVaultItemNotFound)
}

func TestClientVault_DeleteItem(t *testing.T) {
	svc, serverAdapter, _ := newUnlockedVault(t)

	serverAdapter.EXPECT().DeleteItem(gomock.Any(), int64(5)).Return(nil)

	assert.NoError(t, svc.DeleteItem(context.Background(), 5))
}
