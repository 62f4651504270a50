// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

type clientVaultService struct {
	adapter  adapter.ServerAdapter
	keychain crypto.KeyChainService
	keyring  *crypto.Keyring

	logger *logger.Logger
}

func NewClientVaultService(
	serverAdapter adapter.ServerAdapter,
	keychain crypto.KeyChainService,
	keyring *crypto.Keyring,
	logger *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		adapter:  serverAdapter,
		keychain: keychain,
		keyring:  keyring,
		logger:   logger,
	}
}

func (s *clientVaultService) AddItem(ctx context.Context, item models.LoginItem) (models.LoginItem, error) {
	if item.Name == "" {
		return models.LoginItem{}, fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	}

	var fields models.VaultItemFields
	err := s.keyring.WithItemKeys(func(keys crypto.KeyPair) error {
		var err error
		fields, err = s.sealItem(keys, item)
		return err
	})
	if err != nil {
		return models.LoginItem{}, err
	}

	stored, err := s.adapter.CreateItem(ctx, fields)
	if err != nil {
		return models.LoginItem{}, mapAdapterError(err, ErrServerUnavailable)
	}

	item.ItemID = stored.ItemID
	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = stored.UpdatedAt
	return item, nil
}

func (s *clientVaultService) ListItems(ctx context.Context) ([]models.LoginItem, error) {
	if !s.keyring.IsUnlocked() {
		return nil, crypto.ErrVaultLocked
	}

	stored, err := s.adapter.ListItems(ctx)
	if err != nil {
		return nil, mapAdapterError(err, ErrServerUnavailable)
	}

	items := make([]models.LoginItem, 0, len(stored))
	err = s.keyring.WithItemKeys(func(keys crypto.KeyPair) error {
		for _, v := range stored {
			item, err := s.openItem(keys, v)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *clientVaultService) GetItem(ctx context.Context, itemID int64) (models.LoginItem, error) {
	if !s.keyring.IsUnlocked() {
		return models.LoginItem{}, crypto.ErrVaultLocked
	}

	stored, err := s.adapter.GetItem(ctx, itemID)
	if err != nil {
		return models.LoginItem{}, mapAdapterError(err, ErrServerUnavailable)
	}

	return s.open(stored)
}

func (s *clientVaultService) UpdateItem(ctx context.Context, update models.LoginItemUpdate) (models.LoginItem, error) {
	upd := models.VaultItemUpdate{ItemID: update.ItemID}

	err := s.keyring.WithItemKeys(func(keys crypto.KeyPair) error {
		targets := []struct {
			plain *string
			dst   **models.CipheredField
		}{
			{update.Name, &upd.Name},
			{update.URI, &upd.URI},
			{update.Username, &upd.Username},
			{update.Password, &upd.Password},
			{update.Notes, &upd.Notes},
		}
		for _, t := range targets {
			if t.plain == nil {
				continue
			}
			sealed, err := s.keychain.SealField(keys, *t.plain)
			if err != nil {
				return fmt.Errorf("sealing field: %w", err)
			}
			f := models.CipheredField(sealed)
			*t.dst = &f
		}
		return nil
	})
	if err != nil {
		return models.LoginItem{}, err
	}
	if upd.IsEmpty() {
		return models.LoginItem{}, ErrNothingToUpdate
	}

	stored, err := s.adapter.UpdateItem(ctx, upd)
	if err != nil {
		return models.LoginItem{}, mapAdapterError(err, ErrServerUnavailable)
	}

	return s.open(stored)
}

func (s *clientVaultService) DeleteItem(ctx context.Context, itemID int64) error {
	if err := s.adapter.DeleteItem(ctx, itemID); err != nil {
		return mapAdapterError(err, ErrServerUnavailable)
	}
	return nil
}

func (s *clientVaultService) open(stored models.VaultItem) (models.LoginItem, error) {
	var item models.LoginItem
	err := s.keyring.WithItemKeys(func(keys crypto.KeyPair) error {
		var err error
		item, err = s.openItem(keys, stored)
		return err
	})
	return item, err
}

// sealItem encrypts every non-empty field; empty optional fields stay nil.
func (s *clientVaultService) sealItem(keys crypto.KeyPair, item models.LoginItem) (models.VaultItemFields, error) {
	var fields models.VaultItemFields

	name, err := s.keychain.SealField(keys, item.Name)
	if err != nil {
		return fields, fmt.Errorf("sealing name: %w", err)
	}
	fields.Name = models.CipheredField(name)

	optional := []struct {
		plain string
		dst   **models.CipheredField
	}{
		{item.URI, &fields.URI},
		{item.Username, &fields.Username},
		{item.Password, &fields.Password},
		{item.Notes, &fields.Notes},
	}
	for _, o := range optional {
		if o.plain == "" {
			continue
		}
		sealed, err := s.keychain.SealField(keys, o.plain)
		if err != nil {
			return fields, fmt.Errorf("sealing field: %w", err)
		}
		f := models.CipheredField(sealed)
		*o.dst = &f
	}

	return fields, nil
}

func (s *clientVaultService) openItem(keys crypto.KeyPair, stored models.VaultItem) (models.LoginItem, error) {
	item := models.LoginItem{
		ItemID:    stored.ItemID,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
	}

	targets := map[string]*string{
		"name":     &item.Name,
		"uri":      &item.URI,
		"username": &item.Username,
		"password": &item.Password,
		"notes":    &item.Notes,
	}
	err := stored.Each(func(name string, value models.CipheredField) error {
		plain, err := s.keychain.OpenField(keys, string(value))
		if err != nil {
			return fmt.Errorf("opening %s of item %d: %w", name, stored.ItemID, err)
		}
		*targets[name] = plain
		return nil
	})
	if err != nil {
		return models.LoginItem{}, err
	}

	return item, nil
}
