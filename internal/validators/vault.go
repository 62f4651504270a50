// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/models"
)

const (
	FieldEmail             = "email"
	FieldProof             = "proof"
	FieldProtectedVaultKey = "protected_vault_key"
	FieldProtocolVersion   = "protocol_version"
	FieldUserID            = "user_id"
	FieldItemID            = "item_id"
	FieldCipheredFields    = "ciphered_fields"
)

// VaultValidator validates accounts and vault items.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.VaultItem:
		return v.validateVaultItem(ctx, value, fields...)
	case *models.VaultItem:
		return v.validateVaultItem(ctx, *value, fields...)

	case models.VaultItemUpdate:
		return v.validateVaultItemUpdate(ctx, value, fields...)
	case *models.VaultItemUpdate:
		return v.validateVaultItemUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a registration payload by default; login validates
// only FieldEmail and FieldProof.
func (v *VaultValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldProof, FieldProtectedVaultKey, FieldProtocolVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := crypto.ValidateEmail(user.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldProof:
			if user.Proof == "" {
				return ErrEmptyProof
			}
		case FieldProtectedVaultKey:
			if err := crypto.ValidateEnvelope(user.ProtectedVaultKey); err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidEnvelope, FieldProtectedVaultKey)
			}
		case FieldProtocolVersion:
			if err := crypto.CheckProtocolVersion(user.ProtocolVersion); err != nil {
				return ErrInvalidProtocol
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateVaultItem(_ context.Context, item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCipheredFields}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldItemID:
			if item.ItemID <= 0 {
				return ErrInvalidItemID
			}
		case FieldCipheredFields:
			if item.Name == "" {
				return ErrEmptyName
			}
			if err := item.Each(validateEnvelope); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateVaultItemUpdate(_ context.Context, update models.VaultItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldItemID, FieldCipheredFields}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldItemID:
			if update.ItemID <= 0 {
				return ErrInvalidItemID
			}
		case FieldCipheredFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
			if err := update.Each(validateEnvelope); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEnvelope(name string, value models.CipheredField) error {
	if err := crypto.ValidateEnvelope(string(value)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEnvelope, name)
	}
	return nil
}
