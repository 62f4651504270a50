// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

// localAccountRepository is the SQLite-backed [LocalAccountRepository].
type localAccountRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalAccountRepository(db *DB, logger *logger.Logger) LocalAccountRepository {
	return &localAccountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localAccountRepository) SaveAccount(ctx context.Context, account models.LocalAccount) error {
	_, err := r.db.ExecContext(ctx, saveLocalAccount,
		account.Email, account.ProtectedVaultKey, account.ProtocolVersion, account.UpdatedAt.UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "*localAccountRepository.SaveAccount").Msg("error saving account")
		return r.db.wrapError(err)
	}

	return nil
}

func (r *localAccountRepository) FindAccount(ctx context.Context, email string) (models.LocalAccount, error) {
	var account models.LocalAccount

	err := r.db.QueryRowContext(ctx, findLocalAccount, email).
		Scan(&account.Email, &account.ProtectedVaultKey, &account.ProtocolVersion, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalAccount{}, ErrLocalAccountNotFound
		}
		r.logger.Err(err).Str("func", "*localAccountRepository.FindAccount").Msg("error finding account")
		return models.LocalAccount{}, r.db.wrapError(err)
	}

	return account, nil
}

func (r *localAccountRepository) DeleteAccount(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalAccount, email); err != nil {
		r.logger.Err(err).Str("func", "*localAccountRepository.DeleteAccount").Msg("error deleting account")
		return r.db.wrapError(err)
	}

	return nil
}
