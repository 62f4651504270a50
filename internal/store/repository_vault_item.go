// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

// vaultItemRepository is the PostgreSQL-backed implementation of
// [VaultItemRepository]. Queries are built with squirrel; every statement
// filters by user_id.
type vaultItemRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	logger.Debug().Msg("creating vault item repository")
	return &vaultItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultItemRepository) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.CreateItem").Msg("error building query")
		return models.VaultItem{}, err
	}

	created, err := scanVaultItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.CreateItem").Int64("user_id", item.UserID).Msg("error inserting vault item")
		return models.VaultItem{}, r.db.wrapError(err)
	}

	return created, nil
}

func (r *vaultItemRepository) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultItemsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.ListItems").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.ListItems").Int64("user_id", userID).Msg("error querying vault items")
		return nil, r.db.wrapError(err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		item, err := scanVaultItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultItemRepository.ListItems").Int64("user_id", userID).Msg("error scanning vault item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.ListItems").Int64("user_id", userID).Msg("error iterating vault items")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *vaultItemRepository) GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetVaultItemQuery(userID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.GetItem").Msg("error building query")
		return models.VaultItem{}, err
	}

	item, err := scanVaultItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultItem{}, ErrVaultItemNotFound
		}
		log.Err(err).Str("func", "*vaultItemRepository.GetItem").Int64("item_id", itemID).Msg("error getting vault item")
		return models.VaultItem{}, r.db.wrapError(err)
	}

	return item, nil
}

// UpdateItem applies a partial update and returns the stored row. An update
// that matches no owned row yields [ErrVaultItemNotFound].
func (r *vaultItemRepository) UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultItemQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.UpdateItem").Msg("error building query")
		return models.VaultItem{}, err
	}

	item, err := scanVaultItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultItem{}, ErrVaultItemNotFound
		}
		log.Err(err).Str("func", "*vaultItemRepository.UpdateItem").Int64("item_id", update.ItemID).Msg("error updating vault item")
		return models.VaultItem{}, r.db.wrapError(err)
	}

	return item, nil
}

func (r *vaultItemRepository) DeleteItem(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVaultItemQuery(userID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.DeleteItem").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.DeleteItem").Int64("item_id", itemID).Msg("error deleting vault item")
		return r.db.wrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(err)
	}
	if affected == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}
