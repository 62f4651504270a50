// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-zk-vault/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, protected_vault_key, protocol_version)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, protected_vault_key, protocol_version, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, protected_vault_key, protocol_version, created_at, updated_at
    FROM users
    WHERE email = $1;`
)

const (
	saveLocalAccount = `INSERT INTO accounts (email, protected_vault_key, protocol_version, updated_at)
    VALUES (?, ?, ?, ?)
    ON CONFLICT(email) DO UPDATE SET
        protected_vault_key = excluded.protected_vault_key,
        protocol_version = excluded.protocol_version,
        updated_at = excluded.updated_at;`

	findLocalAccount = `SELECT email, protected_vault_key, protocol_version, updated_at
    FROM accounts
    WHERE email = ?;`

	deleteLocalAccount = `DELETE FROM accounts WHERE email = ?;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var vaultItemColumns = []string{
	"item_id", "user_id", "name", "uri", "username", "password", "notes", "created_at", "updated_at",
}

var returningVaultItem = "RETURNING " + strings.Join(vaultItemColumns, ", ")

func buildInsertVaultItemQuery(item models.VaultItem) (string, []any, error) {
	query, args, err := psql.Insert(item.TableName()).
		Columns("user_id", "name", "uri", "username", "password", "notes").
		Values(item.UserID, string(item.Name), nullable(item.URI), nullable(item.Username), nullable(item.Password), nullable(item.Notes)).
		Suffix(returningVaultItem).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListVaultItemsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select(vaultItemColumns...).
		From(models.VaultItem{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetVaultItemQuery(userID, itemID int64) (string, []any, error) {
	query, args, err := psql.Select(vaultItemColumns...).
		From(models.VaultItem{}.TableName()).
		Where(ownedItem(userID, itemID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateVaultItemQuery sets only the fields present in update and
// always bumps updated_at.
func buildUpdateVaultItemQuery(update models.VaultItemUpdate) (string, []any, error) {
	builder := psql.Update(models.VaultItem{}.TableName()).
		Set("updated_at", sq.Expr("NOW()"))

	err := update.Each(func(name string, value models.CipheredField) error {
		builder = builder.Set(name, string(value))
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := builder.
		Where(ownedItem(update.UserID, update.ItemID)).
		Suffix(returningVaultItem).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteVaultItemQuery(userID, itemID int64) (string, []any, error) {
	query, args, err := psql.Delete(models.VaultItem{}.TableName()).
		Where(ownedItem(userID, itemID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ownedItem keeps argument order stable: item_id first, then user_id.
func ownedItem(userID, itemID int64) sq.And {
	return sq.And{sq.Eq{"item_id": itemID}, sq.Eq{"user_id": userID}}
}

func nullable(field *models.CipheredField) any {
	if field == nil {
		return nil
	}
	return string(*field)
}

func fieldFromNull(s sql.NullString) *models.CipheredField {
	if !s.Valid {
		return nil
	}
	f := models.CipheredField(s.String)
	return &f
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(row rowScanner) (models.VaultItem, error) {
	var item models.VaultItem
	var name string
	var uri, username, password, notes sql.NullString

	if err := row.Scan(&item.ItemID, &item.UserID, &name, &uri, &username, &password, &notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return models.VaultItem{}, err
	}

	item.Name = models.CipheredField(name)
	item.URI = fieldFromNull(uri)
	item.Username = fieldFromNull(username)
	item.Password = fieldFromNull(password)
	item.Notes = fieldFromNull(notes)

	return item, nil
}
