// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CipheredField is an encryption envelope (base64(iv)|base64(ct)|base64(mac))
// protecting a single item field. The server stores it without being able to
// read it.
type CipheredField string

// VaultItemFields is the encrypted content of a vault item. Every field is
// sealed independently with the item keys; optional fields are nil when the
// user left them empty.
type VaultItemFields struct {
	Name     CipheredField  `json:"name"`
	URI      *CipheredField `json:"uri,omitempty"`
	Username *CipheredField `json:"username,omitempty"`
	Password *CipheredField `json:"password,omitempty"`
	Notes    *CipheredField `json:"notes,omitempty"`
}

// Each calls fn for every present field, stopping at the first error.
func (f VaultItemFields) Each(fn func(name string, value CipheredField) error) error {
	if err := fn("name", f.Name); err != nil {
		return err
	}
	return eachOptional(fn, f.URI, f.Username, f.Password, f.Notes)
}

// VaultItem is a stored vault entry.
type VaultItem struct {
	ItemID int64 `json:"id"`
	UserID int64 `json:"-"`

	VaultItemFields

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultItem model.
func (v VaultItem) TableName() string {
	return "vault_items"
}

// VaultItemUpdate is a partial update. Only non-nil fields change; a field
// cannot be removed, only replaced with an envelope of an empty string.
type VaultItemUpdate struct {
	ItemID int64 `json:"-"`
	UserID int64 `json:"-"`

	Name     *CipheredField `json:"name,omitempty"`
	URI      *CipheredField `json:"uri,omitempty"`
	Username *CipheredField `json:"username,omitempty"`
	Password *CipheredField `json:"password,omitempty"`
	Notes    *CipheredField `json:"notes,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u VaultItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.URI == nil && u.Username == nil && u.Password == nil && u.Notes == nil
}

// Each calls fn for every field present in the update.
func (u VaultItemUpdate) Each(fn func(name string, value CipheredField) error) error {
	if u.Name != nil {
		if err := fn("name", *u.Name); err != nil {
			return err
		}
	}
	return eachOptional(fn, u.URI, u.Username, u.Password, u.Notes)
}

var optionalFieldNames = [...]string{"uri", "username", "password", "notes"}

func eachOptional(fn func(string, CipheredField) error, uri, username, password, notes *CipheredField) error {
	for i, v := range [...]*CipheredField{uri, username, password, notes} {
		if v == nil {
			continue
		}
		if err := fn(optionalFieldNames[i], *v); err != nil {
			return err
		}
	}
	return nil
}
