// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when the email of a new account is
	// already registered.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no account matches the email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultItemNotFound is returned when the item does not exist or is
	// owned by another account.
	ErrVaultItemNotFound = errors.New("vault item was not found")

	// ErrLocalAccountNotFound is returned by the client cache when the email
	// has never signed in on this device.
	ErrLocalAccountNotFound = errors.New("local account not found")

	// ErrTemporarilyUnavailable wraps database errors the classifier marks
	// as retryable (connection loss, serialization failure, deadlock).
	ErrTemporarilyUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level failures wrapped around the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)
