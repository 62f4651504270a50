// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors it does not recognise are wrapped in fallback.
func mapAdapterError(err error, fallback error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrVaultItemNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgAccountExists {
			return ErrAccountExists
		}

	case errors.Is(err, adapter.ErrTooManyRequests),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrUnreachable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
