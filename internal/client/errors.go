// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

var (
	errUnknownCommand    = errors.New("unknown command, type help")
	errUsage             = errors.New("wrong arguments")
	errPasswordsMismatch = errors.New("passwords do not match")
	errUnknownField      = errors.New("unknown field, use name, uri, username, password or notes")
	errNothingToCopy     = errors.New("field is empty")
	errClipboard         = errors.New("could not copy to the clipboard")
)

const (
	msgUndecryptable = "stored data could not be decrypted"
	msgFailed        = "operation failed, see the client log for details"
)

// userMessages translates errors for the prompt. An empty msg shows the
// error text, which is reserved for input problems the user typed. Anything
// not listed gets msgFailed.
var userMessages = []struct {
	err error
	msg string
}{
	{errUnknownCommand, ""},
	{errUsage, ""},
	{errPasswordsMismatch, ""},
	{errUnknownField, ""},
	{errNothingToCopy, ""},
	{errClipboard, errClipboard.Error()},
	{crypto.ErrValidation, ""},
	{crypto.ErrVaultLocked, "vault is locked, use signin or unlock first"},
	{service.ErrInvalidCredentials, "invalid email or password"},
	{service.ErrAccountExists, "an account with this email already exists"},
	{service.ErrTokenIsExpiredOrInvalid, "session expired, sign in again"},
	{service.ErrNoLocalAccount, "this email never signed in on this device, use signin"},
	{service.ErrServerUnavailable, "server is unavailable, try again later"},
	{store.ErrVaultItemNotFound, "item not found"},
	{service.ErrNothingToUpdate, "nothing to update"},
	{crypto.ErrIntegrity, msgUndecryptable},
	{crypto.ErrMalformedEnvelope, msgUndecryptable},
}

func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			if m.msg == "" {
				return err.Error()
			}
			return m.msg
		}
	}
	return msgFailed
}
