// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that callers cannot tell which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrValidationNoUserID = errors.New("no user ID for vault item was given")
	ErrNothingToUpdate    = errors.New("nothing to update")

	// ErrNoLocalAccount is returned by an offline unlock for an email that
	// never signed in on this device.
	ErrNoLocalAccount = errors.New("no cached account for this email, sign in first")

	ErrRegisterOnServer  = errors.New("registration on server failed")
	ErrLoginOnServer     = errors.New("login on server failed")
	ErrServerUnavailable = errors.New("server is unavailable")
)
