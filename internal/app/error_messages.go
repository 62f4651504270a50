// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server handlers, middleware and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies. The client matches on them to recover typed errors, so
// the wording is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails structural validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for both an unknown email and a wrong
	// password.
	MsgInvalidCredentials = "invalid email or password"

	// MsgAccountExists is returned when a registration attempt uses an email
	// that is already registered.
	MsgAccountExists = "account already exists"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgInvalidItemID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidItemID = "invalid item id"

	// MsgNothingToUpdate is returned for a PATCH without any field.
	MsgNothingToUpdate = "nothing to update"

	// MsgItemNotFound is returned when the item does not exist for the
	// current user.
	MsgItemNotFound = "item not found"

	// MsgInvalidSignature is returned when the HashSHA256 header is missing
	// or does not match the request body.
	MsgInvalidSignature = "invalid request signature"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgServiceUnavailable is returned when storage reports a transient
	// failure; the client may retry.
	MsgServiceUnavailable = "service temporarily unavailable"
)
