// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the structure of requests before they reach the
// service layer.
//
// The server cannot decrypt anything it stores, so validation is purely
// structural: emails look like addresses, proofs are present, and every
// ciphered field parses as an encryption envelope.
package validators

import "context"

// Validator validates arbitrary input values. When field names are given,
// only those fields are checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
