// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LocalAccount is the client's cached copy of what the server returned at
// the last successful sign-in. It lets the client unlock offline and holds
// nothing the server does not already hold.
type LocalAccount struct {
	Email             string
	ProtectedVaultKey string
	ProtocolVersion   int
	UpdatedAt         time.Time
}
