// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// VersionSource reports the version of the server the client talks to.
type VersionSource interface {
	GetAppVersion(ctx context.Context) (string, error)
}
