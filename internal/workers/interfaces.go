// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs.
package workers

import "context"

// Worker is a background job. Run must return promptly; long running work
// happens in a goroutine that stops when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
