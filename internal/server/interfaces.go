// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

type Server interface {
	// RunServer blocks until a termination signal arrives or a listener
	// fails, then shuts everything down.
	RunServer()

	Shutdown()
}
