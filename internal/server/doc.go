// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC listeners of the vault server and
// the background workers, and shuts all of them down on SIGINT, SIGTERM or
// SIGQUIT.
package server
