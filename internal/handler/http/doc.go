// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// It wires the chi router, the account and vault item handlers, and the
// middleware chain: request tracing, access logging, gzip, bearer
// authentication, body signature checks and per-client rate limiting of
// the authentication endpoints. Handlers only move opaque envelopes between
// the wire and the service layer.
package http
