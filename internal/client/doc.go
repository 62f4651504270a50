// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault client.
//
// The client reads one command per line, prompts for secrets without echo
// when attached to a terminal and keeps the vault key in the keyring of
// [service.ClientServices] until lock, logout or exit.
package client
