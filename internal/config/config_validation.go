// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"strings"
)

// validate checks the merged server configuration. The database DSN and the
// token signing key have no defaults and must be supplied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RateLimit.RPS < 0 || cfg.Server.RateLimit.Burst < 0 || cfg.Server.RateLimit.TTL < 0 {
		return ErrInvalidServerConfigs
	}

	for _, proxy := range cfg.Server.RateLimit.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("%w: trusted proxy %q is neither an IP nor a CIDR", ErrInvalidServerConfigs, proxy)
		}
	}

	if cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func validProxy(entry string) bool {
	entry = strings.TrimSpace(entry)
	if _, err := netip.ParsePrefix(entry); err == nil {
		return true
	}
	_, err := netip.ParseAddr(entry)
	return err == nil
}

// ValidateServer is called by the server entry point in addition to the
// checks every configuration passes.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RateLimit.RPS == 0 || cfg.Server.RateLimit.Burst == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.LimiterCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
