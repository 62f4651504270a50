// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags of [StructuredConfig]. Every malformed variable is reported, not just
// the first one, wrapped in [ErrInvalidEnvConfigs].
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, errors.Join(aggregate.Errors...))
	}
	return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
}
