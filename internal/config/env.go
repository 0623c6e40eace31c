// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// legacyEnv holds the two variables the service historically read from the
// process environment. They are mapped onto [StructuredConfig] with lower
// priority than the structured variables.
type legacyEnv struct {
	JWTSecret string `env:"JWT_SECRET"`
	Port      string `env:"PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseLegacyEnv reads JWT_SECRET and PORT into a partial [StructuredConfig].
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = legacy.JWTSecret
	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return cfg, nil
}
