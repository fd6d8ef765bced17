// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load sources the optional dotenv file, without overriding variables already set, then processes EnvSpec.
func Load(envFile string) (*EnvSpec, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := specs.Validate(); err != nil {
		return nil, err
	}

	return specs, nil
}

func (s *EnvSpec) Validate() error {
	switch s.StorageBackend {
	case BackendPostgres:
		if s.DSN == "" {
			return fmt.Errorf("DSN is required with the %s storage backend", BackendPostgres)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", s.StorageBackend)
	}

	if len(s.JWTSecret) < 32 {
		return fmt.Errorf("jwt secret must be at least 32 characters long")
	}

	if s.SessionLifetime <= 0 || s.InvitationLifetime <= 0 {
		return fmt.Errorf("session and invitation lifetimes must be positive")
	}

	return nil
}
