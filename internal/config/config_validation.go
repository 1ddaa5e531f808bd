// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN for driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.SessionPolicy == SessionPolicyMulti && cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: redis address is required for the %q session policy", ErrInvalidStorageConfigs, SessionPolicyMulti)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address", ErrInvalidServerConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a App) validate() error {
	if a.AccessTokenSecret == "" || a.RefreshTokenSecret == "" {
		return fmt.Errorf("%w: both token secrets are required", ErrInvalidAppConfigs)
	}
	if a.AccessTokenSecret == a.RefreshTokenSecret {
		return fmt.Errorf("%w: access and refresh secrets must differ", ErrInvalidAppConfigs)
	}
	if a.AccessTokenDuration <= 0 || a.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if a.RefreshTokenDuration <= a.AccessTokenDuration {
		return fmt.Errorf("%w: refresh token must outlive access token", ErrInvalidAppConfigs)
	}
	if a.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, a.PasswordHashCost)
	}
	if a.PasswordHasher != PasswordHasherBcrypt && a.PasswordHasher != PasswordHasherArgon2id {
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, a.PasswordHasher)
	}
	if a.SessionPolicy != SessionPolicySingle && a.SessionPolicy != SessionPolicyMulti {
		return fmt.Errorf("%w: unknown session policy %q", ErrInvalidAppConfigs, a.SessionPolicy)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
