// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-auth-service"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultDBDriver       = "pgx"
)

// applyDefaults fills in non-secret settings that were not provided by any
// configuration source. The token signing key deliberately has no default.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Storage.DB.Driver == "" {
		c.Storage.DB.Driver = defaultDBDriver
	}
}

// validate checks that the merged configuration is complete enough to start
// the process. Secrets are never defaulted: a missing token sign key must
// fail startup instead of silently issuing forgeable tokens.
func (c *StructuredConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if c.Storage.DB.Driver != "pgx" && c.Storage.DB.Driver != "sqlite3" {
		return ErrUnknownDBDriver
	}

	return nil
}
