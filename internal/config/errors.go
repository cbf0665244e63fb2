// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no token signing key was provided by
	// any configuration source. The process must not start without one.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when the database connection string is
	// missing.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrUnknownDBDriver is returned when the configured database driver is
	// neither "pgx" nor "sqlite3".
	ErrUnknownDBDriver = errors.New("unknown database driver")
)
