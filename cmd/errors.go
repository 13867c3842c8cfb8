/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errTestNameRequired      = errors.New("test name is required (set via --test)")
	errHistoryFileRequired   = errors.New("history file is required (set via --history)")
	errDefinitionArgs        = errors.New("expected <name> <cost> [validity-days] [category]")
	errAliasArgs             = errors.New("expected <alias> <name>")
	errInvalidRuntimeEnv     = errors.New(runtimeEnvVar + " must be one of: development, dev, production, prod")
)
