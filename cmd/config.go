/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/db"
	"github.com/humaidq/swasthya/engine"
	"github.com/humaidq/swasthya/logging"
	"github.com/humaidq/swasthya/registry"
)

const runtimeEnvVar = "RUNTIME_ENV"

// Flags shared by every command that builds an engine.
var engineFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "registry-file",
		Sources: cli.EnvVars("REGISTRY_FILE"),
		Usage:   "YAML file with test costs, validity windows and aliases merged over the built-in registry",
	},
	&cli.StringFlag{
		Name:    "currency-symbol",
		Value:   engine.DefaultCurrencySymbol,
		Sources: cli.EnvVars("CURRENCY_SYMBOL"),
		Usage:   "symbol prefixed to savings amounts in messages",
	},
	&cli.BoolFlag{
		Name:    "ignore-future-history",
		Sources: cli.EnvVars("IGNORE_FUTURE_HISTORY"),
		Usage:   "ignore history dated after the request date instead of reporting it as a duplicate",
	},
	&cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Usage:   "log level (debug, info, warn, error)",
	},
}

// developmentMode reports whether RUNTIME_ENV selects development.
// An empty value means production.
func developmentMode(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "development", "dev":
		return true, nil
	case "", "production", "prod":
		return false, nil
	default:
		return false, errInvalidRuntimeEnv
	}
}

func configureLogging(cmd *cli.Command, runtimeEnv string) error {
	dev, err := developmentMode(runtimeEnv)
	if err != nil {
		return err
	}

	level := cmd.String("log-level")
	if dev && !cmd.IsSet("log-level") {
		level = "debug"
	}

	return logging.SetLevel(level)
}

func engineOptions(cmd *cli.Command) engine.Options {
	return engine.Options{
		CurrencySymbol:      cmd.String("currency-symbol"),
		IgnoreFutureHistory: cmd.Bool("ignore-future-history"),
	}
}

// loadRegistry picks the registry source. With a database URL the
// registry lives in PostgreSQL and is seeded from the YAML file (or the
// built-in tables) without overwriting existing rows. Without one the
// YAML file or the built-in tables are used directly. The returned store
// is nil unless the database was used; the caller closes it.
func loadRegistry(ctx context.Context, databaseURL, registryFile string) (*registry.Registry, *db.Store, error) {
	seed := registry.Default()

	if registryFile != "" {
		fromFile, err := registry.LoadFile(registryFile)
		if err != nil {
			return nil, nil, err
		}

		appLogger.Info("Loaded test registry from file", "path", registryFile, "tests", len(fromFile.Definitions()))

		seed = fromFile
	}

	if databaseURL == "" {
		return seed, nil, nil
	}

	store, err := db.Open(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	reg, err := registryFromStore(ctx, store, seed.Tables())
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return reg, store, nil
}

func registryFromStore(ctx context.Context, store *db.Store, seed registry.Tables) (*registry.Registry, error) {
	appLogger.Info("Migrating database schema")

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	result, err := store.SyncRegistry(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to sync test registry: %w", err)
	}

	appLogger.Info("Synced test registry", "tests_added", result.Tests, "aliases_added", result.Aliases)

	reg, err := store.LoadRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load test registry: %w", err)
	}

	return reg, nil
}
