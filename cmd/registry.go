/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/db"
	"github.com/humaidq/swasthya/registry"
)

var CmdRegistry = &cli.Command{
	Name:  "registry",
	Usage: "Manage the test registry stored in PostgreSQL",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string",
		},
	},
	Commands: []*cli.Command{
		{
			Name:  "sync",
			Usage: "Seed the registry tables with tests and aliases that are not stored yet",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "registry-file",
					Sources: cli.EnvVars("REGISTRY_FILE"),
					Usage:   "YAML file merged over the built-in registry before seeding",
				},
			},
			Action: registrySync,
		},
		{
			Name:   "set",
			Usage:  "Add or replace one test: <name> <cost> [validity-days] [category]",
			Action: registrySet,
		},
		{
			Name:   "alias",
			Usage:  "Point an alias at a stored test: <alias> <name>",
			Action: registryAlias,
		},
	},
}

func openStore(ctx context.Context, cmd *cli.Command) (*db.Store, error) {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return nil, errDatabaseURLRequired
	}

	store, err := db.Open(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return store, nil
}

func registrySync(ctx context.Context, cmd *cli.Command) error {
	seed := registry.Default()

	if path := cmd.String("registry-file"); path != "" {
		fromFile, err := registry.LoadFile(path)
		if err != nil {
			return err
		}

		seed = fromFile
	}

	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.SyncRegistry(ctx, seed.Tables())
	if err != nil {
		return fmt.Errorf("failed to sync test registry: %w", err)
	}

	appLogger.Info("Synced test registry", "tests_added", result.Tests, "aliases_added", result.Aliases)

	return nil
}

func registrySet(ctx context.Context, cmd *cli.Command) error {
	def, err := parseDefinitionArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	// UpsertTest validates the stored registry with the edit applied and
	// writes nothing if it would not load.
	if err := store.UpsertTest(ctx, def); err != nil {
		return err
	}

	appLogger.Info("Stored test definition", "name", def.CanonicalName, "cost", def.CostUnits, "validity_days", def.ValidityDays)

	return nil
}

func registryAlias(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return errAliasArgs
	}

	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpsertAlias(ctx, args.Get(0), args.Get(1)); err != nil {
		return err
	}

	appLogger.Info("Stored alias", "alias", registry.Fold(args.Get(0)), "name", args.Get(1))

	return nil
}

// parseDefinitionArgs reads <name> <cost> [validity-days] [category].
func parseDefinitionArgs(args []string) (registry.TestDefinition, error) {
	if len(args) < 2 || len(args) > 4 {
		return registry.TestDefinition{}, errDefinitionArgs
	}

	def := registry.TestDefinition{
		CanonicalName: strings.TrimSpace(args[0]),
		Category:      registry.CategoryOther,
	}

	cost, err := strconv.ParseFloat(args[1], 64)
	if err != nil || !(cost > 0) || cost > registry.MaxCostUnits {
		return registry.TestDefinition{}, fmt.Errorf("%w: cost %q", errDefinitionArgs, args[1])
	}
	def.CostUnits = cost

	if len(args) > 2 {
		days, err := strconv.Atoi(args[2])
		if err != nil || days < 0 {
			return registry.TestDefinition{}, fmt.Errorf("%w: validity %q", errDefinitionArgs, args[2])
		}
		def.ValidityDays = days
	}

	if len(args) > 3 {
		category, err := registry.ParseCategory(args[3])
		if err != nil {
			return registry.TestDefinition{}, err
		}
		def.Category = category
	}

	if def.CanonicalName == "" {
		return registry.TestDefinition{}, fmt.Errorf("%w: empty name", errDefinitionArgs)
	}

	return def, nil
}
