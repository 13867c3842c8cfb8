/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/humaidq/swasthya/registry"
)

// SyncResult counts the rows a registry sync added.
type SyncResult struct {
	Tests   int
	Aliases int
}

// SyncRegistry seeds the registry tables from t. Rows that already exist
// are left alone so edits made in the database survive restarts.
func (s *Store) SyncRegistry(ctx context.Context, t registry.Tables) (SyncResult, error) {
	var result SyncResult

	if s == nil || s.pool == nil {
		return result, ErrDatabaseConnectionNotInitialized
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback after commit is a no-op.

	_, err = tx.Exec(ctx, `
		INSERT INTO registry_settings (id, default_cost, default_validity_days)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`, t.DefaultCost, t.DefaultValidityDays)
	if err != nil {
		return result, fmt.Errorf("failed to sync registry settings: %w", err)
	}

	offset, err := nextPosition(ctx, tx, "test_definitions")
	if err != nil {
		return result, err
	}

	for i, def := range t.Tests {
		tag, err := tx.Exec(ctx, `
			INSERT INTO test_definitions (id, canonical_name, cost_units, validity_days, category, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (canonical_name) DO NOTHING
		`, uuid.New(), def.CanonicalName, def.CostUnits, nullableDays(def.ValidityDays), categoryOrOther(def.Category), offset+i)
		if err != nil {
			return result, fmt.Errorf("failed to sync test %q: %w", def.CanonicalName, err)
		}

		result.Tests += int(tag.RowsAffected())
	}

	offset, err = nextPosition(ctx, tx, "test_aliases")
	if err != nil {
		return result, err
	}

	for i, entry := range t.Aliases {
		tag, err := tx.Exec(ctx, `
			INSERT INTO test_aliases (alias, canonical_name, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (alias) DO NOTHING
		`, registry.Fold(entry.Alias), entry.CanonicalName, offset+i)
		if err != nil {
			return result, fmt.Errorf("failed to sync alias %q: %w", entry.Alias, err)
		}

		result.Aliases += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("failed to commit registry sync: %w", err)
	}

	logger.Info("Synced test registry", "tests_added", result.Tests, "aliases_added", result.Aliases)

	return result, nil
}

// querier is the part of pgxpool.Pool and pgx.Tx the registry reads need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LoadTables reads the registry tables in declaration order.
func (s *Store) LoadTables(ctx context.Context) (registry.Tables, error) {
	if s == nil || s.pool == nil {
		return registry.Tables{}, ErrDatabaseConnectionNotInitialized
	}

	return loadTables(ctx, s.pool)
}

func loadTables(ctx context.Context, q querier) (registry.Tables, error) {
	var t registry.Tables

	err := q.QueryRow(ctx, `
		SELECT default_cost, default_validity_days FROM registry_settings WHERE id
	`).Scan(&t.DefaultCost, &t.DefaultValidityDays)
	if errors.Is(err, pgx.ErrNoRows) {
		t.DefaultCost = registry.DefaultCost
		t.DefaultValidityDays = registry.DefaultValidityDays
	} else if err != nil {
		return t, fmt.Errorf("failed to load registry settings: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT canonical_name, cost_units, validity_days, category
		FROM test_definitions
		ORDER BY position, canonical_name
	`)
	if err != nil {
		return t, fmt.Errorf("failed to list test definitions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			def      registry.TestDefinition
			days     *int32
			category string
		)

		if err := rows.Scan(&def.CanonicalName, &def.CostUnits, &days, &category); err != nil {
			return t, fmt.Errorf("failed to scan test definition: %w", err)
		}

		if days != nil {
			def.ValidityDays = int(*days)
		}

		def.Category, err = registry.ParseCategory(category)
		if err != nil {
			return t, fmt.Errorf("%w: %q: %w", errUnknownCategory, def.CanonicalName, err)
		}

		t.Tests = append(t.Tests, def)
	}

	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("error iterating test definitions: %w", err)
	}

	aliasRows, err := q.Query(ctx, `
		SELECT alias, canonical_name FROM test_aliases ORDER BY position, alias
	`)
	if err != nil {
		return t, fmt.Errorf("failed to list test aliases: %w", err)
	}
	defer aliasRows.Close()

	for aliasRows.Next() {
		var entry registry.AliasEntry
		if err := aliasRows.Scan(&entry.Alias, &entry.CanonicalName); err != nil {
			return t, fmt.Errorf("failed to scan test alias: %w", err)
		}

		t.Aliases = append(t.Aliases, entry)
	}

	if err := aliasRows.Err(); err != nil {
		return t, fmt.Errorf("error iterating test aliases: %w", err)
	}

	return t, nil
}

// LoadRegistry builds a validated registry from the stored tables.
func (s *Store) LoadRegistry(ctx context.Context) (*registry.Registry, error) {
	t, err := s.LoadTables(ctx)
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(t)
	if err != nil {
		return nil, fmt.Errorf("stored registry is invalid: %w", err)
	}

	return reg, nil
}

// UpsertTest creates or replaces a single test definition. The edit is
// rejected, and nothing is written, when the stored registry would no
// longer validate with it applied.
func (s *Store) UpsertTest(ctx context.Context, def registry.TestDefinition) error {
	category, err := registry.ParseCategory(string(def.Category))
	if err != nil {
		return err
	}

	def.Category = category

	return s.editRegistry(ctx, registry.Overrides{Tests: []registry.TestDefinition{def}}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO test_definitions (id, canonical_name, cost_units, validity_days, category, position)
			VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(position) + 1, 0) FROM test_definitions))
			ON CONFLICT (canonical_name)
			DO UPDATE SET
				cost_units = EXCLUDED.cost_units,
				validity_days = EXCLUDED.validity_days,
				category = EXCLUDED.category,
				updated_at = now()
		`, uuid.New(), strings.TrimSpace(def.CanonicalName), def.CostUnits, nullableDays(def.ValidityDays), string(category))
		if err != nil {
			return fmt.Errorf("failed to upsert test %q: %w", def.CanonicalName, err)
		}

		return nil
	})
}

// UpsertAlias points alias at canonicalName, subject to the same
// validation as UpsertTest.
func (s *Store) UpsertAlias(ctx context.Context, alias, canonicalName string) error {
	entry := registry.AliasEntry{Alias: registry.Fold(alias), CanonicalName: strings.TrimSpace(canonicalName)}

	return s.editRegistry(ctx, registry.Overrides{Aliases: []registry.AliasEntry{entry}}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO test_aliases (alias, canonical_name, position)
			VALUES ($1, $2, (SELECT COALESCE(MAX(position) + 1, 0) FROM test_aliases))
			ON CONFLICT (alias)
			DO UPDATE SET canonical_name = EXCLUDED.canonical_name
		`, entry.Alias, entry.CanonicalName)
		if err != nil {
			return fmt.Errorf("failed to upsert alias %q: %w", alias, err)
		}

		return nil
	})
}

// editRegistry validates the stored tables with o applied and runs write
// in the same transaction. The registry tables are locked for the
// duration so concurrent edits cannot combine into an invalid registry.
func (s *Store) editRegistry(ctx context.Context, o registry.Overrides, write func(pgx.Tx) error) error {
	if s == nil || s.pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback after commit is a no-op.

	if _, err := tx.Exec(ctx, `LOCK TABLE test_definitions, test_aliases IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("failed to lock registry tables: %w", err)
	}

	stored, err := loadTables(ctx, tx)
	if err != nil {
		return err
	}

	if err := validateEdit(stored, o); err != nil {
		return err
	}

	if err := write(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit registry edit: %w", err)
	}

	return nil
}

// validateEdit reports whether stored with o applied is a valid registry.
func validateEdit(stored registry.Tables, o registry.Overrides) error {
	if _, err := registry.New(registry.Merge(stored, o)); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistryEditRejected, err)
	}

	return nil
}

func nextPosition(ctx context.Context, tx pgx.Tx, table string) (int, error) {
	var next int

	query := "SELECT COALESCE(MAX(position) + 1, 0) FROM " + pgx.Identifier{table}.Sanitize()
	if err := tx.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to read next position of %s: %w", table, err)
	}

	return next, nil
}

func nullableDays(days int) *int {
	if days <= 0 {
		return nil
	}

	return &days
}

func categoryOrOther(c registry.Category) string {
	if c == "" {
		return string(registry.CategoryOther)
	}

	return string(c)
}
