// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/humaidq/swasthya/registry"
)

func TestOpenRequiresDatabaseURL(t *testing.T) {
	t.Parallel()

	if _, err := Open(testContext(), ""); !errors.Is(err, ErrDatabaseURLNotSet) {
		t.Fatalf("expected ErrDatabaseURLNotSet, got %v", err)
	}

	if _, err := OpenMigrationDB(""); !errors.Is(err, ErrDatabaseURLNotSet) {
		t.Fatalf("expected ErrDatabaseURLNotSet, got %v", err)
	}
}

func TestNilStoreIsRejected(t *testing.T) {
	t.Parallel()

	var s *Store

	ctx := testContext()

	if err := s.Ping(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("Ping: expected not initialized, got %v", err)
	}

	if err := s.Migrate(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("Migrate: expected not initialized, got %v", err)
	}

	if _, err := s.SyncRegistry(ctx, registry.Builtin()); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("SyncRegistry: expected not initialized, got %v", err)
	}

	if _, err := s.LoadRegistry(ctx); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("LoadRegistry: expected not initialized, got %v", err)
	}

	if err := s.UpsertAlias(ctx, "a1c", "HbA1c"); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("UpsertAlias: expected not initialized, got %v", err)
	}

	s.Close()
}

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(embedMigrations, "migrations")
	if err != nil {
		t.Fatalf("expected embedded migrations: %v", err)
	}

	if len(entries) == 0 {
		t.Fatal("expected at least one migration")
	}
}

func TestNullableDays(t *testing.T) {
	t.Parallel()

	if nullableDays(0) != nil || nullableDays(-1) != nil {
		t.Fatal("expected non-positive windows to be stored as NULL")
	}

	if got := nullableDays(90); got == nil || *got != 90 {
		t.Fatalf("expected 90, got %v", got)
	}

	if categoryOrOther("") != "other" || categoryOrOther(registry.CategoryUrine) != "urine" {
		t.Fatal("unexpected category mapping")
	}
}

func TestValidateEdit(t *testing.T) {
	t.Parallel()

	stored := registry.Builtin()

	tests := []struct {
		name    string
		edit    registry.Overrides
		wantErr bool
	}{
		{
			name: "new test",
			edit: registry.Overrides{Tests: []registry.TestDefinition{{CanonicalName: "Serum Amylase", CostUnits: 550}}},
		},
		{
			name: "alias to a stable name",
			edit: registry.Overrides{Aliases: []registry.AliasEntry{{Alias: "a1c", CanonicalName: "HbA1c"}}},
		},
		{
			name:    "alias onto another alias",
			edit:    registry.Overrides{Aliases: []registry.AliasEntry{{Alias: "cbc", CanonicalName: "Complete Blood Count"}}},
			wantErr: true,
		},
		{
			name:    "alias to a missing test",
			edit:    registry.Overrides{Aliases: []registry.AliasEntry{{Alias: "amylase", CanonicalName: "Serum Amylase"}}},
			wantErr: true,
		},
		{
			name:    "zero cost",
			edit:    registry.Overrides{Tests: []registry.TestDefinition{{CanonicalName: "CBC", CostUnits: 0}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		err := validateEdit(stored, tt.edit)
		if tt.wantErr {
			if !errors.Is(err, ErrRegistryEditRejected) {
				t.Fatalf("%s: expected ErrRegistryEditRejected, got %v", tt.name, err)
			}

			continue
		}

		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
	}
}
