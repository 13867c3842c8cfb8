// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/engine"
	"github.com/humaidq/swasthya/registry"
)

func TestDevelopmentMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{value: "", want: false},
		{value: "production", want: false},
		{value: "PROD", want: false},
		{value: "development", want: true},
		{value: " dev ", want: true},
		{value: "staging", wantErr: true},
	}

	for _, tt := range tests {
		got, err := developmentMode(tt.value)
		if tt.wantErr {
			if !errors.Is(err, errInvalidRuntimeEnv) {
				t.Fatalf("%q: expected errInvalidRuntimeEnv, got %v", tt.value, err)
			}

			continue
		}

		if err != nil || got != tt.want {
			t.Fatalf("%q: got (%v, %v), want %v", tt.value, got, err, tt.want)
		}
	}
}

func TestParseDefinitionArgs(t *testing.T) {
	t.Parallel()

	def, err := parseDefinitionArgs([]string{"Vitamin K", "650", "60", "blood"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := registry.TestDefinition{CanonicalName: "Vitamin K", CostUnits: 650, ValidityDays: 60, Category: registry.CategoryBlood}
	if def != want {
		t.Fatalf("got %+v, want %+v", def, want)
	}

	def, err = parseDefinitionArgs([]string{"Allergy Panel", "3000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if def.ValidityDays != 0 || def.Category != registry.CategoryOther {
		t.Fatalf("expected default validity and category, got %+v", def)
	}

	for _, args := range [][]string{
		{"OnlyName"},
		{"Test", "free"},
		{"Test", "0"},
		{"Test", "NaN"},
		{"Test", "1e19"},
		{"Test", "100", "-1"},
		{" ", "100"},
		{"Test", "100", "10", "blood", "extra"},
	} {
		if _, err := parseDefinitionArgs(args); !errors.Is(err, errDefinitionArgs) {
			t.Fatalf("%q: expected errDefinitionArgs, got %v", args, err)
		}
	}
}

func TestReadHistory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	data := `[
		{"test_name": "HbA1c", "test_date": "2024-10-13", "test_value": "6.1"},
		{"test_name": "CBC", "test_date": 20241013}
	]`

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write history: %v", err)
	}

	history, err := readHistory(path, nil)
	if err != nil {
		t.Fatalf("readHistory failed: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}

	if _, ok := history[1].Date(); ok {
		t.Fatal("expected numeric date to be unreadable")
	}

	fromStdin, err := readHistory("-", strings.NewReader(data))
	if err != nil || len(fromStdin) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d (%v)", len(fromStdin), err)
	}

	if _, err := readHistory(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}

	if _, err := readHistory("-", strings.NewReader("{")); err == nil {
		t.Fatal("expected error for malformed history")
	}
}

func TestPrintRegistry(t *testing.T) {
	t.Parallel()

	eng := engine.New(nil, engine.Options{})

	var out bytes.Buffer

	imaging := registry.CategoryImaging
	if err := printRegistry(&out, eng, &imaging); err != nil {
		t.Fatalf("printRegistry failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "MRI") || !strings.Contains(text, "₹8,000") {
		t.Fatalf("expected MRI row with formatted cost, got:\n%s", text)
	}

	if strings.Contains(text, "Hemoglobin") {
		t.Fatalf("expected only imaging tests, got:\n%s", text)
	}

	if !strings.Contains(text, "PET Scan") || !strings.Contains(text, "30 days (default)") {
		t.Fatalf("expected default validity marker, got:\n%s", text)
	}
}

func TestLoadRegistryFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registry.yaml")
	data := "tests:\n  - name: Vitamin K\n    cost: 650\n    validity_days: 60\n"

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write registry file: %v", err)
	}

	reg, store, err := loadRegistry(context.Background(), "", path)
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}

	if store != nil {
		t.Fatal("expected no store without a database URL")
	}

	if cost, ok := reg.Cost("Vitamin K"); !ok || cost != 650 {
		t.Fatalf("expected file override cost 650, got %v (%v)", cost, ok)
	}

	reg, _, err = loadRegistry(context.Background(), "", "")
	if err != nil || reg != registry.Default() {
		t.Fatalf("expected built-in registry, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	for _, name := range []string{"DATABASE_URL", "REGISTRY_FILE", "CURRENCY_SYMBOL", "IGNORE_FUTURE_HISTORY", "LOG_LEVEL"} {
		// Setenv restores the original value after the test.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	path := filepath.Join(t.TempDir(), "history.json")
	data := `[{"test_name": "Thyroid Panel", "test_date": "2024-08-15"}]`

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write history: %v", err)
	}

	var out bytes.Buffer

	app := &cli.Command{
		Name:     "swasthya",
		Writer:   &out,
		Commands: []*cli.Command{CmdCheck},
	}

	args := []string{"swasthya", "check", "--test", "tft", "--date", "2024-11-01", "--history", path, "--currency-symbol", "Rs."}
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	var got engine.DuplicateAssessment
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode output %q: %v", out.String(), err)
	}

	if !got.IsDuplicate || got.CanonicalName != "Thyroid Panel" || got.DaysSince == nil || *got.DaysSince != 78 {
		t.Fatalf("unexpected assessment %+v", got)
	}

	if !strings.Contains(got.Message, "Rs.800") {
		t.Fatalf("expected configured currency in message, got %q", got.Message)
	}
}
