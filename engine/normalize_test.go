// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"testing"

	"github.com/humaidq/swasthya/registry"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(nil, Options{})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	tests := []struct {
		input string
		want  string
		res   Resolution
	}{
		{input: "hba1c", want: "HbA1c", res: ResolvedAlias},
		{input: "COMPLETE BLOOD COUNT", want: "CBC", res: ResolvedAlias},
		{input: "  Hemogram ", want: "CBC", res: ResolvedAlias},
		{input: "HBA1C", want: "HbA1c", res: ResolvedAlias},
		{input: "chest x-ray", want: "X-Ray Chest", res: ResolvedAlias},
		{input: "vitamin d", want: "Vitamin D", res: ResolvedCanonical},
		{input: "tsh", want: "TSH", res: ResolvedCanonical},
		{input: "echo", want: "Echo", res: ResolvedCanonical},
		{input: "2D Echo", want: "Echocardiography", res: ResolvedAlias},
		{input: "some random test", want: "Some Random Test", res: ResolvedAdHoc},
		{input: "  SERUM AMYLASE  ", want: "Serum Amylase", res: ResolvedAdHoc},
		{input: "", want: UnknownTest, res: ResolvedUnknown},
		{input: "   \t", want: UnknownTest, res: ResolvedUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			id := e.Resolve(tt.input)
			if id.Name != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, id.Name, tt.want)
			}

			if id.Resolution != tt.res {
				t.Fatalf("Resolve(%q) resolution = %q, want %q", tt.input, id.Resolution, tt.res)
			}

			if id.Input != tt.input {
				t.Fatalf("expected input to be kept, got %q", id.Input)
			}

			wantKnown := tt.res == ResolvedAlias || tt.res == ResolvedCanonical
			if id.Known() != wantKnown {
				t.Fatalf("Known() = %v, want %v", id.Known(), wantKnown)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	inputs := []string{
		"", " ", "hba1c", "HbA1c", "Glycated Hemoglobin", "cbc", "CBC",
		"Complete Blood Count", "lft", "LFT", "Liver Function Test",
		"some random test", "Some Random Test", "x-ray", "covid-19 rt-pcr",
		"vitamin b12 level", "24 hour urine protein", "Unknown Test",
	}

	for _, def := range registry.Default().Definitions() {
		inputs = append(inputs, def.CanonicalName)
	}

	for _, entry := range registry.Default().Aliases() {
		inputs = append(inputs, entry.Alias)
	}

	for _, input := range inputs {
		once := e.Normalize(input)
		if once == "" {
			t.Fatalf("Normalize(%q) returned empty string", input)
		}

		if twice := e.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeUsesInjectedRegistry(t *testing.T) {
	t.Parallel()

	reg, err := registry.New(registry.Tables{
		DefaultCost:         100,
		DefaultValidityDays: 10,
		Tests:               []registry.TestDefinition{{CanonicalName: "Serum Amylase", CostUnits: 550}},
		Aliases:             []registry.AliasEntry{{Alias: "amylase", CanonicalName: "Serum Amylase"}},
	})
	if err != nil {
		t.Fatalf("registry.New failed: %v", err)
	}

	e := New(reg, Options{})

	if got := e.Normalize("AMYLASE"); got != "Serum Amylase" {
		t.Fatalf("expected alias from injected registry, got %q", got)
	}

	if got := e.Normalize("hba1c"); got != "Hba1c" {
		t.Fatalf("expected built-in alias to be absent, got %q", got)
	}

	if e.Registry() != reg {
		t.Fatal("expected engine to keep the injected registry")
	}
}
