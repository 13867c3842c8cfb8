/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package registry

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk form of registry customisations. Any field left
// out keeps the value of the tables it is merged into.
type Overrides struct {
	DefaultCost         *float64         `yaml:"default_cost"`
	DefaultValidityDays *int             `yaml:"default_validity_days"`
	Tests               []TestDefinition `yaml:"tests"`
	Aliases             []AliasEntry     `yaml:"aliases"`
}

// ParseOverrides decodes YAML registry overrides. Unknown keys are rejected
// so typos in an operator's file do not go unnoticed.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&o); err != nil {
		if strings.TrimSpace(string(data)) == "" {
			return Overrides{}, nil
		}

		return Overrides{}, fmt.Errorf("failed to parse registry overrides: %w", err)
	}

	return o, nil
}

// Merge applies o on top of base. Tests and aliases with an existing name
// are replaced in place; new ones are appended.
func Merge(base Tables, o Overrides) Tables {
	out := Tables{
		DefaultCost:         base.DefaultCost,
		DefaultValidityDays: base.DefaultValidityDays,
		Tests:               make([]TestDefinition, len(base.Tests)),
		Aliases:             make([]AliasEntry, len(base.Aliases)),
	}
	copy(out.Tests, base.Tests)
	copy(out.Aliases, base.Aliases)

	if o.DefaultCost != nil {
		out.DefaultCost = *o.DefaultCost
	}

	if o.DefaultValidityDays != nil {
		out.DefaultValidityDays = *o.DefaultValidityDays
	}

	testIndex := make(map[string]int, len(out.Tests))
	for i, def := range out.Tests {
		testIndex[strings.TrimSpace(def.CanonicalName)] = i
	}

	for _, def := range o.Tests {
		name := strings.TrimSpace(def.CanonicalName)
		if i, ok := testIndex[name]; ok {
			out.Tests[i] = def
			continue
		}

		testIndex[name] = len(out.Tests)
		out.Tests = append(out.Tests, def)
	}

	aliasIndex := make(map[string]int, len(out.Aliases))
	for i, entry := range out.Aliases {
		aliasIndex[Fold(entry.Alias)] = i
	}

	for _, entry := range o.Aliases {
		key := Fold(entry.Alias)
		if i, ok := aliasIndex[key]; ok {
			out.Aliases[i] = entry
			continue
		}

		aliasIndex[key] = len(out.Aliases)
		out.Aliases = append(out.Aliases, entry)
	}

	return out
}

// LoadFile reads YAML overrides from path and returns the built-in
// registry with those overrides applied.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	o, err := ParseOverrides(data)
	if err != nil {
		return nil, err
	}

	return New(Merge(Builtin(), o))
}
