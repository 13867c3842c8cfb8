/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package registry holds the canonical test tables: aliases, costs and
// validity windows. A Registry is immutable once built and may be shared
// by any number of goroutines.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Fallbacks applied when a test has no entry of its own.
const (
	DefaultCost         = 500
	DefaultValidityDays = 30
)

// MaxCostUnits bounds every cost so amounts stay exact when rounded to
// whole units.
const MaxCostUnits = 1e12

// Category is the broad kind of a diagnostic test.
type Category string

// Category values represent supported test buckets.
const (
	CategoryBlood   Category = "blood"
	CategoryImaging Category = "imaging"
	CategoryUrine   Category = "urine"
	CategoryOther   Category = "other"
)

// ParseCategory returns the category named by s. An empty string maps to
// CategoryOther.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryBlood, CategoryImaging, CategoryUrine, CategoryOther:
		return c, nil
	case "":
		return CategoryOther, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownCategory, s)
	}
}

// TestDefinition describes one canonical test. A zero ValidityDays means
// the test has no window of its own and the registry default applies.
type TestDefinition struct {
	CanonicalName string   `yaml:"name" json:"name"`
	CostUnits     float64  `yaml:"cost" json:"cost"`
	ValidityDays  int      `yaml:"validity_days,omitempty" json:"validity_days,omitempty"`
	Category      Category `yaml:"category,omitempty" json:"category,omitempty"`
}

// AliasEntry maps an alternative spelling to a canonical test name.
type AliasEntry struct {
	Alias         string `yaml:"alias" json:"alias"`
	CanonicalName string `yaml:"name" json:"name"`
}

// Tables is the raw, unvalidated content of a registry.
type Tables struct {
	DefaultCost         float64
	DefaultValidityDays int
	Tests               []TestDefinition
	Aliases             []AliasEntry
}

// Registry is the validated, read-only form of Tables.
type Registry struct {
	tests    []TestDefinition
	aliases  []AliasEntry
	alias    map[string]string
	cost     map[string]float64
	validity map[string]int
	folded   map[string]string

	defaultCost         float64
	defaultValidityDays int
}

// Fold returns the lookup key used for aliases and case-insensitive
// matching.
func Fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New validates t and builds a Registry from it. All problems found are
// reported together.
func New(t Tables) (*Registry, error) {
	r := &Registry{
		alias:               make(map[string]string, len(t.Aliases)),
		cost:                make(map[string]float64, len(t.Tests)),
		validity:            make(map[string]int, len(t.Tests)),
		folded:              make(map[string]string, len(t.Tests)),
		defaultCost:         t.DefaultCost,
		defaultValidityDays: t.DefaultValidityDays,
	}

	var errs []error

	if !(t.DefaultCost > 0) || t.DefaultCost > MaxCostUnits {
		errs = append(errs, fmt.Errorf("%w: %v", errInvalidDefaultCost, t.DefaultCost))
	}

	if t.DefaultValidityDays <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", errInvalidDefaultWindow, t.DefaultValidityDays))
	}

	for _, def := range t.Tests {
		name := strings.TrimSpace(def.CanonicalName)
		if name == "" {
			errs = append(errs, errEmptyCanonicalName)
			continue
		}

		if _, ok := r.cost[name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", errDuplicateDefinition, name))
			continue
		}

		switch {
		case !(def.CostUnits > 0):
			errs = append(errs, fmt.Errorf("%q: %w (got %v)", name, errNonPositiveCost, def.CostUnits))
		case def.CostUnits > MaxCostUnits:
			errs = append(errs, fmt.Errorf("%q: %w (got %v, max %v)", name, errCostTooLarge, def.CostUnits, MaxCostUnits))
		}

		if def.ValidityDays < 0 {
			errs = append(errs, fmt.Errorf("%q: %w (got %d)", name, errNegativeValidity, def.ValidityDays))
		}

		category := def.Category
		if category == "" {
			category = CategoryOther
		}

		if _, err := ParseCategory(string(category)); err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", name, err))
		}

		def.CanonicalName = name
		def.Category = category

		r.tests = append(r.tests, def)
		r.cost[name] = def.CostUnits

		if def.ValidityDays > 0 {
			r.validity[name] = def.ValidityDays
		}

		// First declaration wins when two names differ only by case.
		if _, ok := r.folded[Fold(name)]; !ok {
			r.folded[Fold(name)] = name
		}
	}

	for _, entry := range t.Aliases {
		key := Fold(entry.Alias)
		target := strings.TrimSpace(entry.CanonicalName)

		if key == "" {
			errs = append(errs, fmt.Errorf("%w (target %q)", errEmptyAlias, target))
			continue
		}

		if _, ok := r.cost[target]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q -> %q", errUnknownAliasTarget, key, target))
			continue
		}

		if existing, ok := r.alias[key]; ok {
			if existing != target {
				errs = append(errs, fmt.Errorf("%w: %q -> %q, %q", errConflictingAlias, key, existing, target))
			}

			continue
		}

		r.alias[key] = target
		r.aliases = append(r.aliases, AliasEntry{Alias: key, CanonicalName: target})
	}

	// Normalizing an alias target must give the target back, otherwise
	// names drift between two spellings on repeated normalization.
	for _, entry := range r.aliases {
		target := entry.CanonicalName

		next, ok := r.alias[Fold(target)]
		if !ok {
			next, ok = r.folded[Fold(target)]
		}

		if ok && next != target {
			errs = append(errs, fmt.Errorf("%w: %q -> %q -> %q", errAliasTargetNotStable, entry.Alias, target, next))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid test registry: %w", errors.Join(errs...))
	}

	return r, nil
}

// Alias returns the canonical name registered for a folded alias.
func (r *Registry) Alias(folded string) (string, bool) {
	name, ok := r.alias[folded]
	return name, ok
}

// MatchCanonical returns the cost-table key whose folded form equals
// folded, keeping the key's original casing.
func (r *Registry) MatchCanonical(folded string) (string, bool) {
	name, ok := r.folded[folded]
	return name, ok
}

// Cost returns the cost of a canonical test.
func (r *Registry) Cost(canonical string) (float64, bool) {
	cost, ok := r.cost[canonical]
	return cost, ok
}

// ValidityDays returns the explicit validity window of a canonical test.
func (r *Registry) ValidityDays(canonical string) (int, bool) {
	days, ok := r.validity[canonical]
	return days, ok
}

// Definition returns the full definition of a canonical test.
func (r *Registry) Definition(canonical string) (TestDefinition, bool) {
	for _, def := range r.tests {
		if def.CanonicalName == canonical {
			return def, true
		}
	}

	return TestDefinition{}, false
}

// DefaultCost is the cost used for tests missing from the cost table.
func (r *Registry) DefaultCost() float64 {
	return r.defaultCost
}

// DefaultValidityDays is the window used for tests without one.
func (r *Registry) DefaultValidityDays() int {
	return r.defaultValidityDays
}

// Definitions returns a copy of the test definitions in declaration order.
func (r *Registry) Definitions() []TestDefinition {
	out := make([]TestDefinition, len(r.tests))
	copy(out, r.tests)

	return out
}

// Aliases returns a copy of the alias entries in declaration order.
func (r *Registry) Aliases() []AliasEntry {
	out := make([]AliasEntry, len(r.aliases))
	copy(out, r.aliases)

	return out
}

// Tables returns the registry content in a form that New accepts.
func (r *Registry) Tables() Tables {
	return Tables{
		DefaultCost:         r.defaultCost,
		DefaultValidityDays: r.defaultValidityDays,
		Tests:               r.Definitions(),
		Aliases:             r.Aliases(),
	}
}
