/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/humaidq/swasthya/registry"
)

// UnknownTest is the identity given to empty test names.
const UnknownTest = "Unknown Test"

// Resolution records which rule produced a canonical identity.
type Resolution string

// Resolution values, in the order the rules are tried.
const (
	ResolvedUnknown   Resolution = "unknown"
	ResolvedAlias     Resolution = "alias"
	ResolvedCanonical Resolution = "canonical"
	ResolvedAdHoc     Resolution = "adhoc"
)

// Identity is the canonical identity of a raw test name.
type Identity struct {
	Input      string     `json:"input"`
	Name       string     `json:"name"`
	Resolution Resolution `json:"resolution"`
}

// Known reports whether the registry recognised the name.
func (i Identity) Known() bool {
	return i.Resolution == ResolvedAlias || i.Resolution == ResolvedCanonical
}

// Resolve maps raw to its canonical identity.
func (e *Engine) Resolve(raw string) Identity {
	id := Identity{Input: raw}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		id.Name = UnknownTest
		id.Resolution = ResolvedUnknown

		return id
	}

	folded := registry.Fold(trimmed)

	if name, ok := e.reg.Alias(folded); ok {
		id.Name = name
		id.Resolution = ResolvedAlias

		return id
	}

	if name, ok := e.reg.MatchCanonical(folded); ok {
		id.Name = name
		id.Resolution = ResolvedCanonical

		return id
	}

	// Casers carry state, so each call gets its own.
	id.Name = cases.Title(language.Und).String(trimmed)
	id.Resolution = ResolvedAdHoc

	return id
}

// Normalize returns the canonical identity of raw. It never returns an
// empty string and Normalize(Normalize(x)) == Normalize(x).
func (e *Engine) Normalize(raw string) string {
	return e.Resolve(raw).Name
}
