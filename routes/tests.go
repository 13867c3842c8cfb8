/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"

	"github.com/humaidq/swasthya/engine"
	"github.com/humaidq/swasthya/registry"
)

// RegistryListing is the body of GET /api/tests.
type RegistryListing struct {
	DefaultCost         float64                   `json:"default_cost"`
	DefaultValidityDays int                       `json:"default_validity_days"`
	Tests               []registry.TestDefinition `json:"tests"`
	Aliases             map[string]string         `json:"aliases"`
}

// ListTests returns the registry the engine is using. An optional
// category query parameter narrows the test list.
func ListTests(c flamego.Context, eng *engine.Engine) {
	reg := eng.Registry()

	tests := reg.Definitions()

	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		category, err := registry.ParseCategory(raw)
		if err != nil {
			writeJSONError(c, http.StatusBadRequest, err.Error())
			return
		}

		filtered := tests[:0]
		for _, def := range tests {
			if def.Category == category {
				filtered = append(filtered, def)
			}
		}
		tests = filtered
	}

	aliases := make(map[string]string, len(reg.Aliases()))
	for _, a := range reg.Aliases() {
		aliases[a.Alias] = a.CanonicalName
	}

	writeJSON(c, http.StatusOK, RegistryListing{
		DefaultCost:         reg.DefaultCost(),
		DefaultValidityDays: reg.DefaultValidityDays(),
		Tests:               tests,
		Aliases:             aliases,
	})
}

// NormalizeTest resolves the name query parameter.
func NormalizeTest(c flamego.Context, eng *engine.Engine, reqID RequestID) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		writeJSONError(c, http.StatusBadRequest, errMissingTestName.Error())
		return
	}

	info := eng.Describe(name)
	auditIdentity(reqID, info.Identity)

	writeJSON(c, http.StatusOK, info)
}
