/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"github.com/humaidq/swasthya/engine"
)

// auditIdentity logs names that fell through to the registry defaults.
func auditIdentity(reqID RequestID, id engine.Identity) {
	if id.Known() {
		return
	}

	logger.Warn("Test name not in registry",
		"request_id", string(reqID),
		"input", id.Input,
		"name", id.Name,
		"resolution", string(id.Resolution),
	)
}

func auditNames(reqID RequestID, eng *engine.Engine, names ...string) {
	for _, name := range names {
		auditIdentity(reqID, eng.Resolve(name))
	}
}

// auditHistory logs history records whose date cannot be read. Such
// records are skipped by the engine.
func auditHistory(reqID RequestID, history []engine.HistoricalTestRecord) {
	for i, rec := range history {
		if _, ok := rec.Date(); ok {
			continue
		}

		logger.Warn("Skipping history record with unreadable date",
			"request_id", string(reqID),
			"index", i,
			"test_name", rec.TestName,
			"test_date", rec.TestDate.String(),
		)
	}
}
