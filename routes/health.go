/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/flamego/flamego"

	"github.com/humaidq/swasthya/engine"
)

const databasePingTimeout = 2 * time.Second

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Tests     int    `json:"tests"`
	Aliases   int    `json:"aliases"`
	Database  string `json:"database,omitempty"`
}

// Healthz reports liveness, the size of the loaded registry and, when the
// registry came from PostgreSQL, whether the database still answers.
func Healthz(c flamego.Context, eng *engine.Engine, info BuildInfo, now Clock, store database, reqID RequestID) {
	reg := eng.Registry()

	resp := HealthResponse{
		Status:    "healthy",
		Version:   info.Version,
		Timestamp: now().UTC().Format(time.RFC3339),
		Tests:     len(reg.Definitions()),
		Aliases:   len(reg.Aliases()),
	}
	status := http.StatusOK

	if store.Pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), databasePingTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Error("Database ping failed", "request_id", string(reqID), "error", err)

			resp.Status = "unhealthy"
			resp.Database = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Database = "ok"
		}
	}

	writeJSON(c, status, resp)
}
