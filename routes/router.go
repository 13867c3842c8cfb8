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

// Clock reports the current time. Requests without an explicit date are
// evaluated as of Clock().
type Clock func() time.Time

// BuildInfo is served by the health endpoint.
type BuildInfo struct {
	Version string
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// database wraps the optional registry store so handlers can ask for it
// even when the server runs without one.
type database struct {
	Pinger
}

// Options configure the router.
type Options struct {
	Version string
	Now     Clock
	// Database is the store the registry was loaded from, if any. The
	// health endpoint reports on it.
	Database Pinger
}

// NewRouter returns the JSON API over eng.
func NewRouter(eng *engine.Engine, opts Options) *flamego.Flame {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(RequestLogger)
	f.Use(NoStoreHeaders())

	f.Map(eng)
	f.Map(opts.Now)
	f.Map(BuildInfo{Version: opts.Version})
	f.Map(database{Pinger: opts.Database})

	f.Get("/healthz", Healthz)

	f.Group("/api", func() {
		f.Get("/tests", ListTests)
		f.Get("/tests/normalize", NormalizeTest)
		f.Post("/check", CheckTest)
		f.Post("/reports/evaluate", EvaluateReport)
		f.Post("/timeline", Timeline)
		f.Post("/savings", Savings)
	})

	f.NotFound(func(c flamego.Context) {
		writeJSONError(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	return f
}
