/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID is the identifier attached to each request's log lines.
type RequestID string

// RequestLogger tags each request with an ID and logs its metadata and
// timing once it has been handled.
func RequestLogger(c flamego.Context) {
	start := time.Now()

	id := strings.TrimSpace(c.Request().Header.Get(requestIDHeader))
	if id == "" || len(id) > 64 {
		id = uuid.NewString()
	}

	c.ResponseWriter().Header().Set(requestIDHeader, id)
	c.Map(RequestID(id))

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c, RequestID(id))...)

	requestLogger.Info("request", fields...)
}

func baseRequestFields(c flamego.Context, id RequestID) []interface{} {
	return []interface{}{
		"request_id", string(id),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", clientIP(c),
		"user_agent", c.Request().UserAgent(),
	}
}

func clientIP(c flamego.Context) string {
	forwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		if idx := strings.Index(forwardedFor, ","); idx != -1 {
			forwardedFor = forwardedFor[:idx]
		}

		if ip := strings.TrimSpace(forwardedFor); ip != "" {
			return ip
		}
	}

	return c.RemoteAddr()
}
