/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/flamego/flamego"
)

// maxBodyBytes bounds request bodies; histories are small but may be long.
const maxBodyBytes = 2 << 20

func writeJSON(c flamego.Context, status int, v any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Error("Error encoding response", "error", err, "path", c.Request().URL.Path)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSON(c, status, map[string]any{"error": message, "status_code": status})
}

// decodeJSON reads exactly one JSON value from the request body into v.
func decodeJSON(c flamego.Context, v any) error {
	limitedBody := http.MaxBytesReader(c.ResponseWriter(), c.Request().Body().ReadCloser(), maxBodyBytes)

	defer func() {
		_ = limitedBody.Close()
	}()

	decoder := json.NewDecoder(limitedBody)

	if err := decoder.Decode(v); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return errPayloadTooLarge
		}

		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errTrailingPayload
	}

	return nil
}

// writeDecodeError maps a decodeJSON failure to a response.
func writeDecodeError(c flamego.Context, err error) {
	if errors.Is(err, errPayloadTooLarge) {
		writeJSONError(c, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	writeJSONError(c, http.StatusBadRequest, err.Error())
}
