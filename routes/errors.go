/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errPayloadTooLarge = errors.New("request payload too large")
	errInvalidPayload  = errors.New("invalid request payload")
	errTrailingPayload = errors.New("unexpected data after request payload")
	errMissingTestName = errors.New("name query parameter is required")
	errInvalidDecision = errors.New("alert has an invalid decision")
)
