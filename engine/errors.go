/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import "errors"

var (
	// ErrInvalidDate is returned when a request date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrUnknownDecision is returned for decisions other than pending,
	// skip or proceed.
	ErrUnknownDecision = errors.New("decision must be one of: pending, skip, proceed")
)
