/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseURLNotSet is returned when no connection string is given.
	ErrDatabaseURLNotSet = errors.New("database URL is not set")

	// ErrDatabaseNameNotSpecified is returned when the connection string
	// names no database.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in connection string")

	// ErrDatabaseConnectionNotInitialized is returned when a Store is used
	// before Open succeeded.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")

	// ErrRegistryEditRejected is returned when an edit would leave the
	// stored registry invalid.
	ErrRegistryEditRejected = errors.New("registry edit rejected")

	errUnknownCategory = errors.New("stored test has an unknown category")
)
