/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package registry

import "errors"

var (
	errEmptyCanonicalName   = errors.New("test definition has an empty canonical name")
	errDuplicateDefinition  = errors.New("test defined more than once")
	errNonPositiveCost      = errors.New("cost must be strictly positive")
	errCostTooLarge         = errors.New("cost exceeds the maximum")
	errNegativeValidity     = errors.New("validity days must not be negative")
	errEmptyAlias           = errors.New("alias is empty")
	errUnknownAliasTarget   = errors.New("alias target is not a known test")
	errConflictingAlias     = errors.New("alias maps to more than one test")
	errAliasTargetNotStable = errors.New("alias target does not normalize to itself")
	errInvalidDefaultCost   = errors.New("default cost must be positive and within the maximum")
	errInvalidDefaultWindow = errors.New("default validity days must be strictly positive")
	errUnknownCategory      = errors.New("unknown test category")
)
