/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package engine decides whether a requested diagnostic test repeats a
// recent result that is still valid, and what skipping it would save.
//
// An Engine holds no mutable state. Every method is safe to call from
// multiple goroutines at once.
package engine

import (
	"github.com/humaidq/swasthya/registry"
)

// DefaultCurrencySymbol prefixes amounts in assessment messages.
const DefaultCurrencySymbol = "₹"

// Options tune an Engine.
type Options struct {
	// CurrencySymbol prefixes savings in messages. Empty means
	// DefaultCurrencySymbol.
	CurrencySymbol string

	// IgnoreFutureHistory drops history records dated after the request
	// date instead of treating them as a duplicate with negative age.
	IgnoreFutureHistory bool
}

// Engine normalizes test names and checks requests against history using
// a fixed registry.
type Engine struct {
	reg  *registry.Registry
	opts Options
}

// New returns an Engine over reg. A nil reg uses the built-in registry.
func New(reg *registry.Registry, opts Options) *Engine {
	if reg == nil {
		reg = registry.Default()
	}

	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = DefaultCurrencySymbol
	}

	return &Engine{reg: reg, opts: opts}
}

// Registry returns the registry the engine reads from.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}
