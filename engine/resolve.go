/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"time"

	"github.com/humaidq/swasthya/registry"
)

// CostOf returns the cost of the test named by name, or the registry
// default when the test has no cost entry.
func (e *Engine) CostOf(name string) float64 {
	if cost, ok := e.reg.Cost(e.Normalize(name)); ok {
		return cost
	}

	return e.reg.DefaultCost()
}

// ValidityDaysOf returns how many days a result of the named test stays
// valid, or the registry default.
func (e *Engine) ValidityDaysOf(name string) int {
	if days, ok := e.reg.ValidityDays(e.Normalize(name)); ok {
		return days
	}

	return e.reg.DefaultValidityDays()
}

// ValidUntil returns the last day on which a result of the named test
// taken on date still counts as valid.
func (e *Engine) ValidUntil(name string, date time.Time) Date {
	return NewDate(date).AddDays(e.ValidityDaysOf(name))
}

// TestInfo describes how the engine sees a single test name.
type TestInfo struct {
	Identity

	Category        registry.Category `json:"category"`
	CostUnits       float64           `json:"cost"`
	ValidityDays    int               `json:"validity_days"`
	DefaultCost     bool              `json:"default_cost"`
	DefaultValidity bool              `json:"default_validity"`
}

// Describe resolves name and reports its cost and validity, flagging
// values that came from the registry defaults.
func (e *Engine) Describe(name string) TestInfo {
	info := TestInfo{
		Identity: e.Resolve(name),
		Category: registry.CategoryOther,
	}

	if def, ok := e.reg.Definition(info.Name); ok {
		info.Category = def.Category
	}

	if cost, ok := e.reg.Cost(info.Name); ok {
		info.CostUnits = cost
	} else {
		info.CostUnits = e.reg.DefaultCost()
		info.DefaultCost = true
	}

	if days, ok := e.reg.ValidityDays(info.Name); ok {
		info.ValidityDays = days
	} else {
		info.ValidityDays = e.reg.DefaultValidityDays()
		info.DefaultValidity = true
	}

	return info
}
