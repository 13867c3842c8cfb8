/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"fmt"
	"time"
)

// NoPreviousTestMessage is the message of an assessment with no matching
// history.
const NoPreviousTestMessage = "No previous test found"

// HistoricalTestRecord is one prior result supplied by the record store.
type HistoricalTestRecord struct {
	TestName    string    `json:"test_name"`
	TestDate    DateValue `json:"test_date"`
	TestValue   *string   `json:"test_value,omitempty"`
	SourceLabel *string   `json:"source_label,omitempty"`
}

// Date returns the calendar day of the record, if it can be read.
func (r HistoricalTestRecord) Date() (Date, bool) {
	return r.TestDate.Parse()
}

// DuplicateAssessment is the outcome of checking one test request.
type DuplicateAssessment struct {
	IsDuplicate      bool    `json:"is_duplicate"`
	CanonicalName    string  `json:"canonical_name"`
	OriginalDate     *Date   `json:"original_date,omitempty"`
	OriginalValue    *string `json:"original_value,omitempty"`
	DaysSince        *int    `json:"days_since,omitempty"`
	ValidityDays     int     `json:"validity_days"`
	DaysRemaining    *int    `json:"days_remaining,omitempty"`
	PotentialSavings float64 `json:"potential_savings"`
	Message          string  `json:"message"`
}

type priorResult struct {
	date  Date
	value *string
}

// latestMatch returns the most recent record in history whose name
// normalizes to canonical. Records with unreadable dates are skipped.
// Among records sharing the latest date the last one in input order wins.
func (e *Engine) latestMatch(canonical string, request Date, history []HistoricalTestRecord) *priorResult {
	var latest *priorResult

	for _, rec := range history {
		if e.Normalize(rec.TestName) != canonical {
			continue
		}

		date, ok := rec.Date()
		if !ok {
			continue
		}

		if e.opts.IgnoreFutureHistory && date.After(request.Time) {
			continue
		}

		if latest == nil || !date.Before(latest.date.Time) {
			latest = &priorResult{date: date, value: rec.TestValue}
		}
	}

	return latest
}

// DetectDuplicate checks whether testName, requested on requestDate,
// repeats a result in history that is still inside its validity window.
// It never fails: unreadable history is ignored.
func (e *Engine) DetectDuplicate(testName string, requestDate time.Time, history []HistoricalTestRecord) DuplicateAssessment {
	canonical := e.Normalize(testName)
	validityDays := e.ValidityDaysOf(canonical)
	request := NewDate(requestDate)

	out := DuplicateAssessment{
		CanonicalName: canonical,
		ValidityDays:  validityDays,
	}

	latest := e.latestMatch(canonical, request, history)
	if latest == nil {
		out.Message = NoPreviousTestMessage
		return out
	}

	daysSince := request.DaysSince(latest.date)
	originalDate := latest.date

	out.OriginalDate = &originalDate
	out.DaysSince = &daysSince

	if daysSince > validityDays {
		out.Message = fmt.Sprintf("Previous %s was %d days ago (validity: %d days). New test recommended.",
			canonical, daysSince, validityDays)

		return out
	}

	savings := e.CostOf(canonical)
	remaining := validityDays - daysSince

	out.IsDuplicate = true
	out.OriginalValue = latest.value
	out.DaysRemaining = &remaining
	out.PotentialSavings = savings
	out.Message = fmt.Sprintf("⚠️ Duplicate Alert: %s was done %d days ago. This test is typically valid for %d days. You could save %s by using the previous result.",
		canonical, daysSince, validityDays, e.FormatAmount(savings))

	return out
}
