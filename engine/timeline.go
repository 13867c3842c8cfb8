/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"sort"
	"time"
)

// TimelineEntry is one readable history record placed on the patient's
// timeline.
type TimelineEntry struct {
	TestName     string  `json:"test_name"`
	OriginalName string  `json:"original_name"`
	TestValue    *string `json:"test_value,omitempty"`
	SourceLabel  *string `json:"source_label,omitempty"`
	TestDate     Date    `json:"test_date"`
	ValidUntil   Date    `json:"valid_until"`
	IsCurrent    bool    `json:"is_current"`
	IsDuplicate  bool    `json:"is_duplicate"`
}

// Timeline orders history newest first. Each entry carries the last day
// its result stays valid, whether that day is on or after asOf, and
// whether the test repeated an earlier result that was still valid.
// Records with unreadable dates are left out.
func (e *Engine) Timeline(history []HistoricalTestRecord, asOf time.Time) []TimelineEntry {
	type dated struct {
		rec  HistoricalTestRecord
		date Date
	}

	readable := make([]dated, 0, len(history))
	for _, rec := range history {
		if date, ok := rec.Date(); ok {
			readable = append(readable, dated{rec: rec, date: date})
		}
	}

	sort.SliceStable(readable, func(i, j int) bool {
		return readable[i].date.Before(readable[j].date.Time)
	})

	today := NewDate(asOf)
	entries := make([]TimelineEntry, len(readable))

	for i, d := range readable {
		name := e.Normalize(d.rec.TestName)
		validUntil := d.date.AddDays(e.ValidityDaysOf(name))

		earlier := make([]HistoricalTestRecord, 0, i)
		for _, prev := range readable[:i] {
			if prev.date.Before(d.date.Time) {
				earlier = append(earlier, prev.rec)
			}
		}

		entries[len(readable)-1-i] = TimelineEntry{
			TestName:     name,
			OriginalName: d.rec.TestName,
			TestValue:    d.rec.TestValue,
			SourceLabel:  d.rec.SourceLabel,
			TestDate:     d.date,
			ValidUntil:   validUntil,
			IsCurrent:    !today.After(validUntil.Time),
			IsDuplicate:  e.DetectDuplicate(name, d.date.Time, earlier).IsDuplicate,
		}
	}

	return entries
}
