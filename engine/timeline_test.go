// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package engine

import "testing"

func TestTimeline(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	history := []HistoricalTestRecord{
		record("CBC", "2024-09-20"),
		record("hba1c", "2024-06-01"),
		record("Hemogram", "2024-10-05"),
		record("HbA1c", "2024-10-13"),
		record("ESR", "garbage"),
	}

	entries := e.Timeline(history, mustDay(t, "2024-10-25"))
	if len(entries) != 4 {
		t.Fatalf("expected 4 readable entries, got %d", len(entries))
	}

	wantOrder := []string{"2024-10-13", "2024-10-05", "2024-09-20", "2024-06-01"}
	for i, entry := range entries {
		if entry.TestDate.String() != wantOrder[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, wantOrder[i], entry.TestDate)
		}
	}

	latestCBC := entries[1]
	if latestCBC.TestName != "CBC" || latestCBC.OriginalName != "Hemogram" {
		t.Fatalf("unexpected names %+v", latestCBC)
	}

	if latestCBC.ValidUntil.String() != "2024-11-04" || !latestCBC.IsCurrent {
		t.Fatalf("expected CBC valid until 2024-11-04 and current, got %+v", latestCBC)
	}

	// The October CBC came 15 days after September's, inside its window.
	if !latestCBC.IsDuplicate {
		t.Fatalf("expected October CBC to be flagged as a repeat")
	}

	firstCBC := entries[2]
	if firstCBC.IsDuplicate || firstCBC.IsCurrent {
		t.Fatalf("expected September CBC to be neither repeat nor current, got %+v", firstCBC)
	}

	// June HbA1c expired on 2024-08-30, so October's is not a repeat.
	if entries[0].IsDuplicate || !entries[0].IsCurrent {
		t.Fatalf("unexpected HbA1c entry %+v", entries[0])
	}

	if entries[3].IsCurrent {
		t.Fatalf("expected June HbA1c to have expired, got %+v", entries[3])
	}
}

func TestTimelineEmpty(t *testing.T) {
	t.Parallel()

	if entries := newTestEngine(t).Timeline(nil, mustDay(t, "2024-10-20")); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
