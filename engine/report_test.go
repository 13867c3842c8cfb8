// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"
	"testing"
)

func TestEvaluateReport(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	history := []HistoricalTestRecord{
		record("HbA1c", "2024-10-13"),
		record("Lipid Profile", "2024-05-11"),
		record("CBC", "2024-09-20"),
		record("Thyroid Panel", "2024-08-15"),
		record("T3", "not a date"),
	}

	tests := []ExtractedTest{
		{TestName: "glycated hemoglobin", TestValue: stringPtr("6.0")},
		{TestName: "lipid panel"},
		{TestName: "CBC"},
		{TestName: "tft"},
		{TestName: "T3"},
		{TestName: "hba1c"},
	}

	eval := e.EvaluateReport(mustDay(t, "2024-11-01"), tests, history)

	if eval.ReportDate.String() != "2024-11-01" {
		t.Fatalf("unexpected report date %s", eval.ReportDate)
	}

	if len(eval.Assessments) != len(tests) {
		t.Fatalf("expected %d assessments, got %d", len(tests), len(eval.Assessments))
	}

	wantDuplicate := []bool{true, true, false, true, false, true}
	for i, a := range eval.Assessments {
		if a.IsDuplicate != wantDuplicate[i] {
			t.Fatalf("test %d (%s): duplicate = %v, want %v", i, a.CanonicalName, a.IsDuplicate, wantDuplicate[i])
		}
	}

	if len(eval.Alerts) != 4 {
		t.Fatalf("expected 4 alerts, got %d", len(eval.Alerts))
	}

	// 700 + 1000 + 800 + 700
	if eval.TotalPotentialSavings != 3200 {
		t.Fatalf("expected total savings 3200, got %v", eval.TotalPotentialSavings)
	}

	first := eval.Alerts[0]
	if first.TestName != "glycated hemoglobin" || first.CanonicalName != "HbA1c" || first.DaysSinceOriginal != 19 || first.Decision != DecisionPending {
		t.Fatalf("unexpected alert %+v", first)
	}

	if first.OriginalTestDate.String() != "2024-10-13" || first.RaisedOn.String() != "2024-11-01" {
		t.Fatalf("unexpected alert dates %+v", first)
	}
}

func TestEvaluateEmptyReport(t *testing.T) {
	t.Parallel()

	eval := newTestEngine(t).EvaluateReport(mustDay(t, "2024-11-01"), nil, nil)
	if eval.TotalPotentialSavings != 0 || eval.Alerts == nil || len(eval.Alerts) != 0 || len(eval.Assessments) != 0 {
		t.Fatalf("unexpected evaluation %+v", eval)
	}
}

func TestParseDecision(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Decision{"skip": DecisionSkip, " Proceed ": DecisionProceed, "PENDING": DecisionPending} {
		got, err := ParseDecision(input)
		if err != nil || got != want {
			t.Fatalf("ParseDecision(%q) = %q, %v; want %q", input, got, err, want)
		}
	}

	if _, err := ParseDecision("maybe"); !errors.Is(err, ErrUnknownDecision) {
		t.Fatalf("expected ErrUnknownDecision, got %v", err)
	}
}

func TestSummarizeSavings(t *testing.T) {
	t.Parallel()

	raised, _ := ParseDate("2024-11-01")
	alerts := []DuplicateAlert{
		{TestName: "HbA1c", SavingsAmount: 700, Decision: DecisionSkip, RaisedOn: raised},
		{TestName: "CBC", SavingsAmount: 500, Decision: DecisionProceed, RaisedOn: raised},
		{TestName: "Lipid Profile", SavingsAmount: 1000, Decision: DecisionSkip, RaisedOn: raised.AddDays(3)},
		{TestName: "TSH", SavingsAmount: 350, Decision: DecisionPending, RaisedOn: raised},
	}

	summary := SummarizeSavings(alerts)
	if summary.TotalSavings != 1700 || summary.TestsSkipped != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	if len(summary.Breakdown) != 2 || summary.Breakdown[1].TestName != "Lipid Profile" || summary.Breakdown[1].DateSkipped.String() != "2024-11-04" {
		t.Fatalf("unexpected breakdown %+v", summary.Breakdown)
	}

	empty := SummarizeSavings(nil)
	if empty.Breakdown == nil || empty.TotalSavings != 0 {
		t.Fatalf("expected empty, non-nil breakdown, got %+v", empty)
	}
}
