/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"fmt"
	"strings"
	"time"
)

// Decision is the patient's answer to a duplicate alert.
type Decision string

// Decision values. Alerts start out pending.
const (
	DecisionPending Decision = "pending"
	DecisionSkip    Decision = "skip"
	DecisionProceed Decision = "proceed"
)

// ParseDecision returns the decision named by s.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(s))); d {
	case DecisionPending, DecisionSkip, DecisionProceed:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDecision, s)
	}
}

// ExtractedTest is a test read off an uploaded report.
type ExtractedTest struct {
	TestName  string  `json:"test_name"`
	TestValue *string `json:"test_value,omitempty"`
	TestUnit  *string `json:"test_unit,omitempty"`
}

// DuplicateAlert is raised for each test in a report that repeats a
// still-valid result. TestName is the name as read off the report;
// CanonicalName is what it normalized to.
type DuplicateAlert struct {
	TestName          string   `json:"new_test_name"`
	CanonicalName     string   `json:"canonical_name,omitempty"`
	OriginalTestDate  Date     `json:"original_test_date"`
	DaysSinceOriginal int      `json:"days_since_original"`
	AlertMessage      string   `json:"alert_message"`
	SavingsAmount     float64  `json:"savings_amount"`
	Decision          Decision `json:"decision"`
	RaisedOn          Date     `json:"raised_on"`
}

// ReportEvaluation is the result of checking every test of one report.
type ReportEvaluation struct {
	ReportDate            Date                  `json:"report_date"`
	Assessments           []DuplicateAssessment `json:"assessments"`
	Alerts                []DuplicateAlert      `json:"duplicate_alerts"`
	TotalPotentialSavings float64               `json:"total_potential_savings"`
}

// EvaluateReport checks each test of a report dated reportDate against the
// patient's prior history. Tests in the same report are not compared with
// each other.
func (e *Engine) EvaluateReport(reportDate time.Time, tests []ExtractedTest, history []HistoricalTestRecord) ReportEvaluation {
	eval := ReportEvaluation{
		ReportDate:  NewDate(reportDate),
		Assessments: make([]DuplicateAssessment, 0, len(tests)),
		Alerts:      []DuplicateAlert{},
	}

	for _, test := range tests {
		a := e.DetectDuplicate(test.TestName, reportDate, history)
		eval.Assessments = append(eval.Assessments, a)

		if !a.IsDuplicate {
			continue
		}

		eval.Alerts = append(eval.Alerts, DuplicateAlert{
			TestName:          test.TestName,
			CanonicalName:     a.CanonicalName,
			OriginalTestDate:  *a.OriginalDate,
			DaysSinceOriginal: *a.DaysSince,
			AlertMessage:      a.Message,
			SavingsAmount:     a.PotentialSavings,
			Decision:          DecisionPending,
			RaisedOn:          eval.ReportDate,
		})
		eval.TotalPotentialSavings += a.PotentialSavings
	}

	return eval
}

// SavingsBreakdown is one skipped test in a savings summary.
type SavingsBreakdown struct {
	TestName    string  `json:"test_name"`
	DateSkipped Date    `json:"date_skipped"`
	AmountSaved float64 `json:"amount_saved"`
}

// SavingsSummary totals the money saved by skipped duplicates.
type SavingsSummary struct {
	TotalSavings float64            `json:"total_savings"`
	TestsSkipped int                `json:"tests_skipped"`
	Breakdown    []SavingsBreakdown `json:"breakdown"`
}

// SummarizeSavings adds up the alerts the patient chose to skip.
func SummarizeSavings(alerts []DuplicateAlert) SavingsSummary {
	summary := SavingsSummary{Breakdown: []SavingsBreakdown{}}

	for _, alert := range alerts {
		if alert.Decision != DecisionSkip {
			continue
		}

		summary.TotalSavings += alert.SavingsAmount
		summary.TestsSkipped++
		summary.Breakdown = append(summary.Breakdown, SavingsBreakdown{
			TestName:    alert.TestName,
			DateSkipped: alert.RaisedOn,
			AmountSaved: alert.SavingsAmount,
		})
	}

	return summary
}
