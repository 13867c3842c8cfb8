/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/swasthya/engine"
)

// CheckRequest is the body of POST /api/check.
type CheckRequest struct {
	TestName    string                        `json:"test_name"`
	RequestDate *engine.Date                  `json:"request_date"`
	History     []engine.HistoricalTestRecord `json:"history"`
}

// EvaluateRequest is the body of POST /api/reports/evaluate.
type EvaluateRequest struct {
	ReportDate *engine.Date                  `json:"report_date"`
	Tests      []engine.ExtractedTest        `json:"tests"`
	History    []engine.HistoricalTestRecord `json:"history"`
}

// TimelineRequest is the body of POST /api/timeline.
type TimelineRequest struct {
	AsOf    *engine.Date                  `json:"as_of"`
	History []engine.HistoricalTestRecord `json:"history"`
}

// SavingsRequest is the body of POST /api/savings.
type SavingsRequest struct {
	Alerts []engine.DuplicateAlert `json:"alerts"`
}

func dateOrNow(d *engine.Date, now Clock) engine.Date {
	if d == nil || d.IsZero() {
		return engine.NewDate(now())
	}

	return *d
}

// CheckTest decides whether a single requested test repeats a valid result.
func CheckTest(c flamego.Context, eng *engine.Engine, now Clock, reqID RequestID) {
	var req CheckRequest
	if err := decodeJSON(c, &req); err != nil {
		writeDecodeError(c, err)
		return
	}

	auditNames(reqID, eng, req.TestName)
	auditHistory(reqID, req.History)

	requestDate := dateOrNow(req.RequestDate, now)
	assessment := eng.DetectDuplicate(req.TestName, requestDate.Time, req.History)

	if assessment.IsDuplicate {
		logger.Info("Duplicate test detected",
			"request_id", string(reqID),
			"test_name", assessment.CanonicalName,
			"days_since", *assessment.DaysSince,
			"savings", assessment.PotentialSavings,
		)
	}

	writeJSON(c, http.StatusOK, assessment)
}

// EvaluateReport checks every test extracted from one report.
func EvaluateReport(c flamego.Context, eng *engine.Engine, now Clock, reqID RequestID) {
	var req EvaluateRequest
	if err := decodeJSON(c, &req); err != nil {
		writeDecodeError(c, err)
		return
	}

	for _, test := range req.Tests {
		auditNames(reqID, eng, test.TestName)
	}
	auditHistory(reqID, req.History)

	reportDate := dateOrNow(req.ReportDate, now)
	eval := eng.EvaluateReport(reportDate.Time, req.Tests, req.History)

	logger.Info("Report evaluated",
		"request_id", string(reqID),
		"report_date", eval.ReportDate.String(),
		"tests", len(req.Tests),
		"alerts", len(eval.Alerts),
		"potential_savings", eval.TotalPotentialSavings,
	)

	writeJSON(c, http.StatusOK, eval)
}

// Timeline lists the patient's history newest first.
func Timeline(c flamego.Context, eng *engine.Engine, now Clock, reqID RequestID) {
	var req TimelineRequest
	if err := decodeJSON(c, &req); err != nil {
		writeDecodeError(c, err)
		return
	}

	auditHistory(reqID, req.History)

	asOf := dateOrNow(req.AsOf, now)

	writeJSON(c, http.StatusOK, map[string]any{
		"as_of":   asOf,
		"entries": eng.Timeline(req.History, asOf.Time),
	})
}

// Savings totals the alerts the patient chose to skip.
func Savings(c flamego.Context) {
	var req SavingsRequest
	if err := decodeJSON(c, &req); err != nil {
		writeDecodeError(c, err)
		return
	}

	for i := range req.Alerts {
		decision := req.Alerts[i].Decision
		if decision == "" {
			req.Alerts[i].Decision = engine.DecisionPending
			continue
		}

		parsed, err := engine.ParseDecision(string(decision))
		if err != nil {
			writeJSONError(c, http.StatusBadRequest, fmt.Sprintf("%v: alert %d: %v", errInvalidDecision, i, err))
			return
		}
		req.Alerts[i].Decision = parsed
	}

	writeJSON(c, http.StatusOK, engine.SummarizeSavings(req.Alerts))
}
