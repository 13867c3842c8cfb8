/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/engine"
)

var CmdCheck = &cli.Command{
	Name:      "check",
	Usage:     "Check whether a test repeats a still-valid result in a history file",
	ArgsUsage: " ",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "test",
			Usage: "name of the requested test",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "request date as YYYY-MM-DD (defaults to today)",
		},
		&cli.StringFlag{
			Name:  "history",
			Usage: "JSON file holding an array of history records, or - for stdin",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string holding the test registry (optional)",
		},
	}, engineFlags...),
	Action: check,
}

func check(ctx context.Context, cmd *cli.Command) error {
	if err := configureLogging(cmd, ""); err != nil {
		return err
	}

	testName := cmd.String("test")
	if strings.TrimSpace(testName) == "" {
		return errTestNameRequired
	}

	historyPath := cmd.String("history")
	if historyPath == "" {
		return errHistoryFileRequired
	}

	requestDate := engine.NewDate(time.Now())

	if raw := cmd.String("date"); raw != "" {
		parsed, err := engine.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}

		requestDate = parsed
	}

	history, err := readHistory(historyPath, cmd.Root().Reader)
	if err != nil {
		return err
	}

	reg, store, err := loadRegistry(ctx, cmd.String("database-url"), cmd.String("registry-file"))
	if err != nil {
		return err
	}

	if store != nil {
		defer store.Close()
	}

	eng := engine.New(reg, engineOptions(cmd))

	if id := eng.Resolve(testName); !id.Known() {
		appLogger.Warn("Test name not in registry, using defaults", "input", testName, "name", id.Name)
	}

	for i, rec := range history {
		if _, ok := rec.Date(); !ok {
			appLogger.Warn("Skipping history record with unreadable date", "index", i, "test_name", rec.TestName, "test_date", rec.TestDate.String())
		}
	}

	assessment := eng.DetectDuplicate(testName, requestDate.Time, history)

	return writeIndentedJSON(cmd.Root().Writer, assessment)
}

func readHistory(path string, stdin io.Reader) ([]engine.HistoricalTestRecord, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var history []engine.HistoricalTestRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history %s: %w", path, err)
	}

	return history, nil
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
