/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"io"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp        = "app"
	SourceWeb        = "web"
	SourceWebRequest = "web_request"
	SourceDB         = "db"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	// Loggers copy their level when derived, so SetLevel has to visit
	// every logger handed out.
	derivedMu sync.Mutex
	derived   []*log.Logger
)

// Init configures the base logger and stdlib log output.
func Init() {
	InitWithWriter(os.Stdout)
}

// InitWithWriter configures the base logger to write to w. Only the first
// call has any effect.
func InitWithWriter(w io.Writer) {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(w, log.Options{
			TimeFunction:    log.NowUTC,
			TimeFormat:      time.RFC3339Nano,
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		})

		appLogger := baseLogger.With("source", SourceApp)
		derived = append(derived, appLogger)

		stdLogger := appLogger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

// SetLevel adjusts the minimum level of every logger derived from the base.
func SetLevel(level string) error {
	Init()

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	derivedMu.Lock()
	defer derivedMu.Unlock()

	baseLogger.SetLevel(parsed)

	for _, l := range derived {
		l.SetLevel(parsed)
	}

	return nil
}

// SetOutput redirects the base logger and every logger derived from it
// to w.
func SetOutput(w io.Writer) {
	Init()

	derivedMu.Lock()
	defer derivedMu.Unlock()

	baseLogger.SetOutput(w)

	for _, l := range derived {
		l.SetOutput(w)
	}
}

func derive(source string) *log.Logger {
	Init()

	derivedMu.Lock()
	defer derivedMu.Unlock()

	l := baseLogger.With("source", source)
	derived = append(derived, l)

	return l
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	return derive(source)
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
func StdLogger(source string) *stdlog.Logger {
	return derive(source).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}
