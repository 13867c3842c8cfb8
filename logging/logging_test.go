// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerInitializers(t *testing.T) {
	t.Parallel()

	Init()
	if l := Logger(SourceApp); l == nil {
		t.Fatal("Logger returned nil")
	}
	if l := StdLogger(SourceWeb); l == nil {
		t.Fatal("StdLogger returned nil")
	}
}

func TestSetLevelRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetLevelReachesDerivedLoggers(t *testing.T) {
	l := Logger(SourceDB)

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}

	t.Cleanup(func() {
		_ = SetLevel("debug")
	})

	if got := l.GetLevel(); got != log.WarnLevel {
		t.Fatalf("expected derived logger at warn, got %s", got)
	}
}

func TestSetOutputReachesDerivedLoggers(t *testing.T) {
	l := Logger(SourceWeb)

	var buf bytes.Buffer
	SetOutput(&buf)

	t.Cleanup(func() {
		SetOutput(os.Stdout)
	})

	l.Info("Registry loaded", "tests", 3)

	out := buf.String()
	if !strings.Contains(out, "Registry loaded") || !strings.Contains(out, "source=web") {
		t.Fatalf("expected derived logger output in buffer, got %q", out)
	}
}
