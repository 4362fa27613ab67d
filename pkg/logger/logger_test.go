package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_SilentBeforeInit(t *testing.T) {
	Close()

	Info("dropped %d", 1)
	if GetWriter() != io.Discard {
		t.Error("GetWriter() should be io.Discard before Init")
	}
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e2e.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer Close()

	Info("tapping %s", "#submit")
	Warn("missing variable for %s", "home.inbox")
	Error("driver failed")
	Debug("debug line")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"level=info", "tapping #submit",
		"level=warning", "missing variable for home.inbox",
		"level=error", "driver failed",
		"level=debug", "debug line",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogger_InitFailsForBadPath(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing", "e2e.log")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLogger_SetVerbose(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	defer Close()

	SetVerbose(false)
	Debug("hidden")
	Info("shown")

	SetVerbose(true)
	Debug("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug output should be suppressed, got:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "visible") {
		t.Errorf("expected shown and visible, got:\n%s", out)
	}
	if GetWriter() != &buf {
		t.Error("GetWriter() should return the configured writer")
	}
}
