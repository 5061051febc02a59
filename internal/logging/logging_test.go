package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesPlainLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "INFO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info().Int("player", 3).Msg("Point scored")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, "Point scored") || !strings.Contains(out, "player=3") {
		t.Errorf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no color escapes: %q", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestOpen_Disabled(t *testing.T) {
	logger, closer, err := Open("", "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info().Msg("goes nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")

	logger, closer, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug().Msg("Match started")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"Logging set up", "Match started"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in log file, got %q", want, data)
		}
	}
}

func TestOpen_BadPath(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing", "pong.log"), "info"); err == nil {
		t.Error("expected error for unwritable path")
	}
}
