package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONFormatTrimsSource(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "json").Debug("hello", "attempt", "abc")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if rec["msg"] != "hello" || rec["attempt"] != "abc" {
		t.Fatalf("unexpected record: %v", rec)
	}
	src, _ := rec["source"].(string)
	if !strings.HasPrefix(src, "logging_test.go:") {
		t.Fatalf("source = %q, want logging_test.go:<line>", src)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")
	l.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", buf.String())
	}
	l.Warn("loud")
	if !strings.Contains(buf.String(), "msg=loud") {
		t.Fatalf("warn not logged: %q", buf.String())
	}
}

func TestOpenFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "walletbar.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	New(f, "info", "text").Info("written")
	f.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(raw), "written") {
		t.Fatalf("log file = %q", raw)
	}
}
