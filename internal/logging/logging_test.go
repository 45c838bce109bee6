package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"warn":     zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"bogus":    zerolog.InfoLevel,
		"disabled": zerolog.Disabled,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Out: &buf, Level: "info"})
	log.Info().Str("origin", "/tmp/a").Msg("organizing files")
	log.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at info level, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if entry["origin"] != "/tmp/a" || entry["message"] != "organizing files" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatal("expected timestamp field")
	}
}

func TestNew_ForcedConsole(t *testing.T) {
	var buf bytes.Buffer
	console := true
	log := New(Options{Out: &buf, Console: &console})
	log.Info().Msg("hello")

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
}
