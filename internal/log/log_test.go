package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{"debug", "info", "warn", "error"} {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false, want true", l)
		}
	}
	if ValidLevel("trace") {
		t.Error("ValidLevel(\"trace\") = true, want false")
	}
}

func TestNewJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "info").With().Str("component", "wordlist").Logger()
	l.Info().Str("language", "en").Msg("built")
	l.Debug().Msg("dropped")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "wordlist" {
		t.Errorf("component = %v, want wordlist", entry["component"])
	}
	if entry["language"] != "en" {
		t.Errorf("language = %v, want en", entry["language"])
	}
	if entry["message"] != "built" {
		t.Errorf("message = %v, want built", entry["message"])
	}
}

func TestBenchmark(t *testing.T) {
	var buf bytes.Buffer
	done := Benchmark(NewJSONLogger(&buf, "debug"), "derive seed")
	if buf.Len() != 0 {
		t.Fatal("Benchmark() should log only when the returned func runs")
	}
	done()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["operation"] != "derive seed" || entry["message"] != "benchmark" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["duration"].(float64); !ok {
		t.Errorf("duration = %v, want a number", entry["duration"])
	}

	buf.Reset()
	Benchmark(NewJSONLogger(&buf, "info"), "quiet")()
	if buf.Len() != 0 {
		t.Errorf("debug benchmark logged at info level: %q", buf.String())
	}
}
