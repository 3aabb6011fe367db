package observability_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"aadhira_hotel/internal/adapters/observability"
)

func TestNewLogger_ConsoleInDev(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "dev", "warn")
	l.Info().Msg("hidden")
	l.Warn().Str("session", "s1").Msg("remote failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") || !strings.Contains(out, "session=s1") {
		t.Fatalf("expected console format, got %q", out)
	}
}

func TestNewLogger_JSONOtherwise(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "prod", "")
	l.Info().Msg("ready")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "ready" || line["level"] != "info" {
		t.Fatalf("unexpected line %v", line)
	}
}
