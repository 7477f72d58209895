package logging

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "nwsl-scoreboard-refresher", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "nwsl-scoreboard-refresher" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldCycleID, "c1")}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldCycleID {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestFieldKeysAreUniqueSnakeCase(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldProvider, FieldRequestID, FieldCycleID, FieldPath,
		FieldMethod, FieldStatusCode, FieldDate, FieldCount, FieldDurationMS, FieldTeam,
		FieldEventID, FieldPriority, FieldTimezone, FieldError,
	}
	snake := regexp.MustCompile(`^[a-z]+(_[a-z]+)*$`)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if !snake.MatchString(k) {
			t.Fatalf("field %q is not snake_case", k)
		}
		if seen[k] {
			t.Fatalf("duplicate field key %q", k)
		}
		seen[k] = true
	}
}

func TestSelectionFieldsRenderInText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "debug", Output: &buf})
	Debug(logger, "selected game", FieldTeam, "POR", FieldEventID, "726412", FieldPriority, "live")

	out := buf.String()
	for _, want := range []string{"team=POR", "event_id=726412", "priority=live"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}
