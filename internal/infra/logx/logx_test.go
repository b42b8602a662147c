package logx

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetMinLevel(LevelWarn)
	})
	return &buf
}

func TestMinLevelFilters(t *testing.T) {
	buf := capture(t)
	SetMinLevel(LevelWarn)

	Debugf("dropped %d", 1)
	Infof("dropped too")
	Warnf("kept")
	Errorf("also kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("emitted %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "kept") || !strings.Contains(lines[1], "also kept") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestEmitsJSONEntries(t *testing.T) {
	buf := capture(t)
	SetMinLevel(LevelDebug)

	Debugf("tick %d", 7)

	var e struct {
		TS    string `json:"ts"`
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if e.Level != "debug" || e.Msg != "tick 7" || e.TS == "" {
		t.Errorf("entry = %+v", e)
	}
}

func TestFieldsAttached(t *testing.T) {
	buf := capture(t)
	SetMinLevel(LevelDebug)

	Fields(LevelInfo, "frame", map[string]any{"view": 3, "top": 42})

	var e struct {
		Fields map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e.Fields["view"] != float64(3) || e.Fields["top"] != float64(42) {
		t.Errorf("fields = %v", e.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"error":   LevelError,
		"verbose": LevelWarn,
		"":        LevelWarn,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
