package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	cases := map[Level]string{DEBUG: "DEBUG", INFO: "INFO", WARN: "WARN", ERROR: "ERROR", FATAL: "FATAL", Level(99): "UNKNOWN"}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Fatalf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": DEBUG, "info": INFO, "warn": WARN, "error": ERROR, "fatal": FATAL, "bogus": INFO}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestErrFieldHandlesNilError(t *testing.T) {
	f := Err(nil)
	if f.Key != "error" || f.Value != nil {
		t.Fatalf("expected nil error field, got %+v", f)
	}
}

func TestLoggerSkipsEntriesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WARN, WithWriter(&buf))
	l.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below configured level, got %q", buf.String())
	}
	l.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warn entry to be written, got %q", buf.String())
	}
}

func TestLoggerSetLevelChangesThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(ERROR, WithWriter(&buf))
	l.Warn("still filtered")
	l.SetLevel(WARN)
	l.Warn("now visible")
	out := buf.String()
	if strings.Contains(out, "still filtered") {
		t.Fatalf("expected entry before SetLevel to stay filtered, got %q", out)
	}
	if !strings.Contains(out, "now visible") {
		t.Fatalf("expected entry after SetLevel to appear, got %q", out)
	}
}

func TestWithFormatSelectsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(INFO, WithWriter(&buf), WithFormat("json"))
	l.Info("hello", String("component", "test"))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected a json line, got %q: %v", buf.String(), err)
	}
	if decoded["message"] != "hello" || decoded["component"] != "test" {
		t.Fatalf("expected message and component fields, got %+v", decoded)
	}
}

func TestComponentLoggerPrefixesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(INFO, WithWriter(&buf), WithFormat("json"))
	cl := l.With("flatten")
	cl.Info("did a thing")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected a json line, got %q: %v", buf.String(), err)
	}
	if decoded["component"] != "flatten" {
		t.Fatalf("expected component field flatten, got %+v", decoded)
	}
}

func TestGlobalReturnsUsableLoggerWithoutInit(t *testing.T) {
	// Init is process-global and sync.Once-guarded, so this test only
	// checks that Global() never returns nil, without asserting on
	// whether some earlier test already called Init.
	if Global() == nil {
		t.Fatalf("expected Global() to always return a logger")
	}
}
