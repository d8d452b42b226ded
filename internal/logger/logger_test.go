package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{FormatJSON, `"entries":2`},
		{FormatText, "entries=2"},
		{FormatPretty, "entries=2"},
		{"", "entries=2"},
		{"JSON", `"entries":2`},
	}
	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log, err := New(&buf, tc.format, slog.LevelInfo)
			if err != nil {
				t.Fatalf("New(%q): %v", tc.format, err)
			}
			log.Info("decoded demo", "entries", 2)
			if !strings.Contains(buf.String(), tc.want) {
				t.Fatalf("output %q missing %q", buf.String(), tc.want)
			}
		})
	}
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()
	if _, err := New(&bytes.Buffer{}, "xml", slog.LevelInfo); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := New(&buf, FormatJSON, slog.LevelWarn)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("should not appear")
	log.Debug("also should not appear")
	if buf.Len() > 0 {
		t.Fatalf("expected no output below warn, got: %s", buf.String())
	}
	log.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warn message, got: %s", buf.String())
	}
}

func TestWithAndGroup(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, _ := New(&buf, FormatJSON, slog.LevelInfo)
	log.With("component", "api").WithGroup("req").Info("handled", "status", 200)

	out := buf.String()
	if !strings.Contains(out, `"component":"api"`) || !strings.Contains(out, `"req":{"status":200}`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := Discard()
	if log == nil {
		t.Fatal("Discard() returned nil")
	}
	log.With("k", "v").Error("dropped")
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, _ := New(&buf, FormatText, slog.LevelInfo)

	FromContext(WithContext(context.Background(), log)).Info("roundtrip")
	if !strings.Contains(buf.String(), "roundtrip") {
		t.Fatalf("expected message via context logger, got: %s", buf.String())
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext without logger returned nil")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q): err=%v wantErr=%v", tc.input, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q): got %v want %v", tc.input, got, tc.want)
		}
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	t.Parallel()
	h := NewPrettyHandler(&bytes.Buffer{}, &PrettyOptions{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at warn level")
	}
}

func TestPrettyNoColorByDefault(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	slog.New(NewPrettyHandler(&buf, nil)).Info("plain", "k", "v")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("unexpected escape codes: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "INFO  plain k=v") {
		t.Fatalf("unexpected layout: %q", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	slog.New(NewPrettyHandler(&buf, &PrettyOptions{Color: true})).Error("boom")
	if !strings.Contains(buf.String(), colorRed) {
		t.Fatalf("expected red level, got %q", buf.String())
	}
}

func TestPrettyGroups(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	l := slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "hldemo")}).WithGroup("a").WithGroup("b"))
	l.Info("nested", "key", "val")

	out := buf.String()
	if !strings.Contains(out, "service=hldemo") || !strings.Contains(out, "a.b.key=val") {
		t.Fatalf("unexpected output: %s", out)
	}
	if h.WithGroup("") != h {
		t.Fatal("WithGroup empty string should return same handler")
	}
}

func TestPrettyValues(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	slog.New(NewPrettyHandler(&buf, nil)).Info("values",
		"msg", "hello world",
		"took", 1500*time.Millisecond,
		"err", errors.New("bad magic"),
		"simple", "ok",
	)

	out := buf.String()
	for _, want := range []string{`msg="hello world"`, "took=1.5s", `err="bad magic"`, "simple=ok"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestNeedsQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"simple", false},
		{"has space", true},
		{"has\ttab", true},
		{"k=v", true},
		{`has"quote`, true},
		{"", false},
	}
	for _, tc := range tests {
		if got := needsQuoting(tc.input); got != tc.want {
			t.Errorf("needsQuoting(%q): got %v want %v", tc.input, got, tc.want)
		}
	}
}
