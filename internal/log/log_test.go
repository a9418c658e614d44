package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/gohttp/internal/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, dev := range []bool{false, true} {
		var buf bytes.Buffer
		logger := log.New(&buf, slog.LevelInfo, dev)
		logger.Debug("hidden")
		logger.Warn("replaced line breaks", "header", "x-test", "error", errors.New("boom"))

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("dev=%v: debug record must be filtered out, got %q", dev, out)
		}
		for _, want := range []string{"replaced line breaks", "x-test", "boom"} {
			if !strings.Contains(out, want) {
				t.Errorf("dev=%v: output %q does not contain %q", dev, out, want)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("log.ParseLevel(%q) error = %v, want error %v", c.in, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("log.ParseLevel(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("log.Noop.Enabled() = true, want false")
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	if got := log.StringValue([]byte("en, fr")).LogValue().String(); got != "en, fr" {
		t.Errorf("log.StringValue(...).LogValue() = %q, want %q", got, "en, fr")
	}
}
