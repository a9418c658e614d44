// Package log builds the slog loggers used by the header formatter and the hdrcheck tool.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/gohttp/internal/constraints"
)

// wrap renders error attrs as structured groups and raw byte values as text.
var wrap = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(b []byte) slog.Value {
		return slog.StringValue(string(b))
	}),
)

// New returns a logger writing records at or above level to w.
// Pretty multi-line devslog output is used when dev is set, single-line console output otherwise.
func New(w io.Writer, level slog.Leveler, dev bool) *slog.Logger {
	var h slog.Handler
	if dev {
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	} else {
		h = console.NewHandler(w, &console.HandlerOptions{
			AddSource:  level.Level() <= slog.LevelDebug,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		})
	}
	return slog.New(wrap(h))
}

// Def logs to stderr at info level.
var Def = New(os.Stderr, slog.LevelInfo, false)

// Noop discards everything.
var Noop = slog.New(discard{})

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

// ParseLevel converts a level name (debug, info, warn, error) to [slog.Level].
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return lvl, nil
}

type text[T constraints.Byteseq] struct{ v T }

func (t text[T]) LogValue() slog.Value { return slog.StringValue(string(t.v)) }

// StringValue defers conversion of v to a string until the record is handled.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return text[T]{v} }
