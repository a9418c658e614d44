package header_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gohttp/header"
	"github.com/ghettovoice/gohttp/internal/ioutil/iomock"
)

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		want  string
		wantN int
	}{
		{"empty", "", "", 0},
		{"clean", "abc def", "abc def", 0},
		{"crlf", "a\r\nb", "a b", 1},
		{"lone cr", "a\rb", "a b", 1},
		{"lone lf", "a\nb", "a b", 1},
		{"lf cr", "a\n\rb", "a  b", 2},
		{"trailing crlf", "abc\r\n", "abc ", 1},
		{"mixed", "\r\na\rb\nc\r\n\r\n", " a b c  ", 5},
		{"nul kept", "a\x00b", "a\x00b", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, n := header.SanitizeValue([]byte(c.in))
			if string(got) != c.want {
				t.Errorf("header.SanitizeValue(%q) = %q, want %q", c.in, got, c.want)
			}
			if n != c.wantN {
				t.Errorf("header.SanitizeValue(%q) replaced %d, want %d", c.in, n, c.wantN)
			}
		})
	}
}

func TestFormatter_WriteHeader(t *testing.T) {
	t.Parallel()

	date := header.NewHTTPDate(time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC))

	cases := []struct {
		name string
		hdr  header.Header
		want string
	}{
		{"allow", header.Allow{header.MethodGet, header.MethodHead}, "allow: GET, HEAD\r\n"},
		{"allow empty", header.Allow{}, "allow: \r\n"},
		{"date", header.Date{Value: date}, "date: Sun, 06 Nov 1994 08:49:37 GMT\r\n"},
		{"content-length", header.ContentLength{Value: 42}, "content-length: 42\r\n"},
		{"host", header.Host{Value: header.HostPort{Host: "example.com", Port: 8080}}, "host: example.com:8080\r\n"},
		{"user-agent", header.NewText[header.UserAgent]("gohttp/1.0"), "user-agent: gohttp/1.0\r\n"},
		{"if-none-match", header.IfNoneMatch{Any: true}, "if-none-match: *\r\n"},
		{"vary", header.Vary{Items: []header.FieldName{"Origin"}}, "vary: Origin\r\n"},
		{
			"user-agent injection",
			header.NewText[header.UserAgent]("evil\r\nSet-Cookie: a=b"),
			"user-agent: evil Set-Cookie: a=b\r\n",
		},
		{
			"location lone lf",
			header.NewText[header.Location]([]byte("/a\nb")),
			"location: /a b\r\n",
		},
		{
			"extension",
			header.NewExtension("X-Trace", "a", "b\r\n\r\nbody"),
			"x-trace: a\r\nx-trace: b  body\r\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			f := header.NewFormatter(&buf, nil)
			if err := f.WriteHeader(c.hdr); err != nil {
				t.Fatalf("f.WriteHeader(hdr) error = %v, want nil", err)
			}
			if got := buf.String(); got != c.want {
				t.Errorf("buf.String() = %q, want %q", got, c.want)
			}
			if got, want := f.Count(), len(c.want); got != want {
				t.Errorf("f.Count() = %d, want %d", got, want)
			}
		})
	}
}

func TestFormatter_NoInjection(t *testing.T) {
	t.Parallel()

	values := []string{
		"a\r\nb",
		"a\rb",
		"a\nb",
		"\r\n\r\n",
		"x\r\nContent-Length: 0\r\n\r\nGET / HTTP/1.1",
	}
	for _, v := range values {
		var buf bytes.Buffer
		f := header.NewFormatter(&buf, nil)
		hdrs := []header.Header{
			header.NewText[header.Referer](v),
			header.NewText[header.Server]([]byte(v)),
			header.NewExtension("X-Value", v),
		}
		if err := f.WriteHeaders(hdrs...); err != nil {
			t.Fatalf("f.WriteHeaders(hdrs...) error = %v, want nil", err)
		}

		out := buf.String()
		if got, want := strings.Count(out, "\r\n"), len(hdrs); got != want {
			t.Errorf("CRLF count in %q = %d, want %d", out, got, want)
		}
		if got, want := strings.Count(out, "\r")+strings.Count(out, "\n"), 2*len(hdrs); got != want {
			t.Errorf("line break byte count in %q = %d, want %d", out, got, want)
		}
	}
}

func TestFormatter_FmtLine_InvalidName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := header.NewFormatter(&buf, nil)
	err := f.FmtLine("bad name", header.Allow{})
	if !errors.Is(err, header.ErrInvalidName) {
		t.Errorf("f.FmtLine(name, v) error = %v, want %v", err, header.ErrInvalidName)
	}
	if buf.Len() != 0 {
		t.Errorf("buf.String() = %q, want empty", buf.String())
	}
}

func TestFormatter_DangerFmtLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := header.NewFormatter(&buf, nil)
	if err := f.DangerFmtLine("x-raw", header.NewText[header.Server]("a\r\nb")); err != nil {
		t.Fatalf("f.DangerFmtLine(name, v) error = %v, want nil", err)
	}
	if got, want := buf.String(), "x-raw: a\r\nb\r\n"; got != want {
		t.Errorf("buf.String() = %q, want %q", got, want)
	}
}

func TestFormatter_LogsReplacement(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var buf bytes.Buffer
	f := header.NewFormatter(&buf, &header.FormatterOptions{Logger: logger})
	if err := f.WriteHeader(header.NewText[header.From]("a\r\nb\nc")); err != nil {
		t.Fatalf("f.WriteHeader(hdr) error = %v, want nil", err)
	}
	if err := f.WriteHeader(header.NewText[header.From]("clean")); err != nil {
		t.Fatalf("f.WriteHeader(hdr) error = %v, want nil", err)
	}

	out := logBuf.String()
	for _, want := range []string{"level=WARN", `msg="replaced line breaks in header value"`, "header=from", "replaced=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("log records = %d, want 1", got)
	}
}

func TestFormatter_WriteError(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("write failed")

	ctrl := gomock.NewController(t)
	w := iomock.NewMockWriter(ctrl)
	w.EXPECT().Write(gomock.Any()).Return(0, errWrite).Times(1)

	f := header.NewFormatter(w, nil)
	err := f.WriteHeaders(header.Allow{header.MethodGet}, header.ContentLength{Value: 1})
	if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("f.WriteHeaders(hdrs...) error = %v, want %v\ndiff (-got +want):\n%v", err, errWrite, diff)
	}

	err = f.WriteHeader(header.ContentLength{Value: 1})
	if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("f.WriteHeader(hdr) error = %v, want %v\ndiff (-got +want):\n%v", err, errWrite, diff)
	}
	if diff := cmp.Diff(f.Err(), errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("f.Err() = %v, want %v\ndiff (-got +want):\n%v", f.Err(), errWrite, diff)
	}
	if got := f.Count(); got != 0 {
		t.Errorf("f.Count() = %d, want 0", got)
	}
}
