package header

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/gohttp/internal/ioutil"
	"github.com/ghettovoice/gohttp/internal/log"
	"github.com/ghettovoice/gohttp/internal/util"
)

const maxLoggedValueLen = 64

// ValueRenderer renders a header value without the name and the line terminator.
type ValueRenderer interface {
	RenderValueTo(w io.Writer) (int, error)
}

// FormatterOptions configures a [Formatter].
// A nil *FormatterOptions is valid and means defaults.
type FormatterOptions struct {
	// Logger receives a warning each time a line break is removed from a header value.
	// Defaults to a noop logger.
	Logger *slog.Logger
}

// Formatter writes header lines to the wire.
//
// Every header value is rendered into an internal buffer first.
// [Formatter.FmtLine] replaces each CRLF, lone CR and lone LF found in the buffer
// with a single space, so a value can never start a new header line or end the header block.
// [Formatter.DangerFmtLine] skips that scan and is reserved for headers
// whose parser already rejects control characters.
//
// Each line is written as "name: value\r\n".
// The first write error is sticky: following calls return it without writing.
type Formatter struct {
	cw  *ioutil.CountingWriter
	log *slog.Logger
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer, opts *FormatterOptions) *Formatter {
	f := &Formatter{
		cw:  ioutil.NewCountingWriter(w),
		log: log.Noop,
	}
	if opts != nil && opts.Logger != nil {
		f.log = opts.Logger
	}
	return f
}

// WriteHeader writes the header through the formatter path chosen by its type.
func (f *Formatter) WriteHeader(hdr Header) error {
	return errtrace.Wrap(hdr.FormatHeader(f))
}

// WriteHeaders writes headers in order and stops on the first error.
func (f *Formatter) WriteHeaders(hdrs ...Header) error {
	for _, hdr := range hdrs {
		if err := f.WriteHeader(hdr); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// FmtLine writes one header line, replacing line breaks inside the rendered value.
func (f *Formatter) FmtLine(name Name, v ValueRenderer) error {
	if !httpguts.ValidHeaderFieldName(string(name)) {
		return errtrace.Wrap(newInvalidNameErr(string(name)))
	}
	return errtrace.Wrap(f.fmtLine(name, v, true))
}

// DangerFmtLine writes one header line as is.
// Use it only for values that are known to contain no CR and LF bytes.
func (f *Formatter) DangerFmtLine(name Name, v ValueRenderer) error {
	return errtrace.Wrap(f.fmtLine(name, v, false))
}

func (f *Formatter) fmtLine(name Name, v ValueRenderer, sanitize bool) error {
	if err := f.cw.Err(); err != nil {
		return errtrace.Wrap(err)
	}

	if !sanitize {
		f.cw.WriteString(string(name)) //nolint:errcheck
		f.cw.WriteString(": ")         //nolint:errcheck
		f.cw.Call(v.RenderValueTo)
		f.cw.WriteString("\r\n") //nolint:errcheck
		return errtrace.Wrap(f.cw.Err())
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)
	if _, err := v.RenderValueTo(buf); err != nil {
		return errtrace.Wrap(err)
	}

	val, n := SanitizeValue(buf.Bytes())
	if n > 0 {
		f.log.LogAttrs(context.Background(), slog.LevelWarn, "replaced line breaks in header value",
			slog.String("header", string(name)),
			slog.Int("replaced", n),
			slog.String("value", util.Ellipsis(string(val), maxLoggedValueLen)),
		)
	}

	f.cw.WriteString(string(name)) //nolint:errcheck
	f.cw.WriteString(": ")         //nolint:errcheck
	f.cw.Write(val)                //nolint:errcheck
	f.cw.WriteString("\r\n")       //nolint:errcheck
	return errtrace.Wrap(f.cw.Err())
}

// Count returns the number of bytes written so far.
func (f *Formatter) Count() int { return f.cw.Count() }

// Err returns the first write error, if any.
func (f *Formatter) Err() error { return errtrace.Wrap(f.cw.Err()) }

// SanitizeValue replaces every CRLF, lone CR and lone LF in b with a single space.
// The replacement is done in place, the returned slice shares memory with b.
// The second result is the number of replaced sequences.
func SanitizeValue(b []byte) ([]byte, int) {
	if bytes.IndexAny(b, "\r\n") < 0 {
		return b, 0
	}

	out := b[:0]
	var n int
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			out = append(out, ' ')
			n++
		case '\n':
			out = append(out, ' ')
			n++
		default:
			out = append(out, b[i])
		}
	}
	return out, n
}
