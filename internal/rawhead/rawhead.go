// Package rawhead reads a block of "name: value" header lines into per-field raw values.
package rawhead

//go:generate go tool errtrace -w .

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/textproto"
	"sync"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/gohttp/header"
	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/util"
)

const (
	// ErrObsFold is returned for obsolete line folding: a line starting with SP or HTAB.
	ErrObsFold errorutil.Error = "obsolete line folding"
	// ErrMissingColon is returned for lines without the name-value separator.
	ErrMissingColon errorutil.Error = "missing colon"
	// ErrInvalidName is returned for field names that are not tokens.
	ErrInvalidName errorutil.Error = "invalid field name"
)

// ParseError describes the line that stopped [Read].
type ParseError struct {
	Err  error
	Line int
	Buf  []byte
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", err.Line, err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

// Block is an ordered set of header fields.
// Lines with the same case-insensitive name are merged into one [header.Raw]
// in order of appearance.
type Block struct {
	names []string
	raws  map[header.Name]header.Raw
}

// Names returns field names in order of first appearance, as written in the input.
func (b *Block) Names() []string {
	if b == nil {
		return nil
	}
	return b.names
}

// Raw returns the raw value of the field, the name is case-insensitive.
func (b *Block) Raw(name string) (header.Raw, bool) {
	if b == nil {
		return nil, false
	}
	raw, ok := b.raws[header.CanonicName(name)]
	return raw, ok
}

// Len returns the number of distinct fields.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Each yields every field with its raw value in order of first appearance.
func (b *Block) Each() iter.Seq2[string, header.Raw] {
	return func(yield func(string, header.Raw) bool) {
		if b == nil {
			return
		}
		for _, name := range b.names {
			if !yield(name, b.raws[header.CanonicName(name)]) {
				return
			}
		}
	}
}

func (b *Block) push(name, value []byte) {
	key := header.CanonicName(string(name))
	raw, ok := b.raws[key]
	if !ok {
		b.names = append(b.names, string(name))
	}
	raw.Push(value)
	b.raws[key] = raw
}

var txtRdrPool = sync.Pool{
	New: func() any { return new(textproto.Reader) },
}

func getTxtRdr(r *bufio.Reader) *textproto.Reader {
	tr := txtRdrPool.Get().(*textproto.Reader) //nolint:forcetypeassert
	tr.R = r
	return tr
}

func freeTxtRdr(tr *textproto.Reader) {
	tr.R = nil
	txtRdrPool.Put(tr)
}

// Read reads header lines from r up to the first empty line or EOF.
// Lines may end with CRLF or LF.
// Values are trimmed of surrounding whitespace, empty values are kept.
func Read(r io.Reader) (*Block, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	tr := getTxtRdr(br)
	defer freeTxtRdr(tr)

	b := &Block{raws: make(map[header.Name]header.Raw)}
	for n := 1; ; n++ {
		line, err := tr.ReadLineBytes()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) == 0 {
				return b, nil
			}
			return b, errtrace.Wrap(&ParseError{Err: err, Line: n, Buf: line})
		}
		if len(line) == 0 {
			return b, nil
		}
		if line[0] == ' ' || line[0] == '\t' {
			return b, errtrace.Wrap(&ParseError{Err: ErrObsFold, Line: n, Buf: line})
		}

		name, value, ok := bytes.Cut(line, []byte{':'})
		if !ok {
			return b, errtrace.Wrap(&ParseError{Err: ErrMissingColon, Line: n, Buf: line})
		}
		if !httpguts.ValidHeaderFieldName(string(name)) {
			return b, errtrace.Wrap(&ParseError{
				Err:  errorutil.NewWrapperError(ErrInvalidName, "%q", name),
				Line: n,
				Buf:  line,
			})
		}
		b.push(name, util.TrimOWS(value))
	}
}
