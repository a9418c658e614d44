package header

import (
	"bytes"
	"io"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/ioutil"
	"github.com/ghettovoice/gohttp/internal/util"
)

// ParseCommaDelimited parses a list of items spread over any number of lines,
// each line holding comma separated items.
// Items keep the order of lines, then the order inside each line.
// Elements that are empty after trimming are skipped (RFC 7230 Section 7).
// A raw value without lines is rejected with [ErrEmpty].
// The first item that fails to parse aborts the whole parse with [ErrItemParse].
func ParseCommaDelimited[T any, PT Item[T]](raw Raw) ([]T, error) {
	if len(raw) == 0 {
		return nil, errtrace.Wrap(ErrEmpty)
	}

	items := make([]T, 0, len(raw))
	for _, line := range raw {
		for elem := range bytes.SplitSeq(line, []byte{','}) {
			elem = util.TrimOWS(elem)
			if len(elem) == 0 {
				continue
			}

			var item T
			if err := PT(&item).UnmarshalText(elem); err != nil {
				return nil, errtrace.Wrap(newItemParseErr(elem, err))
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func parseNonEmpty[T any, PT Item[T]](raw Raw) ([]T, error) {
	items, err := ParseCommaDelimited[T, PT](raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(items) == 0 {
		return nil, errtrace.Wrap(ErrEmptyItem)
	}
	return items, nil
}

// ParseExactlyOne parses a single item from a raw value that must consist of exactly one line.
// The line is trimmed and parsed as a whole.
func ParseExactlyOne[T any, PT Item[T]](raw Raw) (T, error) {
	var item T
	line, ok := raw.One()
	if !ok {
		return item, errtrace.Wrap(newWrongLineCountErr(len(raw)))
	}

	line = util.TrimOWS(line)
	if err := PT(&item).UnmarshalText(line); err != nil {
		var zero T
		return zero, errtrace.Wrap(newItemParseErr(line, err))
	}
	return item, nil
}

const errInvalidUTF8 errorutil.Error = "invalid UTF-8"

func parseText(raw Raw) (Cow, error) {
	line, ok := raw.One()
	if !ok {
		return Cow{}, errtrace.Wrap(newWrongLineCountErr(len(raw)))
	}

	line = util.TrimOWS(line)
	if !utf8.Valid(line) {
		return Cow{}, errtrace.Wrap(newItemParseErr(line, errInvalidUTF8))
	}
	return Owned(line), nil
}

func renderCommaDelimited[T any, PT Item[T]](w io.Writer, items []T) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range items {
		if i > 0 {
			cw.WriteString(", ") //nolint:errcheck
		}
		cw.WriteString(PT(&items[i]).String()) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func renderScalar[T any, PT Item[T]](w io.Writer, item T) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, PT(&item).String()))
}
