package header

import (
	"fmt"

	"github.com/ghettovoice/gohttp/internal/errorutil"
)

const (
	// ErrWrongLineCount is returned by single value headers when the raw value
	// has zero or more than one physical line.
	ErrWrongLineCount errorutil.Error = "wrong header line count"
	// ErrEmpty is returned by list headers when the raw value has no lines at all.
	ErrEmpty errorutil.Error = "empty header value"
	// ErrEmptyItem is returned by one-or-more list headers that parsed zero items.
	ErrEmptyItem errorutil.Error = "empty header item list"
	// ErrItemParse wraps the error of a leaf item parser.
	// The underlying error stays reachable with [errors.Is] and [errors.As].
	ErrItemParse errorutil.Error = "invalid header item"
	// ErrInvalidName is returned for header names that are not valid tokens.
	ErrInvalidName errorutil.Error = "invalid header name"
	// ErrUnexpectedHeader is returned when JSON data holds another header.
	ErrUnexpectedHeader errorutil.Error = "unexpected header"

	errNotHeaderJSON errorutil.Error = "not a header JSON"
)

func newWrongLineCountErr(n int) error {
	return errorutil.NewWrapperError(ErrWrongLineCount, "got %d lines, want 1", n) //errtrace:skip
}

func newItemParseErr(text []byte, err error) error {
	return errorutil.NewWrapperError(ErrItemParse, fmt.Errorf("%q: %w", text, err)) //errtrace:skip
}

func newUnexpectedHeaderErr(args ...any) error {
	return errorutil.NewWrapperError(ErrUnexpectedHeader, args...) //errtrace:skip
}

func newInvalidNameErr(name string) error {
	return errorutil.NewWrapperError(ErrInvalidName, "%q", name) //errtrace:skip
}
