package header

import (
	"fmt"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/syncutil"
)

// ParseFunc parses a raw value into a typed header.
type ParseFunc func(raw Raw) (Header, error)

var parsers syncutil.Map[Name, ParseFunc]

// Register registers the parse function for the header name.
// A registered function replaces the previous one.
func Register(name string, fn ParseFunc) {
	if fn == nil {
		panic(errorutil.NewInvalidArgumentError("nil parse function"))
	}
	parsers.Store(CanonicName(name), fn)
}

// Unregister removes the parse function registered for the header name.
func Unregister(name string) {
	parsers.Delete(CanonicName(name))
}

// Lookup returns the parse function registered for the header name.
func Lookup(name string) (ParseFunc, bool) {
	return parsers.Load(CanonicName(name))
}

// Registered returns the sorted names of all registered headers.
func Registered() []Name { return parsers.Keys() }

// RegisterType registers the header type H under its own name.
//
//	type XRequestID = header.Text[xRequestIDField]
//
//	func init() { header.RegisterType[XRequestID]() }
func RegisterType[H Header, PH Parser[H]]() {
	var hdr H
	Register(string(hdr.Name()), func(raw Raw) (Header, error) {
		h, err := Parse[H, PH](raw)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return h, nil
	})
}

// ParseNamed parses the raw value with the parser registered for the header name.
// Headers without a registered parser are returned as [*Extension].
func ParseNamed(name string, raw Raw) (Header, error) {
	if !httpguts.ValidHeaderFieldName(name) {
		return nil, errtrace.Wrap(newInvalidNameErr(name))
	}
	fn, ok := Lookup(name)
	if !ok {
		fn = func(raw Raw) (Header, error) {
			ext := NewExtension(name)
			if err := ext.ParseRaw(raw); err != nil {
				return nil, errtrace.Wrap(err)
			}
			return ext, nil
		}
	}
	hdr, err := fn(raw)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("parse header %q: %w", CanonicName(name), err))
	}
	return hdr, nil
}
