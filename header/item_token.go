package header

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/util"
)

// ErrInvalidToken is returned by token based items for values that are not RFC 7230 tokens.
const ErrInvalidToken errorutil.Error = "invalid token"

func parseToken(text []byte) (string, error) {
	if err := grammar.MatchToken(text); err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidToken, err))
	}
	return string(text), nil
}

// Token is a generic RFC 7230 token, compared case-sensitively.
type Token string

func (t Token) String() string { return string(t) }

func (t *Token) UnmarshalText(text []byte) error {
	s, err := parseToken(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*t = Token(s)
	return nil
}

// Method is an HTTP request method. Methods are case-sensitive.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

func (m Method) String() string { return string(m) }

func (m *Method) UnmarshalText(text []byte) error {
	s, err := parseToken(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*m = Method(s)
	return nil
}

// IsSafe reports whether the method is safe as defined by RFC 7231 Section 4.2.1.
func (m Method) IsSafe() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions, MethodTrace:
		return true
	default:
		return false
	}
}

// FieldName is a header field name used as a list item, for example in Vary.
type FieldName string

func (n FieldName) String() string { return string(n) }

func (n *FieldName) UnmarshalText(text []byte) error {
	s, err := parseToken(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*n = FieldName(s)
	return nil
}

// Equal compares field names case-insensitively.
func (n FieldName) Equal(val any) bool {
	switch v := val.(type) {
	case FieldName:
		return util.EqFold(n, v)
	case *FieldName:
		return v != nil && util.EqFold(n, *v)
	default:
		return false
	}
}

// Encoding is a content or transfer coding.
type Encoding string

const (
	EncodingGzip     Encoding = "gzip"
	EncodingDeflate  Encoding = "deflate"
	EncodingCompress Encoding = "compress"
	EncodingBrotli   Encoding = "br"
	EncodingZstd     Encoding = "zstd"
	EncodingIdentity Encoding = "identity"
	EncodingChunked  Encoding = "chunked"
	EncodingTrailers Encoding = "trailers"
)

func (e Encoding) String() string { return string(e) }

// UnmarshalText parses the coding, names are lowercased.
func (e *Encoding) UnmarshalText(text []byte) error {
	s, err := parseToken(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*e = Encoding(util.LCase(s))
	return nil
}

// Equal compares codings case-insensitively.
func (e Encoding) Equal(val any) bool {
	switch v := val.(type) {
	case Encoding:
		return util.EqFold(e, v)
	case *Encoding:
		return v != nil && util.EqFold(e, *v)
	default:
		return false
	}
}

// Charset is a character set name, as used by Accept-Charset.
type Charset string

func (c Charset) String() string { return string(c) }

func (c *Charset) UnmarshalText(text []byte) error {
	s, err := parseToken(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*c = Charset(s)
	return nil
}

// Equal compares charsets case-insensitively.
func (c Charset) Equal(val any) bool {
	switch v := val.(type) {
	case Charset:
		return util.EqFold(c, v)
	case *Charset:
		return v != nil && util.EqFold(c, *v)
	default:
		return false
	}
}

// Protocol is an Upgrade protocol: protocol-name ["/" protocol-version].
type Protocol struct {
	Name    string
	Version string
}

func (p Protocol) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "/" + p.Version
}

func (p *Protocol) UnmarshalText(text []byte) error {
	name, ver, hasVer := bytes.Cut(text, []byte{'/'})
	n, err := parseToken(name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	var v string
	if hasVer {
		if v, err = parseToken(ver); err != nil {
			return errtrace.Wrap(err)
		}
	}
	*p = Protocol{Name: n, Version: v}
	return nil
}
