// Package grammar holds the RFC 7230 / RFC 7231 / RFC 7232 rules used by the header items.
package grammar

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gohttp/internal/constraints"
	"github.com/ghettovoice/gohttp/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func char(c byte) abnf.Operator {
	return abnf.Range(string(c), []byte{c}, []byte{c})
}

func alt(key string, chars string, op abnf.Operator, ops ...abnf.Operator) abnf.Operator {
	for i := range len(chars) {
		ops = append(ops, char(chars[i]))
	}
	return abnf.Alt(key, op, ops...)
}

var (
	digit = abnf.Range("DIGIT", []byte("0"), []byte("9"))

	// tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
	//         "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
	tchar = alt("tchar", "!#$%&'*+-.^_`|~",
		digit,
		abnf.Range("ALPHA", []byte("A"), []byte("Z")),
		abnf.Range("ALPHA", []byte("a"), []byte("z")),
	)

	// token = 1*tchar
	token = abnf.Repeat1Inf("token", tchar)

	// etagc = %x21 / %x23-7E / obs-text
	etagc = abnf.Alt("etagc",
		char(0x21),
		abnf.Range("%x23-7E", []byte{0x23}, []byte{0x7E}),
		abnf.Range("obs-text", []byte{0x80}, []byte{0xFF}),
	)

	// entity-tag = [ weak ] opaque-tag
	// weak       = %x57.2F ; "W/", case-sensitive
	// opaque-tag = DQUOTE *etagc DQUOTE
	entityTag = abnf.Concat("entity-tag",
		abnf.Optional("[weak]", abnf.Concat("weak", char('W'), char('/'))),
		abnf.Concat("opaque-tag", char('"'), abnf.Repeat0Inf("*etagc", etagc), char('"')),
	)

	// qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
	qvalue = abnf.Alt("qvalue",
		abnf.Concat("q0", char('0'), abnf.Optional("[frac]", abnf.Concat("frac", char('.'), abnf.Repeat("0*3DIGIT", 0, 3, digit)))),
		abnf.Concat("q1", char('1'), abnf.Optional("[frac]", abnf.Concat("frac", char('.'), abnf.Repeat("0*3\"0\"", 0, 3, char('0'))))),
	)

	// OWS = *( SP / HTAB )
	ows     = abnf.Repeat0Inf("OWS", alt("SP/HTAB", "\t", char(' ')))
	obsText = abnf.Range("obs-text", []byte{0x80}, []byte{0xFF})

	// quoted-string = DQUOTE *( qdtext / quoted-pair ) DQUOTE
	// qdtext        = HTAB / SP / %x21 / %x23-5B / %x5D-7E / obs-text
	// quoted-pair   = "\" ( HTAB / SP / VCHAR / obs-text )
	quotedString = abnf.Concat("quoted-string",
		char('"'),
		abnf.Repeat0Inf("*qdtext", abnf.Alt("qdtext-or-pair",
			alt("qdtext", "\t !",
				abnf.Range("%x23-5B", []byte{0x23}, []byte{0x5B}),
				abnf.Range("%x5D-7E", []byte{0x5D}, []byte{0x7E}),
				obsText,
			),
			abnf.Concat("quoted-pair", char('\\'), alt("quoted-pair-char", "\t ",
				abnf.Range("VCHAR", []byte{0x21}, []byte{0x7E}),
				obsText,
			)),
		)),
		char('"'),
	)

	// media-range = type "/" subtype *( OWS ";" OWS parameter )
	// parameter   = token "=" ( token / quoted-string )
	mediaRange = abnf.Concat("media-range",
		token, char('/'), token,
		abnf.Repeat0Inf("*parameter", abnf.Concat("OWS;OWS parameter",
			ows, char(';'), ows,
			token, char('='), abnf.Alt("param-value", token, quotedString),
		)),
	)
)

func match[T constraints.Byteseq](op abnf.Operator, s T) error {
	if len(s) == 0 {
		return errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return errtrace.Wrap(newMalformedInputErr(err))
	}
	if nl, il := ns.Best().Len(), len(s); nl < il {
		return errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return nil
}

// MatchToken checks that s is exactly one RFC 7230 token.
func MatchToken[T constraints.Byteseq](s T) error { return errtrace.Wrap(match(token, s)) }

// IsToken reports whether s is exactly one RFC 7230 token.
func IsToken[T constraints.Byteseq](s T) bool { return match(token, s) == nil }

// MatchEntityTag checks that s is exactly one RFC 7232 entity-tag.
func MatchEntityTag[T constraints.Byteseq](s T) error { return errtrace.Wrap(match(entityTag, s)) }

// MatchMediaRange checks that s is exactly one RFC 7231 media-range, parameters included.
func MatchMediaRange[T constraints.Byteseq](s T) error { return errtrace.Wrap(match(mediaRange, s)) }

// MatchQValue checks that s is exactly one RFC 7231 qvalue.
func MatchQValue[T constraints.Byteseq](s T) error { return errtrace.Wrap(match(qvalue, s)) }
