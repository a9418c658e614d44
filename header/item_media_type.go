package header

import (
	"maps"
	"mime"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/util"
)

// ErrInvalidMediaType is returned for malformed media types.
const ErrInvalidMediaType errorutil.Error = "invalid media type"

// MediaType is a media type with parameters, for example "text/html; charset=utf-8".
// Type and parameter names are lowercase after parsing.
type MediaType struct {
	Type   string
	Params map[string]string
}

func (mt MediaType) String() string {
	if s := mime.FormatMediaType(mt.Type, mt.Params); s != "" {
		return s
	}
	return mt.Type
}

// UnmarshalText parses a media-range. The grammar decides validity,
// [mime.ParseMediaType] then splits parameters and unquotes their values.
func (mt *MediaType) UnmarshalText(text []byte) error {
	if err := grammar.MatchMediaRange(text); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidMediaType, err))
	}
	typ, params, err := mime.ParseMediaType(string(text))
	if err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidMediaType, err))
	}
	if len(params) == 0 {
		params = nil
	}
	*mt = MediaType{Type: typ, Params: params}
	return nil
}

func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(mt.Type, other.Type) && maps.Equal(mt.Params, other.Params)
}

func (mt MediaType) Clone() MediaType {
	mt.Params = maps.Clone(mt.Params)
	return mt
}
