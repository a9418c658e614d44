package header

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
)

// ErrInvalidEntityTag is returned for malformed entity tags.
const ErrInvalidEntityTag errorutil.Error = "invalid entity tag"

// EntityTag is an entity-tag (RFC 7232 Section 2.3). Tag holds the opaque tag without quotes.
type EntityTag struct {
	Weak bool
	Tag  string
}

// StrongETag creates a strong entity tag.
func StrongETag(tag string) EntityTag { return EntityTag{Tag: tag} }

// WeakETag creates a weak entity tag.
func WeakETag(tag string) EntityTag { return EntityTag{Weak: true, Tag: tag} }

func (et EntityTag) String() string {
	if et.Weak {
		return `W/"` + et.Tag + `"`
	}
	return `"` + et.Tag + `"`
}

func (et *EntityTag) UnmarshalText(text []byte) error {
	if err := grammar.MatchEntityTag(text); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidEntityTag, err))
	}
	weak := bytes.HasPrefix(text, []byte("W/"))
	if weak {
		text = text[2:]
	}
	*et = EntityTag{Weak: weak, Tag: string(text[1 : len(text)-1])}
	return nil
}

// StrongEq reports whether both tags are strong and their opaque tags match
// (RFC 7232 Section 2.3.2).
func (et EntityTag) StrongEq(other EntityTag) bool {
	return !et.Weak && !other.Weak && et.Tag == other.Tag
}

// WeakEq reports whether the opaque tags match regardless of weakness.
func (et EntityTag) WeakEq(other EntityTag) bool { return et.Tag == other.Tag }

func (et EntityTag) Equal(val any) bool {
	switch v := val.(type) {
	case EntityTag:
		return et == v
	case *EntityTag:
		return v != nil && et == *v
	default:
		return false
	}
}
