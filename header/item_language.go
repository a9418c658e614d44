package header

import (
	"braces.dev/errtrace"
	"golang.org/x/text/language"

	"github.com/ghettovoice/gohttp/internal/errorutil"
)

// ErrInvalidLanguage is returned for malformed BCP 47 language tags.
const ErrInvalidLanguage errorutil.Error = "invalid language tag"

// LanguageTag is a BCP 47 language tag or the "*" language range.
type LanguageTag struct {
	tag language.Tag
	any bool
}

// AnyLanguage is the "*" language range.
var AnyLanguage = LanguageTag{any: true}

// NewLanguageTag wraps a [language.Tag].
func NewLanguageTag(tag language.Tag) LanguageTag { return LanguageTag{tag: tag} }

// Tag returns the underlying tag. It is [language.Und] for [AnyLanguage].
func (lt LanguageTag) Tag() language.Tag { return lt.tag }

// IsAny reports whether lt is the "*" range.
func (lt LanguageTag) IsAny() bool { return lt.any }

func (lt LanguageTag) String() string {
	if lt.any {
		return "*"
	}
	return lt.tag.String()
}

func (lt *LanguageTag) UnmarshalText(text []byte) error {
	if string(text) == "*" {
		*lt = AnyLanguage
		return nil
	}
	tag, err := language.Parse(string(text))
	if err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidLanguage, err))
	}
	*lt = LanguageTag{tag: tag}
	return nil
}

// Equal compares the canonical forms of the tags.
func (lt LanguageTag) Equal(val any) bool {
	var other LanguageTag
	switch v := val.(type) {
	case LanguageTag:
		other = v
	case *LanguageTag:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return lt.any == other.any && lt.tag.String() == other.tag.String()
}
