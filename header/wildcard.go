package header

import (
	"bytes"
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AnyOrList is a header that is either the wildcard "*" or a list of items,
// such as If-Match or Vary.
// Items is ignored when Any is set.
type AnyOrList[F Field, T any, PT Item[T]] struct {
	Any   bool
	Items []T
}

// Name returns the canonical name of the header.
func (AnyOrList[F, T, PT]) Name() Name { return fieldName[F]() }

var wildcard = []byte{'*'}

// ParseRaw parses the raw value into the header.
// The wildcard is recognized only when the raw value is exactly one line
// consisting of the single byte "*". Anything else, including "*" combined
// with other items or split over several lines, is parsed as a list of items.
// The list may be empty.
func (hdr *AnyOrList[F, T, PT]) ParseRaw(raw Raw) error {
	if line, ok := raw.One(); ok && bytes.Equal(line, wildcard) {
		*hdr = AnyOrList[F, T, PT]{Any: true}
		return nil
	}

	items, err := ParseCommaDelimited[T, PT](raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = AnyOrList[F, T, PT]{Items: items}
	return nil
}

// FormatHeader writes the header through the safe formatter path.
func (hdr AnyOrList[F, T, PT]) FormatHeader(f *Formatter) error {
	return errtrace.Wrap(f.FmtLine(hdr.Name(), hdr))
}

// RenderValueTo writes "*" or the items joined with ", ".
func (hdr AnyOrList[F, T, PT]) RenderValueTo(w io.Writer) (num int, err error) {
	if hdr.Any {
		return errtrace.Wrap2(w.Write(wildcard))
	}
	return errtrace.Wrap2(renderCommaDelimited[T, PT](w, hdr.Items))
}

// RenderValue returns the string representation of the header value.
func (hdr AnyOrList[F, T, PT]) RenderValue() string { return renderValue(hdr) }

// String returns the string representation of the header value.
func (hdr AnyOrList[F, T, PT]) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AnyOrList[F, T, PT]) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr AnyOrList[F, T, PT]) Clone() Header {
	hdr.Items = cloneItems(hdr.Items)
	return hdr
}

// Equal compares this header with another for equality.
// Two wildcards are equal regardless of their items.
func (hdr AnyOrList[F, T, PT]) Equal(val any) bool {
	var other AnyOrList[F, T, PT]
	switch v := val.(type) {
	case AnyOrList[F, T, PT]:
		other = v
	case *AnyOrList[F, T, PT]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if hdr.Any || other.Any {
		return hdr.Any == other.Any
	}
	return itemsEqual[T, PT](hdr.Items, other.Items)
}

func (hdr AnyOrList[F, T, PT]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *AnyOrList[F, T, PT]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, fieldName[F](), hdr.ParseRaw))
}
