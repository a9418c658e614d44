package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// List is a header holding zero or more comma separated items.
// Parsing accepts items spread over several lines, formatting always produces one line.
type List[F Field, T any, PT Item[T]] []T

// Name returns the canonical name of the header.
func (List[F, T, PT]) Name() Name { return fieldName[F]() }

// ParseRaw parses the raw value into the header. An empty list is accepted.
func (hdr *List[F, T, PT]) ParseRaw(raw Raw) error {
	items, err := ParseCommaDelimited[T, PT](raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = items
	return nil
}

// FormatHeader writes the header through the safe formatter path.
func (hdr List[F, T, PT]) FormatHeader(f *Formatter) error {
	return errtrace.Wrap(f.FmtLine(hdr.Name(), hdr))
}

// RenderValueTo writes the items joined with ", ".
func (hdr List[F, T, PT]) RenderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderCommaDelimited[T, PT](w, hdr))
}

// RenderValue returns the string representation of the header value.
func (hdr List[F, T, PT]) RenderValue() string { return renderValue(hdr) }

// String returns the string representation of the header value.
func (hdr List[F, T, PT]) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr List[F, T, PT]) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr List[F, T, PT]) Clone() Header { return cloneItems(hdr) }

// Equal compares this header with another for equality.
func (hdr List[F, T, PT]) Equal(val any) bool {
	var other List[F, T, PT]
	switch v := val.(type) {
	case List[F, T, PT]:
		other = v
	case *List[F, T, PT]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return itemsEqual[T, PT](hdr, other)
}

func (hdr List[F, T, PT]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *List[F, T, PT]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, fieldName[F](), hdr.ParseRaw))
}

// NonEmptyList is a header holding one or more comma separated items.
// It behaves as [List] except that parsing rejects a value without items with [ErrEmptyItem].
type NonEmptyList[F Field, T any, PT Item[T]] []T

// Name returns the canonical name of the header.
func (NonEmptyList[F, T, PT]) Name() Name { return fieldName[F]() }

// ParseRaw parses the raw value into the header.
func (hdr *NonEmptyList[F, T, PT]) ParseRaw(raw Raw) error {
	items, err := parseNonEmpty[T, PT](raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*hdr = items
	return nil
}

// FormatHeader writes the header through the safe formatter path.
func (hdr NonEmptyList[F, T, PT]) FormatHeader(f *Formatter) error {
	return errtrace.Wrap(f.FmtLine(hdr.Name(), hdr))
}

// RenderValueTo writes the items joined with ", ".
func (hdr NonEmptyList[F, T, PT]) RenderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderCommaDelimited[T, PT](w, hdr))
}

// RenderValue returns the string representation of the header value.
func (hdr NonEmptyList[F, T, PT]) RenderValue() string { return renderValue(hdr) }

// String returns the string representation of the header value.
func (hdr NonEmptyList[F, T, PT]) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr NonEmptyList[F, T, PT]) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr NonEmptyList[F, T, PT]) Clone() Header { return cloneItems(hdr) }

// Equal compares this header with another for equality.
func (hdr NonEmptyList[F, T, PT]) Equal(val any) bool {
	var other NonEmptyList[F, T, PT]
	switch v := val.(type) {
	case NonEmptyList[F, T, PT]:
		other = v
	case *NonEmptyList[F, T, PT]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return itemsEqual[T, PT](hdr, other)
}

func (hdr NonEmptyList[F, T, PT]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *NonEmptyList[F, T, PT]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, fieldName[F](), hdr.ParseRaw))
}
