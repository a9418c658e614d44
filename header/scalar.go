package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Scalar is a header holding exactly one item.
type Scalar[F Field, T any, PT Item[T]] struct {
	Value T
}

// Name returns the canonical name of the header.
func (Scalar[F, T, PT]) Name() Name { return fieldName[F]() }

// ParseRaw parses the raw value into the header.
// The raw value must consist of exactly one line.
func (hdr *Scalar[F, T, PT]) ParseRaw(raw Raw) error {
	v, err := ParseExactlyOne[T, PT](raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.Value = v
	return nil
}

// FormatHeader writes the header through the safe formatter path.
func (hdr Scalar[F, T, PT]) FormatHeader(f *Formatter) error {
	return errtrace.Wrap(f.FmtLine(hdr.Name(), hdr))
}

// RenderValueTo writes the item.
func (hdr Scalar[F, T, PT]) RenderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderScalar[T, PT](w, hdr.Value))
}

// RenderValue returns the string representation of the header value.
func (hdr Scalar[F, T, PT]) RenderValue() string { return itemString[T, PT](hdr.Value) }

// String returns the string representation of the header value.
func (hdr Scalar[F, T, PT]) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Scalar[F, T, PT]) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr Scalar[F, T, PT]) Clone() Header {
	hdr.Value = cloneItem(hdr.Value)
	return hdr
}

// Equal compares this header with another for equality.
func (hdr Scalar[F, T, PT]) Equal(val any) bool {
	var other Scalar[F, T, PT]
	switch v := val.(type) {
	case Scalar[F, T, PT]:
		other = v
	case *Scalar[F, T, PT]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return itemEqual[T, PT](hdr.Value, other.Value)
}

func (hdr Scalar[F, T, PT]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Scalar[F, T, PT]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, fieldName[F](), hdr.ParseRaw))
}

// Unchecked is a single item header that is written without the line break scan.
// It is meant for hot path headers whose item parser only accepts values
// without control characters, such as Host or Content-Length.
type Unchecked[F Field, T any, PT Item[T]] Scalar[F, T, PT]

// Name returns the canonical name of the header.
func (Unchecked[F, T, PT]) Name() Name { return fieldName[F]() }

// ParseRaw parses the raw value into the header.
// The raw value must consist of exactly one line.
func (hdr *Unchecked[F, T, PT]) ParseRaw(raw Raw) error {
	return errtrace.Wrap((*Scalar[F, T, PT])(hdr).ParseRaw(raw))
}

// FormatHeader writes the header through the unchecked formatter path.
func (hdr Unchecked[F, T, PT]) FormatHeader(f *Formatter) error {
	return errtrace.Wrap(f.DangerFmtLine(hdr.Name(), hdr))
}

// RenderValueTo writes the item.
func (hdr Unchecked[F, T, PT]) RenderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderScalar[T, PT](w, hdr.Value))
}

// RenderValue returns the string representation of the header value.
func (hdr Unchecked[F, T, PT]) RenderValue() string { return itemString[T, PT](hdr.Value) }

// String returns the string representation of the header value.
func (hdr Unchecked[F, T, PT]) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Unchecked[F, T, PT]) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr Unchecked[F, T, PT]) Clone() Header {
	hdr.Value = cloneItem(hdr.Value)
	return hdr
}

// Equal compares this header with another for equality.
func (hdr Unchecked[F, T, PT]) Equal(val any) bool {
	var other Unchecked[F, T, PT]
	switch v := val.(type) {
	case Unchecked[F, T, PT]:
		other = v
	case *Unchecked[F, T, PT]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return itemEqual[T, PT](hdr.Value, other.Value)
}

func (hdr Unchecked[F, T, PT]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Unchecked[F, T, PT]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, fieldName[F](), hdr.ParseRaw))
}
