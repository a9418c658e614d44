package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Text is a header holding exactly one free-form text value, such as User-Agent or Location.
// The value is a [Cow]: constants are borrowed, parsed values are owned.
type Text[F Field] struct {
	Value Cow
}

// NewText creates a text header of type H.
// A string argument is borrowed, a []byte argument is copied into an owned buffer.
//
//	ua := header.NewText[header.UserAgent]("gohttp/1.0")
func NewText[H ~struct{ Value Cow }, S string | []byte](s S) H {
	var v Cow
	switch s := any(s).(type) {
	case string:
		v = Borrowed(s)
	case []byte:
		v = Owned(s)
	}
	return H(struct{ Value Cow }{Value: v})
}

// Name returns the canonical name of the header.
func (Text[F]) Name() Name { return fieldName[F]() }

// ParseRaw parses the raw value into the header.
// The raw value must consist of exactly one line of valid UTF-8 text.
func (hdr *Text[F]) ParseRaw(raw Raw) error {
	v, err := parseText(raw)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.Value = v
	return nil
}

// FormatHeader writes the header through the safe formatter path.
func (hdr Text[F]) FormatHeader(f *Formatter) error {
	return errtrace.Wrap(f.FmtLine(hdr.Name(), hdr))
}

// RenderValueTo writes the text.
func (hdr Text[F]) RenderValueTo(w io.Writer) (num int, err error) {
	if hdr.Value.isOwned {
		return errtrace.Wrap2(w.Write(hdr.Value.owned))
	}
	return errtrace.Wrap2(io.WriteString(w, hdr.Value.borrowed))
}

// RenderValue returns the text.
func (hdr Text[F]) RenderValue() string { return hdr.Value.String() }

// String returns the text.
func (hdr Text[F]) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Text[F]) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr Text[F]) Clone() Header {
	hdr.Value = hdr.Value.Clone()
	return hdr
}

// Equal compares this header with another for equality.
func (hdr Text[F]) Equal(val any) bool {
	var other Text[F]
	switch v := val.(type) {
	case Text[F]:
		other = v
	case *Text[F]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.Value.Equal(other.Value)
}

func (hdr Text[F]) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

func (hdr *Text[F]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalJSON(data, fieldName[F](), hdr.ParseRaw))
}
