package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/constraints"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/util"
)

// Name represents a canonical (lowercase) HTTP header field name.
type Name string

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality (case-insensitive).
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(n, other)
}

// CanonicName converts name to the canonical form used by the registry:
// surrounding spaces are trimmed and all letters are lowercased.
func CanonicName[T ~string](name T) Name {
	return Name(util.LCase(util.TrimSP(string(name))))
}

// Field describes a concrete header field at the type level.
// Implementations are zero-size types, the name they return must be canonical.
//
//	type xRequestIDField struct{}
//
//	func (xRequestIDField) Name() header.Name { return "x-request-id" }
//
//	type XRequestID = header.Text[xRequestIDField]
type Field interface {
	Name() Name
}

func fieldName[F Field]() Name {
	var f F
	return f.Name()
}

// Header represents a typed HTTP header.
type Header interface {
	// Name returns the canonical lowercase name of the header.
	Name() Name
	// FormatHeader writes the header as one or more physical lines through f.
	FormatHeader(f *Formatter) error
	// RenderValueTo writes the header value without the name and without line terminators.
	RenderValueTo(w io.Writer) (int, error)
	// RenderValue returns the header value as a string.
	RenderValue() string
	String() string
	Clone() Header
	Equal(val any) bool
}

// Parser is a constraint for pointers to header types that can be parsed from a [Raw] value.
type Parser[H any] interface {
	*H
	ParseRaw(raw Raw) error
}

// Parse parses the raw value into the header type H.
//
//	langs, err := header.Parse[header.AcceptLanguage](header.RawOf("en, fr", "de"))
func Parse[H any, PH Parser[H]](raw Raw) (H, error) {
	var hdr H
	if err := PH(&hdr).ParseRaw(raw); err != nil {
		var zero H
		return zero, errtrace.Wrap(err)
	}
	return hdr, nil
}

// Item is a constraint for leaf header values.
// The pointer to the item type parses the item from its canonical text and renders it back.
// Rendering must not fail.
type Item[T any] interface {
	*T
	String() string
	UnmarshalText(text []byte) error
}

// ParseItem parses a single item from its textual form.
func ParseItem[T any, PT Item[T], S constraints.Byteseq](s S) (T, error) {
	var item T
	if err := PT(&item).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return item, nil
}

func itemString[T any, PT Item[T]](item T) string { return PT(&item).String() }

func itemEqual[T any, PT Item[T]](a, b T) bool {
	if v, ok := any(a).(interface{ Equal(val any) bool }); ok {
		return v.Equal(b)
	}
	return itemString[T, PT](a) == itemString[T, PT](b)
}

func itemsEqual[T any, PT Item[T]](a, b []T) bool {
	return slices.EqualFunc(a, b, itemEqual[T, PT])
}

func cloneItem[T any](item T) T {
	if v, ok := any(item).(interface{ Clone() T }); ok {
		return v.Clone()
	}
	return item
}

func cloneItems[S ~[]T, T any](items S) S {
	if items == nil {
		return nil
	}
	items2 := make(S, len(items))
	for i := range items {
		items2[i] = cloneItem(items[i])
	}
	return items2
}

func renderValue(hdr Header) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func formatHeader(f fmt.State, verb rune, hdr Header) {
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			fmt.Fprint(f, hdr.Name(), ": ", hdr.RenderValue())
			return
		}
		fmt.Fprint(f, hdr.RenderValue())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(string(hdr.Name())+": "+hdr.RenderValue()))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.RenderValue()))
		return
	default:
		fmt.Fprintf(f, "%%!%c(%s=%s)", verb, hdr.Name(), hdr.RenderValue())
		return
	}
}

type headerData struct {
	Name   string   `json:"name"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

func (hd *headerData) raw() Raw {
	if len(hd.Values) > 0 {
		return RawOf(hd.Values...)
	}
	return RawOf(hd.Value)
}

// ToJSON serializes the header as {"name":"<name>","value":"<value>"}.
func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.Name()),
			Value: hdr.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(hd))
}

// FromJSON deserializes a header produced by [ToJSON] or by [Extension.MarshalJSON].
// The value is re-parsed with the parser registered for the name, see [ParseNamed].
func FromJSON[T constraints.Byteseq](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}
	return errtrace.Wrap2(ParseNamed(hd.Name, hd.raw()))
}

func unmarshalJSON(data []byte, name Name, parse func(raw Raw) error) error {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		return errtrace.Wrap(err)
	}
	if hd == nil {
		return nil
	}
	if got := CanonicName(hd.Name); got != name {
		return errtrace.Wrap(newUnexpectedHeaderErr("got %q, want %q", got, name))
	}
	return errtrace.Wrap(parse(hd.raw()))
}
