package header

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/util"
)

// Extension is a header without a registered typed definition.
// It keeps every physical line of the field as a separate value.
type Extension struct {
	FieldName Name
	Values    []string
}

// NewExtension creates an extension header.
// The name is converted to the canonical form, values are kept as is.
func NewExtension(name string, values ...string) *Extension {
	return &Extension{
		FieldName: CanonicName(name),
		Values:    values,
	}
}

// Name returns the canonical name of the header.
func (hdr *Extension) Name() Name {
	if hdr == nil {
		return ""
	}
	return hdr.FieldName
}

// ParseRaw replaces the header values with the trimmed raw lines.
func (hdr *Extension) ParseRaw(raw Raw) error {
	if len(raw) == 0 {
		return errtrace.Wrap(ErrEmpty)
	}
	vals := make([]string, len(raw))
	for i := range raw {
		vals[i] = string(util.TrimOWS(raw[i]))
	}
	hdr.Values = vals
	return nil
}

// FormatHeader writes every value as its own line through the safe formatter path.
func (hdr *Extension) FormatHeader(f *Formatter) error {
	if hdr == nil {
		return nil
	}
	for _, v := range hdr.Values {
		if err := f.FmtLine(hdr.FieldName, stringValue(v)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// RenderValueTo writes the values joined with ", ".
func (hdr *Extension) RenderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, strings.Join(hdr.Values, ", ")))
}

// RenderValue returns the values joined with ", ".
func (hdr *Extension) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return strings.Join(hdr.Values, ", ")
}

// String returns the values joined with ", ".
func (hdr *Extension) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Extension) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Extension) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Extension{
		FieldName: hdr.FieldName,
		Values:    slices.Clone(hdr.Values),
	}
}

// Equal compares this header with another for equality.
// Names are compared case-insensitively, values are compared as is.
func (hdr *Extension) Equal(val any) bool {
	var other *Extension
	switch v := val.(type) {
	case Extension:
		other = &v
	case *Extension:
		other = v
	default:
		return false
	}
	if hdr == other {
		return true
	}
	if hdr == nil || other == nil {
		return false
	}
	return hdr.FieldName.Equal(other.FieldName) && slices.Equal(hdr.Values, other.Values)
}

func (hdr *Extension) MarshalJSON() ([]byte, error) {
	if hdr == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(&headerData{
		Name:   string(hdr.FieldName),
		Values: hdr.Values,
	}))
}

func (hdr *Extension) UnmarshalJSON(data []byte) error {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		return errtrace.Wrap(err)
	}
	if hd == nil {
		return nil
	}
	name := CanonicName(hd.Name)
	if !name.IsValid() {
		return errtrace.Wrap(newInvalidNameErr(hd.Name))
	}
	hdr.FieldName = name
	return errtrace.Wrap(hdr.ParseRaw(hd.raw()))
}

type stringValue string

func (s stringValue) RenderValueTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(s)))
}
