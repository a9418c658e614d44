package header

import (
	"log/slog"
	"slices"

	"github.com/ghettovoice/gohttp/internal/constraints"
)

// Raw is the raw value of a header field: one entry per physical occurrence
// of the field in a message, in order of appearance.
type Raw [][]byte

// RawOf builds a raw value from the given lines.
// Every line is copied, the result does not alias the arguments.
func RawOf[T constraints.Byteseq](lines ...T) Raw {
	raw := make(Raw, len(lines))
	for i := range lines {
		raw[i] = append([]byte(nil), lines[i]...)
	}
	return raw
}

// Len returns the number of physical lines.
func (raw Raw) Len() int { return len(raw) }

// One returns the only line of the value.
// It reports false if the value has zero or more than one line.
func (raw Raw) One() ([]byte, bool) {
	if len(raw) != 1 {
		return nil, false
	}
	return raw[0], true
}

// Push appends a copy of line as a new physical line.
func (raw *Raw) Push(line []byte) {
	*raw = append(*raw, slices.Clone(line))
}

// Clone returns a deep copy of the raw value.
func (raw Raw) Clone() Raw {
	if raw == nil {
		return nil
	}
	raw2 := make(Raw, len(raw))
	for i := range raw {
		raw2[i] = slices.Clone(raw[i])
	}
	return raw2
}

// Strings returns the lines as strings.
func (raw Raw) Strings() []string {
	if raw == nil {
		return nil
	}
	ss := make([]string, len(raw))
	for i := range raw {
		ss[i] = string(raw[i])
	}
	return ss
}

// LogValue implements [slog.LogValuer].
func (raw Raw) LogValue() slog.Value {
	return slog.AnyValue(raw.Strings())
}
