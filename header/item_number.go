package header

import (
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
)

// ErrInvalidNumber is returned for values that are not decimal numbers in range.
const ErrInvalidNumber errorutil.Error = "invalid number"

func parseDigits(text []byte, bitSize int) (uint64, error) {
	if len(text) == 0 {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumber, "empty"))
	}
	// 1*DIGIT
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumber, "unexpected byte %q", c))
		}
	}
	v, err := strconv.ParseUint(string(text), 10, bitSize)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidNumber, err))
	}
	return v, nil
}

// Seconds is a delta-seconds value, for example Access-Control-Max-Age.
type Seconds uint32

// Duration converts the value to [time.Duration].
func (s Seconds) Duration() time.Duration { return time.Duration(s) * time.Second }

func (s Seconds) String() string { return strconv.FormatUint(uint64(s), 10) }

func (s *Seconds) UnmarshalText(text []byte) error {
	v, err := parseDigits(text, 32)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*s = Seconds(v)
	return nil
}

// Length is a body length in bytes, as used by Content-Length.
type Length uint64

func (l Length) String() string { return strconv.FormatUint(uint64(l), 10) }

func (l *Length) UnmarshalText(text []byte) error {
	v, err := parseDigits(text, 64)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*l = Length(v)
	return nil
}
