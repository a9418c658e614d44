package header

import (
	"net/http"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
)

// ErrInvalidDate is returned for values that are not HTTP dates.
const ErrInvalidDate errorutil.Error = "invalid HTTP date"

// HTTPDate is an HTTP-date (RFC 7231 Section 7.1.1.1).
// Parsing accepts IMF-fixdate and the obsolete RFC 850 and asctime formats,
// rendering always produces IMF-fixdate.
type HTTPDate time.Time

// NewHTTPDate creates an HTTPDate truncated to seconds.
func NewHTTPDate(t time.Time) HTTPDate { return HTTPDate(t.UTC().Truncate(time.Second)) }

// Time returns the date as [time.Time].
func (d HTTPDate) Time() time.Time { return time.Time(d) }

func (d HTTPDate) String() string { return time.Time(d).UTC().Format(http.TimeFormat) }

func (d *HTTPDate) UnmarshalText(text []byte) error {
	t, err := http.ParseTime(string(text))
	if err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidDate, err))
	}
	*d = HTTPDate(t.UTC())
	return nil
}

func (d HTTPDate) Equal(val any) bool {
	switch v := val.(type) {
	case HTTPDate:
		return time.Time(d).Equal(time.Time(v))
	case *HTTPDate:
		return v != nil && time.Time(d).Equal(time.Time(*v))
	default:
		return false
	}
}
