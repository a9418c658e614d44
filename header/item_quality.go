package header

import (
	"bytes"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/util"
)

// ErrInvalidQuality is returned for malformed qvalues.
const ErrInvalidQuality errorutil.Error = "invalid quality value"

// Quality is a qvalue (RFC 7231 Section 5.3.1) in thousandths: 1000 is "1", 500 is "0.5".
type Quality uint16

// QualityMax is the highest and default quality.
const QualityMax Quality = 1000

func (q Quality) String() string {
	switch {
	case q >= QualityMax:
		return "1"
	case q == 0:
		return "0"
	}
	s := strconv.FormatUint(uint64(q)+1000, 10) // 1xyz
	return "0." + strings.TrimRight(s[1:], "0")
}

func (q *Quality) UnmarshalText(text []byte) error {
	if err := grammar.MatchQValue(text); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidQuality, err))
	}
	v := Quality(text[0]-'0') * 1000
	if len(text) > 2 {
		mul := Quality(100)
		for _, c := range text[2:] {
			v += Quality(c-'0') * mul
			mul /= 10
		}
	}
	*q = v
	return nil
}

// QualityItem is an item with an optional ";q=" weight, as used by Accept* headers.
// Quality is rendered only when it differs from [QualityMax].
// Note that the zero value has quality 0, use [NewQualityItem] or set Quality explicitly.
type QualityItem[T any, PT Item[T]] struct {
	Item    T
	Quality Quality
}

// NewQualityItem creates a quality item.
func NewQualityItem[T any, PT Item[T]](item T, q Quality) QualityItem[T, PT] {
	return QualityItem[T, PT]{Item: item, Quality: q}
}

func (qi QualityItem[T, PT]) String() string {
	s := PT(&qi.Item).String()
	if qi.Quality >= QualityMax {
		return s
	}
	return s + ";q=" + qi.Quality.String()
}

// UnmarshalText parses "item" or "item;q=value". A missing weight means [QualityMax].
func (qi *QualityItem[T, PT]) UnmarshalText(text []byte) error {
	q := QualityMax
	if i := bytes.LastIndexByte(text, ';'); i >= 0 {
		param := util.TrimOWS(text[i+1:])
		if len(param) >= 2 && (param[0] == 'q' || param[0] == 'Q') && param[1] == '=' {
			if err := q.UnmarshalText(param[2:]); err != nil {
				return errtrace.Wrap(err)
			}
			text = util.TrimOWS(text[:i])
		}
	}

	var item T
	if err := PT(&item).UnmarshalText(text); err != nil {
		return errtrace.Wrap(err)
	}
	*qi = QualityItem[T, PT]{Item: item, Quality: q}
	return nil
}

func (qi QualityItem[T, PT]) Equal(val any) bool {
	var other QualityItem[T, PT]
	switch v := val.(type) {
	case QualityItem[T, PT]:
		other = v
	case *QualityItem[T, PT]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return qi.Quality == other.Quality && itemEqual[T, PT](qi.Item, other.Item)
}

func (qi QualityItem[T, PT]) Clone() QualityItem[T, PT] {
	qi.Item = cloneItem(qi.Item)
	return qi
}
