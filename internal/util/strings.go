package util

import (
	"strings"
	"sync"

	"github.com/ghettovoice/gohttp/internal/constraints"
)

// LCase lower-cases s keeping its named string type.
func LCase[S ~string](s S) S { return S(strings.ToLower(string(s))) }

func TrimSP[S ~string](s S) S { return S(strings.TrimSpace(string(s))) }

// EqFold compares two string-like values case-insensitively.
func EqFold[S1, S2 ~string](a S1, b S2) bool { return strings.EqualFold(string(a), string(b)) }

func isOWS(c byte) bool { return c == ' ' || c == '\t' }

// TrimOWS trims optional whitespace (SP and HTAB) around s.
func TrimOWS[T constraints.Byteseq](s T) T {
	for len(s) > 0 && isOWS(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && isOWS(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// Ellipsis cuts s to at most n runes, marking the cut with "...".
func Ellipsis(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "..."
		}
		i++
	}
	return s
}

var sbPool = sync.Pool{
	New: func() any {
		var sb strings.Builder
		sb.Grow(256)
		return &sb
	},
}

// GetStringBuilder takes a builder from the pool. Return it with [FreeStringBuilder].
func GetStringBuilder() *strings.Builder {
	return sbPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	sbPool.Put(sb)
}
