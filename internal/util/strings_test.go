package util_test

import (
	"testing"

	"github.com/ghettovoice/gohttp/internal/util"
)

func TestTrimOWS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", " \t ", ""},
		{"no spaces", "gzip", "gzip"},
		{"both sides", " \tgzip \t", "gzip"},
		{"inner kept", "  a b  ", "a b"},
		{"crlf kept", "\r\nx\r\n", "\r\nx\r\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := util.TrimOWS(c.in); got != c.want {
				t.Errorf("util.TrimOWS(%q) = %q, want %q", c.in, got, c.want)
			}
			if got := string(util.TrimOWS([]byte(c.in))); got != c.want {
				t.Errorf("util.TrimOWS([]byte(%q)) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEllipsis(t *testing.T) {
	t.Parallel()

	if got := util.Ellipsis("abcdef", 3); got != "abc..." {
		t.Errorf("util.Ellipsis(abcdef, 3) = %q, want %q", got, "abc...")
	}
	if got := util.Ellipsis("abc", 3); got != "abc" {
		t.Errorf("util.Ellipsis(abc, 3) = %q, want %q", got, "abc")
	}
}
