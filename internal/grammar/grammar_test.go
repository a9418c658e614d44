package grammar_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ghettovoice/gohttp/internal/grammar"
)

func TestMatchToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		wantErr error
	}{
		{"", grammar.ErrEmptyInput},
		{"gzip", nil},
		{"x-custom_01", nil},
		{"!#$%&'*+-.^_`|~", nil},
		{"a b", grammar.ErrMalformedInput},
		{"a,b", grammar.ErrMalformedInput},
		{"en\r\n", grammar.ErrMalformedInput},
		{`"quoted"`, grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			err := grammar.MatchToken(c.in)
			if c.wantErr == nil && err != nil {
				t.Fatalf("grammar.MatchToken(%q) = %v, want nil", c.in, err)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("grammar.MatchToken(%q) = %v, want %v", c.in, err, c.wantErr)
			}
			if got := grammar.IsToken([]byte(c.in)); got != (c.wantErr == nil) {
				t.Errorf("grammar.IsToken(%q) = %v, want %v", c.in, got, c.wantErr == nil)
			}
		})
	}
}

func TestMatchEntityTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{`"xyzzy"`, true},
		{`W/"xyzzy"`, true},
		{`""`, true},
		{`w/"xyzzy"`, false},
		{`xyzzy`, false},
		{`"xy"zzy"`, false},
		{`"xyzzy`, false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.MatchEntityTag(c.in) == nil; got != c.want {
				t.Errorf("grammar.MatchEntityTag(%q) == nil is %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestMatchQValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"0.5", true},
		{"0.123", true},
		{"1", true},
		{"1.000", true},
		{"1.001", false},
		{"0.1234", false},
		{"2", false},
		{".5", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.MatchQValue(c.in) == nil; got != c.want {
				t.Errorf("grammar.MatchQValue(%q) == nil is %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestError_Grammar(t *testing.T) {
	t.Parallel()

	err := grammar.MatchToken("a b")
	var gerr interface{ Grammar() bool }
	if !errors.As(err, &gerr) || !gerr.Grammar() {
		t.Errorf("grammar.MatchToken(\"a b\") error %v is not a grammar error", err)
	}
}

func TestMatchToken_SingleChar(t *testing.T) {
	t.Parallel()

	const tchars = "!#$%&'*+-.^_`|~0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	for i := range 256 {
		c := string([]byte{byte(i)})
		want := strings.Contains(tchars, c)
		if got := grammar.IsToken(c); got != want {
			t.Errorf("grammar.IsToken(%q) = %v, want %v", c, got, want)
		}
	}
}

func TestMatchMediaRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"text/html", true},
		{"*/*", true},
		{"text/*", true},
		{"text/html;level=1", true},
		{"text/html ; level=1;\tcharset=utf-8", true},
		{`multipart/form-data; boundary="a b\"c"`, true},
		{`text/plain; x="caf` + "\xc3\xa9" + `"`, true},
		{"text", false},
		{"text/", false},
		{"/html", false},
		{"text/html;", false},
		{"text/html; level", false},
		{"text/html; level=", false},
		{`text/html; x="open`, false},
		{"text/html; x=a b", false},
		{"text/html\r\n", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := grammar.MatchMediaRange(c.in) == nil; got != c.want {
				t.Errorf("grammar.MatchMediaRange(%q) == nil is %v, want %v", c.in, got, c.want)
			}
		})
	}
}
