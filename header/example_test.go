package header_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ghettovoice/gohttp/header"
)

func ExampleParse() {
	langs, err := header.Parse[header.AcceptLanguage](header.RawOf("en, fr;q=0.8", "de;q=0.5"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range langs {
		fmt.Println(l.Item, l.Quality)
	}
	// Output:
	// en 1
	// fr 0.8
	// de 0.5
}

func ExampleFormatter() {
	var buf bytes.Buffer
	f := header.NewFormatter(&buf, nil)
	err := f.WriteHeaders(
		header.Allow{header.MethodGet, header.MethodHead},
		header.ContentLength{Value: 0},
		header.NewText[header.Server]("gohttp\r\nX-Injected: 1"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for line := range strings.Lines(buf.String()) {
		fmt.Printf("%q\n", line)
	}
	// Output:
	// "allow: GET, HEAD\r\n"
	// "content-length: 0\r\n"
	// "server: gohttp X-Injected: 1\r\n"
}

func ExampleParseNamed() {
	hdr, err := header.ParseNamed("If-None-Match", header.RawOf(`W/"1", "2"`))
	if err != nil {
		fmt.Println(err)
		return
	}
	inm := hdr.(header.IfNoneMatch) //nolint:forcetypeassert
	fmt.Printf("%+v\n", inm)
	fmt.Println(inm.Any, len(inm.Items), inm.Items[0].Weak)
	// Output:
	// if-none-match: W/"1", "2"
	// false 2 true
}
