// Command hdrcheck reads an HTTP header block, parses every field with its typed definition
// and writes the fields back in canonical form.
//
//	printf 'Accept-Language: en,fr\r\nAccept-Language: de\r\n\r\n' | hdrcheck
//	hdrcheck --json --strict headers.txt
package main

import (
	"os"

	"github.com/ghettovoice/gohttp/internal/log"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).cmd.Execute(); err != nil {
		log.Def.Error("hdrcheck failed", "error", err)
		os.Exit(1)
	}
}
