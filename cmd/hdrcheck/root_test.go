package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gohttp/header"
	"github.com/ghettovoice/gohttp/internal/rawhead"
)

func execute(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	c := newRootCommand(strings.NewReader(in), &out, &errOut)
	c.cmd.SetArgs(args)
	err = c.cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		args       []string
		wantOut    string
		wantErr    error
		wantErrLog string
	}{
		{
			"merge and canonicalize",
			"Accept-Language: en,fr\r\nAccept-Language: de\r\nContent-Length: 10\r\n\r\n",
			nil,
			"accept-language: en, fr, de\r\ncontent-length: 10\r\n",
			nil,
			"",
		},
		{
			"malformed field is passed through",
			"Content-Length: ten\r\nX-A: b\r\n",
			nil,
			"content-length: ten\r\nx-a: b\r\n",
			nil,
			"malformed header field",
		},
		{
			"strict",
			"Content-Length: ten\r\nX-A: b\r\n",
			[]string{"--strict"},
			"content-length: ten\r\nx-a: b\r\n",
			header.ErrItemParse,
			"malformed header field",
		},
		{
			"json",
			"Allow: GET\r\nX-A: 1\r\nx-a: 2\r\n",
			[]string{"--json"},
			`{"name":"allow","value":"GET"}` + "\n" + `{"name":"x-a","values":["1","2"]}` + "\n",
			nil,
			"",
		},
		{
			"obs-fold",
			"X-A: 1\r\n 2\r\n",
			nil,
			"",
			rawhead.ErrObsFold,
			"malformed header block",
		},
		{
			"stdin dash",
			"Host: example.com\n",
			[]string{"-"},
			"host: example.com\r\n",
			nil,
			"",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			out, errLog, err := execute(t, c.in, c.args...)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("cmd.Execute() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if out != c.wantOut {
				t.Errorf("stdout = %q, want %q", out, c.wantOut)
			}
			if !strings.Contains(errLog, c.wantErrLog) {
				t.Errorf("stderr = %q, want it to contain %q", errLog, c.wantErrLog)
			}
		})
	}
}

func TestRootCommand_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "headers.txt")
	if err := os.WriteFile(path, []byte("If-None-Match: *\r\n\r\n"), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v, want nil", err)
	}

	out, _, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("cmd.Execute() error = %v, want nil", err)
	}
	if want := "if-none-match: *\r\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}

	if _, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("cmd.Execute() error = %v, want not exist", err)
	}
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	t.Parallel()

	if _, _, err := execute(t, "", "--log-level", "loud"); err == nil {
		t.Errorf("cmd.Execute() error = nil, want error")
	}
	if _, _, err := execute(t, "", "a", "b"); err == nil {
		t.Errorf("cmd.Execute() error = nil, want error")
	}
}

func TestRootCommand_Env(t *testing.T) {
	t.Setenv("HDRCHECK_JSON", "true")
	t.Setenv("HDRCHECK_LOG_LEVEL", "debug")

	out, errLog, err := execute(t, "Vary: *\r\n")
	if err != nil {
		t.Fatalf("cmd.Execute() error = %v, want nil", err)
	}
	if want := `{"name":"vary","value":"*"}` + "\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	if !strings.Contains(errLog, "header block read") {
		t.Errorf("stderr = %q, want debug record", errLog)
	}

	out, _, err = execute(t, "Vary: *\r\n", "--json=false")
	if err != nil {
		t.Fatalf("cmd.Execute() error = %v, want nil", err)
	}
	if want := "vary: *\r\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRootCommand_BadEnv(t *testing.T) {
	t.Setenv("HDRCHECK_STRICT", "maybe")

	if _, _, err := execute(t, "Vary: *\r\n"); err == nil {
		t.Errorf("cmd.Execute() error = nil, want error")
	}
}
