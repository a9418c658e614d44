package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gohttp/internal/ioutil"
	"github.com/ghettovoice/gohttp/internal/ioutil/iomock"
)

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	errRender := errors.New("render failed")
	text := func(s string) func(io.Writer) (int, error) {
		return func(w io.Writer) (int, error) { return io.WriteString(w, s) }
	}

	cases := []struct {
		name    string
		write   func(cw *ioutil.CountingWriter)
		wantOut string
		wantNum int
		wantErr error
	}{
		{
			name: "write and write string",
			write: func(cw *ioutil.CountingWriter) {
				cw.Write([]byte("accept")) //nolint:errcheck
				cw.WriteString(": */*")    //nolint:errcheck
			},
			wantOut: "accept: */*",
			wantNum: 11,
		},
		{
			name: "call chain",
			write: func(cw *ioutil.CountingWriter) {
				cw.Call(text("en")).Call(text(", ")).Call(text("fr"))
			},
			wantOut: "en, fr",
			wantNum: 6,
		},
		{
			name: "call chain stops on error",
			write: func(cw *ioutil.CountingWriter) {
				cw.Call(text("a")).
					Call(func(w io.Writer) (int, error) {
						n, _ := io.WriteString(w, "b")
						return n, errRender
					}).
					Call(text("c"))
				cw.WriteString("d") //nolint:errcheck
			},
			wantOut: "ab",
			wantNum: 2,
			wantErr: errRender,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			cw := ioutil.NewCountingWriter(&buf)
			c.write(cw)

			num, err := cw.Result()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("cw.Result() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if num != c.wantNum {
				t.Errorf("cw.Result() num = %d, want %d", num, c.wantNum)
			}
			if got := buf.String(); got != c.wantOut {
				t.Errorf("written = %q, want %q", got, c.wantOut)
			}
		})
	}
}

func TestCountingWriter_LatchedError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	w := iomock.NewMockWriter(ctrl)
	errWrite := errors.New("write failed")
	gomock.InOrder(
		w.EXPECT().Write([]byte("host")).Return(4, nil),
		w.EXPECT().Write([]byte(": ")).Return(1, errWrite),
	)

	cw := ioutil.NewCountingWriter(w)
	cw.WriteString("host") //nolint:errcheck
	if _, err := cw.WriteString(": "); !errors.Is(err, errWrite) {
		t.Fatalf("cw.WriteString() error = %v, want %v", err, errWrite)
	}
	// no further Write is expected by the mock
	if n, err := cw.WriteString("example.com"); n != 0 || !errors.Is(err, errWrite) {
		t.Errorf("cw.WriteString() = (%d, %v), want (0, %v)", n, err, errWrite)
	}
	if got := cw.Count(); got != 5 {
		t.Errorf("cw.Count() = %d, want 5", got)
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := ioutil.GetCountingWriter(&buf)
	cw.WriteString("x") //nolint:errcheck
	ioutil.FreeCountingWriter(cw)

	cw = ioutil.GetCountingWriter(&buf)
	defer ioutil.FreeCountingWriter(cw)
	if cw.Count() != 0 || cw.Err() != nil {
		t.Errorf("pooled writer = {count: %d, err: %v}, want zero", cw.Count(), cw.Err())
	}
}
