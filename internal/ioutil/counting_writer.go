// Package ioutil contains io helpers used by the header renderers.
package ioutil

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=iomock/writer.go -package=iomock io Writer

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter counts bytes passed to the underlying writer and latches the first error.
// Once an error is latched, writes are skipped and return it.
// This lets a renderer issue a run of writes and check the outcome once at the end.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) Write(p []byte) (int, error) {
	return cw.do(func(w io.Writer) (int, error) { return w.Write(p) })
}

func (cw *CountingWriter) WriteString(s string) (int, error) {
	return cw.do(func(w io.Writer) (int, error) { return io.WriteString(w, s) })
}

// Call runs fn against the underlying writer, typically a RenderValueTo method.
// It returns cw so calls can be chained.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	cw.do(fn) //nolint:errcheck
	return cw
}

func (cw *CountingWriter) do(fn func(io.Writer) (int, error)) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := fn(cw.w)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
	}
	return n, errtrace.Wrap(cw.err)
}

// Result returns the byte count and the latched error.
func (cw *CountingWriter) Result() (int, error) { return cw.num, errtrace.Wrap(cw.err) }

func (cw *CountingWriter) Err() error { return errtrace.Wrap(cw.err) }

func (cw *CountingWriter) Count() int { return cw.num }

var cwPool = sync.Pool{New: func() any { return new(CountingWriter) }}

// GetCountingWriter takes a writer from the pool. Return it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cwPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cwPool.Put(cw)
}
