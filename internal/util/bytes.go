package util

import (
	"bytes"
	"sync"
)

// maxPooledBuf keeps oversized field values from pinning memory in the pool.
const maxPooledBuf = 64 << 10

var bufPool = sync.Pool{New: func() any { return bytes.NewBuffer(make([]byte, 0, 128)) }}

// GetBytesBuffer takes an empty buffer from the pool. Return it with [FreeBytesBuffer].
func GetBytesBuffer() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer) //nolint:forcetypeassert
}

func FreeBytesBuffer(b *bytes.Buffer) {
	if b.Cap() > maxPooledBuf {
		return
	}
	b.Reset()
	bufPool.Put(b)
}
