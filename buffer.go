package jsondom

import (
	"strings"
	"sync"
)

// Buffer with largest field first
type Buffer struct {
	buf []byte // 24 bytes (ptr + len + cap)
	off int    // 8 bytes
}

var (
	builderPool = sync.Pool{
		New: func() interface{} {
			return &strings.Builder{}
		},
	}
	tinyBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 64)}
		},
	}
	smallBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 256)}
		},
	}
	mediumBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 1024)}
		},
	}
	largeBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 4096)}
		},
	}
)

// ### Buffer Pool Management ###

// getBufferSize returns a buffer with at least the specified capacity
func getBufferSize(sizeHint int) *Buffer {
	var buf *Buffer

	switch {
	case sizeHint <= 64:
		buf = tinyBuffers.Get().(*Buffer)
	case sizeHint <= 256:
		buf = smallBuffers.Get().(*Buffer)
	case sizeHint <= 1024:
		buf = mediumBuffers.Get().(*Buffer)
	default:
		buf = largeBuffers.Get().(*Buffer)
		if cap(buf.buf) < sizeHint {
			buf.buf = make([]byte, 0, sizeHint)
		}
	}

	buf.buf = buf.buf[:0]
	buf.off = 0

	return buf
}

func getBuffer() *Buffer {
	return getBufferSize(256)
}

// Return a buffer to the appropriate pool after use
func putBuffer(buf *Buffer) {
	if buf == nil || cap(buf.buf) > 65536 {
		return
	}
	buf.Reset()

	switch {
	case cap(buf.buf) <= 64:
		tinyBuffers.Put(buf)
	case cap(buf.buf) <= 256:
		smallBuffers.Put(buf)
	case cap(buf.buf) <= 1024:
		mediumBuffers.Put(buf)
	default:
		largeBuffers.Put(buf)
	}
}

// ### Builder Management ###

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	builderPool.Put(b)
}

// ### Buffer Operations ###

func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	n := copy(b.buf[b.off:], p)
	b.off += n
	return n, nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.grow(1)
	b.buf[b.off] = c
	b.off++
	return nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	n := copy(b.buf[b.off:], s)
	b.off += n
	return n, nil
}

func (b *Buffer) grow(n int) {
	needed := b.off + n
	if needed <= cap(b.buf) {
		b.buf = b.buf[:needed]
		return
	}

	newCap := cap(b.buf)
	switch {
	case newCap == 0:
		newCap = 64
		for newCap < needed {
			newCap <<= 1
		}
	case newCap < 8192:
		newCap *= 2
	default:
		newCap += newCap / 2
	}
	if newCap < needed {
		newCap = needed
	}

	newBuf := make([]byte, needed, newCap)
	copy(newBuf, b.buf[:b.off])
	b.buf = newBuf
}

func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

func (b *Buffer) Len() int {
	return b.off
}

// Bytes returns the written contents. The slice is only valid until the
// buffer is reused.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.off]
}

func (b *Buffer) String() string {
	return string(b.buf[:b.off])
}
