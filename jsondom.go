// Package jsondom is a JSON document model with a streaming, chunk-fed
// parser and a canonical serializer.
//
// Callers hand it bytes, whole or incrementally, and receive a typed Value
// tree; or hand it a tree and receive canonical JSON text. Number literals
// are kept verbatim, so re-serializing a parsed document is lossless even
// for values a float64 cannot represent exactly. Objects keep their members
// sorted by key, writing requires an object root, and there are no
// formatting options: exactly one output form exists.
package jsondom

import (
	"io"
	"os"
)

// readBufferSize is the fixed read granularity of the Read loop.
const readBufferSize = 4096

// Read parses a single JSON document from r, reading fixed-size chunks
// until end of input. It returns the top-level value, which may be of any
// of the six kinds, or a null value for empty input. Malformed input fails
// with *SyntaxError.
func Read(r io.Reader) (Value, error) {
	b := newTreeBuilder()
	p := NewParser(b)

	buf := make([]byte, readBufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ferr := p.Feed(buf[:n]); ferr != nil {
				return Value{}, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Value{}, err
		}
	}
	if err := p.Finish(); err != nil {
		return Value{}, err
	}
	return b.root(), nil
}

// ReadBytes parses a single JSON document held in memory.
func ReadBytes(data []byte) (Value, error) {
	b := newTreeBuilder()
	p := NewParser(b)
	if err := p.Feed(data); err != nil {
		return Value{}, err
	}
	if err := p.Finish(); err != nil {
		return Value{}, err
	}
	return b.root(), nil
}

// ReadString parses a single JSON document from a string.
func ReadString(s string) (Value, error) {
	b := newTreeBuilder()
	p := NewParser(b)
	// strings feed chunk-wise too; one chunk is just the degenerate case
	if err := p.Feed([]byte(s)); err != nil {
		return Value{}, err
	}
	if err := p.Finish(); err != nil {
		return Value{}, err
	}
	return b.root(), nil
}

// ReadFile parses the JSON document stored in the named file. The file is
// closed on every return path.
func ReadFile(path string) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return Value{}, err
	}
	defer f.Close()

	return Read(f)
}

// Write renders v to w in the canonical form. The root must be an object;
// any other kind fails with ErrInvalidRoot, even though Read accepts every
// kind as root.
func Write(w io.Writer, v *Value) error {
	if v.kind != KindObject {
		return ErrInvalidRoot
	}

	buf := getBufferSize(1024)
	defer putBuffer(buf)

	appendValue(buf, v)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteFile renders v into the named file, creating or truncating it. The
// file is closed unconditionally; a close failure on a successful write is
// reported.
func WriteFile(path string, v *Value) error {
	if v.kind != KindObject {
		return ErrInvalidRoot
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	werr := Write(f, v)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Text renders v to a string, the in-memory equivalent of Write. It
// inherits the object-root restriction.
func (v *Value) Text() (string, error) {
	if v.kind != KindObject {
		return "", ErrInvalidRoot
	}

	buf := getBufferSize(1024)
	defer putBuffer(buf)

	appendValue(buf, v)
	return buf.String(), nil
}
