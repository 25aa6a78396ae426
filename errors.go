package jsondom

import (
	"errors"
	"strconv"
)

// SyntaxError reports a byte that is invalid for the parser's current state.
// A parser that returned one is dead; feeding it again returns the same error.
type SyntaxError struct {
	Msg    string // 16 bytes (ptr + len)
	Offset int64  // 8 bytes, absolute offset across all chunks fed so far
}

func (e *SyntaxError) Error() string {
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString("jsondom: syntax error at offset ")
	b.WriteString(strconv.FormatInt(e.Offset, 10))
	b.WriteString(": ")
	b.WriteString(e.Msg)

	return b.String()
}

// WrongTypeError is returned by typed accessors when the value holds a
// different kind than the one requested.
type WrongTypeError struct {
	Requested Kind
	Actual    Kind
}

func (e *WrongTypeError) Error() string {
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString("jsondom: could not access ")
	b.WriteString(e.Requested.String())
	b.WriteString(" value, stored value is of another type (")
	b.WriteString(e.Actual.String())
	b.WriteString(")")

	return b.String()
}

// NumberFormatError is returned when a Number's literal does not fit or is
// not representable in the requested numeric type.
type NumberFormatError struct {
	Literal string // the verbatim number text
	Target  string // e.g. "int64"
	Err     error  // underlying strconv error, if any
}

func (e *NumberFormatError) Error() string {
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString("jsondom: cannot convert number literal ")
	b.WriteString(strconv.Quote(e.Literal))
	b.WriteString(" to ")
	b.WriteString(e.Target)

	return b.String()
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

// ErrInvalidRoot is returned by Write and Text when the root value is not an
// object. Reading has no such restriction.
var ErrInvalidRoot = errors.New("jsondom: tried to write JSON with non-object root element")
