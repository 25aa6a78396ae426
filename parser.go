package jsondom

import "unicode/utf8"

// Handler receives the flat stream of structural events emitted by a Parser,
// in the order tokens are recognized. Whitespace produces no event.
//
// The strings passed to Key and String and the Number literal are freshly
// allocated; the handler may retain them.
type Handler interface {
	ObjectStart()
	ObjectEnd()
	ArrayStart()
	ArrayEnd()
	Key(key string)
	String(s string)
	Number(n Number)
	Bool(b bool)
	Null()
}

type parserState uint8

const (
	stateValue           parserState = iota // expecting a value
	stateArrayValueOrEnd                    // right after '[': value or ']'
	stateArrayCommaOrEnd
	stateObjectKeyOrEnd // right after '{': key or '}'
	stateObjectKey      // after ',' inside object: key required
	stateObjectColon
	stateObjectCommaOrEnd
	stateString
	stateStringEscape
	stateStringUnicode
	stateNumber
	stateLiteral
)

type numberState uint8

const (
	numSign    numberState = iota // '-' consumed, first integer digit required
	numInt                        // in integer digits
	numFracDot                    // '.' consumed, first fraction digit required
	numFrac                       // in fraction digits
	numExpMark                    // 'e'/'E' consumed, sign or digit required
	numExpSign                    // exponent sign consumed, digit required
	numExp                        // in exponent digits
)

// Parser is a push-style, resumable JSON parser. Input arrives in
// arbitrarily-sized chunks via Feed; no token ever has to be whole within
// one chunk. Finish flushes a trailing number token and verifies that the
// document is complete.
//
// A Parser is single-use and not safe for concurrent feeding. The first
// syntax error is terminal: every later Feed or Finish returns it again.
type Parser struct {
	h Handler

	stack []Kind // open containers, top is the event target
	tok   []byte // partial token: decoded string bytes or number text

	err    error
	offset int64 // absolute input offset across all fed chunks

	// string state
	hex       rune // accumulated \uXXXX value
	surrogate rune // pending high surrogate, 0 if none
	hexLeft   int
	inKey     bool

	// keyword state
	lit    string // "true", "false" or "null"
	litPos int

	state    parserState
	numState numberState
}

// NewParser returns a parser delivering events to h.
func NewParser(h Handler) *Parser {
	return &Parser{h: h}
}

// Feed consumes one chunk. The chunk is processed to completion before Feed
// returns; the parser keeps any partial token as internal state, so token
// boundaries are invisible to the caller.
func (p *Parser) Feed(chunk []byte) error {
	if p.err != nil {
		return p.err
	}
	for i := 0; i < len(chunk); {
		consumed, err := p.step(chunk[i])
		if err != nil {
			p.err = err
			return err
		}
		if consumed {
			i++
			p.offset++
		}
	}
	return nil
}

// Finish signals end of input. A number token that was still being
// accumulated is completed; an unterminated string, dangling keyword or
// unclosed container is a syntax error. Zero top-level values is fine:
// Finish on empty input succeeds without emitting anything.
func (p *Parser) Finish() error {
	if p.err != nil {
		return p.err
	}
	switch p.state {
	case stateNumber:
		switch p.numState {
		case numInt, numFrac, numExp:
			p.h.Number(Number(p.tok))
			p.tok = p.tok[:0]
			p.postValue()
		default:
			p.err = p.syntaxError("unexpected end of input inside number")
			return p.err
		}
	case stateString, stateStringEscape, stateStringUnicode:
		p.err = p.syntaxError("unterminated string")
		return p.err
	case stateLiteral:
		p.err = p.syntaxError("unexpected end of input inside literal")
		return p.err
	}
	if len(p.stack) != 0 {
		p.err = p.syntaxError("unexpected end of input: unclosed container")
		return p.err
	}
	return nil
}

func (p *Parser) syntaxError(msg string) error {
	return &SyntaxError{Msg: msg, Offset: p.offset}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// step processes one byte. It reports false when the byte terminated a
// number token and must be re-dispatched in the follow-up state.
func (p *Parser) step(c byte) (bool, error) {
	switch p.state {
	case stateValue:
		if isWhitespace(c) {
			return true, nil
		}
		return true, p.beginValue(c)

	case stateArrayValueOrEnd:
		if isWhitespace(c) {
			return true, nil
		}
		if c == ']' {
			p.stack = p.stack[:len(p.stack)-1]
			p.h.ArrayEnd()
			p.postValue()
			return true, nil
		}
		return true, p.beginValue(c)

	case stateArrayCommaOrEnd:
		if isWhitespace(c) {
			return true, nil
		}
		switch c {
		case ',':
			p.state = stateValue
			return true, nil
		case ']':
			p.stack = p.stack[:len(p.stack)-1]
			p.h.ArrayEnd()
			p.postValue()
			return true, nil
		}
		return true, p.syntaxError("expected ',' or ']' in array")

	case stateObjectKeyOrEnd:
		if isWhitespace(c) {
			return true, nil
		}
		switch c {
		case '}':
			p.stack = p.stack[:len(p.stack)-1]
			p.h.ObjectEnd()
			p.postValue()
			return true, nil
		case '"':
			p.beginString(true)
			return true, nil
		}
		return true, p.syntaxError("expected string key or '}' in object")

	case stateObjectKey:
		if isWhitespace(c) {
			return true, nil
		}
		if c == '"' {
			p.beginString(true)
			return true, nil
		}
		return true, p.syntaxError("expected string key in object")

	case stateObjectColon:
		if isWhitespace(c) {
			return true, nil
		}
		if c == ':' {
			p.state = stateValue
			return true, nil
		}
		return true, p.syntaxError("expected ':' after object key")

	case stateObjectCommaOrEnd:
		if isWhitespace(c) {
			return true, nil
		}
		switch c {
		case ',':
			p.state = stateObjectKey
			return true, nil
		case '}':
			p.stack = p.stack[:len(p.stack)-1]
			p.h.ObjectEnd()
			p.postValue()
			return true, nil
		}
		return true, p.syntaxError("expected ',' or '}' in object")

	case stateString:
		switch c {
		case '"':
			p.flushSurrogate()
			p.endString()
			return true, nil
		case '\\':
			p.state = stateStringEscape
			return true, nil
		}
		p.flushSurrogate()
		p.tok = append(p.tok, c)
		return true, nil

	case stateStringEscape:
		var decoded byte
		switch c {
		case '"', '\\', '/':
			decoded = c
		case 'b':
			decoded = '\b'
		case 'f':
			decoded = '\f'
		case 'n':
			decoded = '\n'
		case 'r':
			decoded = '\r'
		case 't':
			decoded = '\t'
		case 'u':
			p.hex = 0
			p.hexLeft = 4
			p.state = stateStringUnicode
			return true, nil
		default:
			return true, p.syntaxError("invalid escape character in string")
		}
		p.flushSurrogate()
		p.tok = append(p.tok, decoded)
		p.state = stateString
		return true, nil

	case stateStringUnicode:
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return true, p.syntaxError("invalid unicode escape in string")
		}
		p.hex = p.hex<<4 | d
		p.hexLeft--
		if p.hexLeft == 0 {
			p.endUnicodeEscape(p.hex)
			p.state = stateString
		}
		return true, nil

	case stateNumber:
		return p.stepNumber(c)

	case stateLiteral:
		if c != p.lit[p.litPos] {
			return true, p.syntaxError("invalid literal")
		}
		p.litPos++
		if p.litPos == len(p.lit) {
			switch p.lit {
			case "true":
				p.h.Bool(true)
			case "false":
				p.h.Bool(false)
			default:
				p.h.Null()
			}
			p.postValue()
		}
		return true, nil
	}

	return true, p.syntaxError("invalid parser state")
}

// beginValue dispatches the first byte of a value.
func (p *Parser) beginValue(c byte) error {
	switch c {
	case '{':
		p.stack = append(p.stack, KindObject)
		p.state = stateObjectKeyOrEnd
		p.h.ObjectStart()
		return nil
	case '[':
		p.stack = append(p.stack, KindArray)
		p.state = stateArrayValueOrEnd
		p.h.ArrayStart()
		return nil
	case '"':
		p.beginString(false)
		return nil
	case 't':
		p.lit = "true"
		p.litPos = 1
		p.state = stateLiteral
		return nil
	case 'f':
		p.lit = "false"
		p.litPos = 1
		p.state = stateLiteral
		return nil
	case 'n':
		p.lit = "null"
		p.litPos = 1
		p.state = stateLiteral
		return nil
	case '-':
		p.tok = append(p.tok[:0], c)
		p.numState = numSign
		p.state = stateNumber
		return nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.tok = append(p.tok[:0], c)
		p.numState = numInt
		p.state = stateNumber
		return nil
	}
	return p.syntaxError("unexpected character, expected a value")
}

func (p *Parser) beginString(key bool) {
	p.inKey = key
	p.tok = p.tok[:0]
	p.surrogate = 0
	p.state = stateString
}

func (p *Parser) endString() {
	s := string(p.tok)
	p.tok = p.tok[:0]
	if p.inKey {
		p.inKey = false
		p.h.Key(s)
		p.state = stateObjectColon
		return
	}
	p.h.String(s)
	p.postValue()
}

// flushSurrogate resolves a high surrogate that was not followed by its low
// half: it decodes to U+FFFD, matching encoding/json.
func (p *Parser) flushSurrogate() {
	if p.surrogate != 0 {
		p.tok = utf8.AppendRune(p.tok, utf8.RuneError)
		p.surrogate = 0
	}
}

// endUnicodeEscape appends the code point of a completed \uXXXX escape,
// combining UTF-16 surrogate pairs. Input is decoded to UTF-8; lone
// surrogate halves become U+FFFD.
func (p *Parser) endUnicodeEscape(r rune) {
	if p.surrogate != 0 {
		if r >= 0xDC00 && r <= 0xDFFF {
			combined := 0x10000 + (p.surrogate-0xD800)<<10 + (r - 0xDC00)
			p.tok = utf8.AppendRune(p.tok, combined)
			p.surrogate = 0
			return
		}
		p.flushSurrogate()
	}
	switch {
	case r >= 0xD800 && r <= 0xDBFF:
		p.surrogate = r
	case r >= 0xDC00 && r <= 0xDFFF:
		p.tok = utf8.AppendRune(p.tok, utf8.RuneError)
	default:
		p.tok = utf8.AppendRune(p.tok, r)
	}
}

// stepNumber advances the number sub-machine. A byte outside the number
// grammar, seen in a state where the literal is already complete, terminates
// the token; the byte is left unconsumed and re-dispatched.
func (p *Parser) stepNumber(c byte) (bool, error) {
	digit := c >= '0' && c <= '9'

	switch p.numState {
	case numSign:
		if !digit {
			return true, p.syntaxError("expected digit after '-' in number")
		}
		p.numState = numInt
	case numInt:
		switch {
		case digit:
		case c == '.':
			p.numState = numFracDot
		case c == 'e' || c == 'E':
			p.numState = numExpMark
		default:
			return p.endNumber()
		}
	case numFracDot:
		if !digit {
			return true, p.syntaxError("expected digit after '.' in number")
		}
		p.numState = numFrac
	case numFrac:
		switch {
		case digit:
		case c == 'e' || c == 'E':
			p.numState = numExpMark
		default:
			return p.endNumber()
		}
	case numExpMark:
		switch {
		case digit:
			p.numState = numExp
		case c == '+' || c == '-':
			p.numState = numExpSign
		default:
			return true, p.syntaxError("expected digit or sign in number exponent")
		}
	case numExpSign:
		if !digit {
			return true, p.syntaxError("expected digit in number exponent")
		}
		p.numState = numExp
	case numExp:
		if !digit {
			return p.endNumber()
		}
	}

	p.tok = append(p.tok, c)
	return true, nil
}

func (p *Parser) endNumber() (bool, error) {
	p.h.Number(Number(p.tok))
	p.tok = p.tok[:0]
	p.postValue()
	return false, nil
}

// postValue picks the follow-up state after a complete value. With an empty
// stack the parser is back at top level, where the invisible wrapper array
// accepts further values; a well-formed single document supplies only one.
func (p *Parser) postValue() {
	if len(p.stack) == 0 {
		p.state = stateValue
		return
	}
	if p.stack[len(p.stack)-1] == KindArray {
		p.state = stateArrayCommaOrEnd
	} else {
		p.state = stateObjectCommaOrEnd
	}
}
