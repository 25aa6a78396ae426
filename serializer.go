package jsondom

var (
	jsonTrue  = []byte("true")
	jsonFalse = []byte("false")
	jsonNull  = []byte("null")
)

// escapeMap lists the only bytes the serializer escapes. Everything else,
// including control bytes and multi-byte UTF-8 sequences, passes through
// untouched.
var escapeMap = [256][]byte{
	'"':  []byte(`\"`),
	'\\': []byte(`\\`),
	'/':  []byte(`\/`),
	'\b': []byte(`\b`),
	'\f': []byte(`\f`),
	'\n': []byte(`\n`),
	'\r': []byte(`\r`),
	'\t': []byte(`\t`),
}

// appendValue renders v in the single canonical form: no indentation,
// object members in ascending key order, number literals verbatim.
// Recursion depth is bounded only by the tree itself.
func appendValue(buf *Buffer, v *Value) {
	switch v.kind {
	case KindNull:
		buf.Write(jsonNull)
	case KindBool:
		if v.b {
			buf.Write(jsonTrue)
		} else {
			buf.Write(jsonFalse)
		}
	case KindNumber:
		buf.WriteString(string(v.n))
	case KindString:
		appendString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i := range v.a {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendValue(buf, &v.a[i])
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i := range v.o.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendString(buf, v.o.members[i].Key)
			buf.WriteByte(':')
			appendValue(buf, &v.o.members[i].Value)
		}
		buf.WriteByte('}')
	}
}

func appendString(buf *Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		if esc := escapeMap[s[i]]; esc != nil {
			if start < i {
				buf.WriteString(s[start:i])
			}
			buf.Write(esc)
			start = i + 1
		}
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
	buf.WriteByte('"')
}
