package jsondom

import (
	goccy "github.com/goccy/go-json"
)

// FromGo builds a Value tree from an arbitrary Go value (struct, map,
// slice, scalar). Struct encoding, json tags included, is delegated to
// goccy/go-json; the resulting text is parsed into the DOM, so numbers
// arrive as literals and object keys come out sorted.
func FromGo(src any) (Value, error) {
	data, err := goccy.Marshal(src)
	if err != nil {
		return Value{}, err
	}
	return ReadBytes(data)
}

// ToGo decodes a Value tree into dst the way json.Unmarshal would, using
// goccy/go-json for the struct mapping. Unlike Write, the root may be of
// any kind.
func ToGo(v *Value, dst any) error {
	buf := getBufferSize(1024)
	defer putBuffer(buf)

	appendValue(buf, v)
	return goccy.Unmarshal(buf.Bytes(), dst)
}
