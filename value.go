package jsondom

import "sort"

// Kind identifies which of the six JSON value types a Value holds.
// JSON specifies only 6 value types; this enumeration lists those 6.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a mapping from string keys to Values. Keys are unique and kept
// in ascending order, so two objects holding the same pairs are identical
// regardless of the order the pairs were added in. The original insertion
// order is not recoverable.
type Object struct {
	members []Member
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// search returns the index where key is or would be inserted.
func (o *Object) search(key string) int {
	return sort.Search(len(o.members), func(i int) bool {
		return o.members[i].Key >= key
	})
}

// Get returns a pointer to the value stored under key. The pointer stays
// valid until the next Set or Delete on the object.
func (o *Object) Get(key string) (*Value, bool) {
	i := o.search(key)
	if i < len(o.members) && o.members[i].Key == key {
		return &o.members[i].Value, true
	}
	return nil, false
}

// Set stores v under key, replacing any existing value for that key.
func (o *Object) Set(key string, v Value) {
	i := o.search(key)
	if i < len(o.members) && o.members[i].Key == key {
		o.members[i].Value = v
		return
	}
	o.members = append(o.members, Member{})
	copy(o.members[i+1:], o.members[i:])
	o.members[i] = Member{Key: key, Value: v}
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	i := o.search(key)
	if i >= len(o.members) || o.members[i].Key != key {
		return false
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	return true
}

// Keys returns all keys in ascending order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i := range o.members {
		keys[i] = o.members[i].Key
	}
	return keys
}

// Members returns the members in ascending key order. The slice is the
// object's backing storage; treat it as read-only.
func (o *Object) Members() []Member {
	return o.members
}

// Value is a JSON value together with its Kind. The zero Value is null, so
// there is no uninitialized state distinguishable from null. A Value owns
// its contents exclusively; Clone produces deep copies and nothing in a tree
// is aliased.
type Value struct {
	o    Object
	a    []Value
	s    string
	n    Number
	b    bool
	kind Kind
}

// NewValue constructs a default-initialized value of the given kind:
//
//	kind:    | value:
//	-------------------
//	null     | null
//	boolean  | false
//	number   | 0
//	string   | ""
//	object   | {}
//	array    | []
func NewValue(kind Kind) Value {
	v := Value{kind: kind}
	if kind == KindNumber {
		v.n = "0"
	}
	return v
}

// NewNull constructs a null value. Equivalent to the zero Value.
func NewNull() Value {
	return Value{}
}

// NewBool constructs a boolean-initialized value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewNumber constructs a number-initialized value.
func NewNumber(n Number) Value {
	return Value{kind: KindNumber, n: n}
}

// NewString constructs a string-initialized value.
func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

// NewObject constructs an empty object value.
func NewObject() Value {
	return Value{kind: KindObject}
}

// NewArray constructs an array value holding the given elements.
func NewArray(elems ...Value) Value {
	return Value{kind: KindArray, a: elems}
}

// Kind returns the active variant tag.
func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) IsNull() bool   { return v.kind == KindNull }
func (v *Value) IsBool() bool   { return v.kind == KindBool }
func (v *Value) IsNumber() bool { return v.kind == KindNumber }
func (v *Value) IsString() bool { return v.kind == KindString }
func (v *Value) IsObject() bool { return v.kind == KindObject }
func (v *Value) IsArray() bool  { return v.kind == KindArray }

func (v *Value) wrongType(requested Kind) error {
	return &WrongTypeError{Requested: requested, Actual: v.kind}
}

// AsBool returns the boolean payload.
// Fails with *WrongTypeError if the stored value is not a boolean.
func (v *Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.wrongType(KindBool)
	}
	return v.b, nil
}

// AsNumber returns the number payload.
// Fails with *WrongTypeError if the stored value is not a number.
func (v *Value) AsNumber() (Number, error) {
	if v.kind != KindNumber {
		return "", v.wrongType(KindNumber)
	}
	return v.n, nil
}

// AsString returns the string payload.
// Fails with *WrongTypeError if the stored value is not a string.
func (v *Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.wrongType(KindString)
	}
	return v.s, nil
}

// AsObject returns the object payload for reading and mutation. The pointer
// refers to the value's own storage.
// Fails with *WrongTypeError if the stored value is not an object.
func (v *Value) AsObject() (*Object, error) {
	if v.kind != KindObject {
		return nil, v.wrongType(KindObject)
	}
	return &v.o, nil
}

// AsArray returns the array payload for reading and mutation. The pointer
// refers to the value's own storage.
// Fails with *WrongTypeError if the stored value is not an array.
func (v *Value) AsArray() (*[]Value, error) {
	if v.kind != KindArray {
		return nil, v.wrongType(KindArray)
	}
	return &v.a, nil
}

// SetNull resets the value to null, releasing any payload.
func (v *Value) SetNull() {
	*v = Value{}
}

// SetBool makes the value a boolean holding b.
func (v *Value) SetBool(b bool) {
	*v = Value{kind: KindBool, b: b}
}

// SetNumber makes the value a number holding n.
func (v *Value) SetNumber(n Number) {
	*v = Value{kind: KindNumber, n: n}
}

// SetString makes the value a string holding s.
func (v *Value) SetString(s string) {
	*v = Value{kind: KindString, s: s}
}

// Clone returns a deep copy. The copy shares no mutable storage with v.
func (v *Value) Clone() Value {
	out := *v
	switch v.kind {
	case KindObject:
		out.o.members = make([]Member, len(v.o.members))
		for i := range v.o.members {
			out.o.members[i].Key = v.o.members[i].Key
			out.o.members[i].Value = v.o.members[i].Value.Clone()
		}
	case KindArray:
		out.a = make([]Value, len(v.a))
		for i := range v.a {
			out.a[i] = v.a[i].Clone()
		}
	}
	return out
}

// Equal reports deep value equality. Numbers compare by their literal text,
// never by converted binary value, so "1.0" and "1" are not equal.
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.a) != len(other.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(&other.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.o.members) != len(other.o.members) {
			return false
		}
		for i := range v.o.members {
			if v.o.members[i].Key != other.o.members[i].Key {
				return false
			}
			if !v.o.members[i].Value.Equal(&other.o.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
