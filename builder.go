package jsondom

// treeBuilder turns the parser's flat event stream into a nested Value.
//
// The root of a document may be any of the six kinds, so the builder wraps
// the top level in an invisible array: every top-level value lands as an
// element of doc, and Read extracts the first element (or null when none
// arrived).
//
// Open containers live as standalone heap nodes until they close and only
// then get attached to their parent, so no held pointer ever depends on a
// sibling container not reallocating. keys runs parallel to stack: keys[i]
// is the object key the container at stack[i] will be attached under.
type treeBuilder struct {
	doc   Value    // invisible wrapper array
	stack []*Value // open containers; stack[0] is &doc
	keys  []string
	key   string // pending key, valid between a Key event and the next value
}

func newTreeBuilder() *treeBuilder {
	b := &treeBuilder{doc: NewValue(KindArray)}
	b.stack = append(b.stack, &b.doc)
	b.keys = append(b.keys, "")
	return b
}

// root returns the document value: the first top-level value parsed, or
// null for empty input.
func (b *treeBuilder) root() Value {
	if len(b.doc.a) == 0 {
		return NewNull()
	}
	return b.doc.a[0]
}

// attach places a finished value into the innermost open container. Inside
// an object the key names the slot; duplicate keys resolve to the last
// occurrence.
func (b *treeBuilder) attach(v Value, key string) {
	top := b.stack[len(b.stack)-1]
	if top.kind == KindArray {
		top.a = append(top.a, v)
		return
	}
	top.o.Set(key, v)
}

// takeKey consumes the pending key buffer.
func (b *treeBuilder) takeKey() string {
	k := b.key
	b.key = ""
	return k
}

func (b *treeBuilder) push(v Value) {
	b.stack = append(b.stack, &v)
	b.keys = append(b.keys, b.takeKey())
}

func (b *treeBuilder) pop() {
	n := len(b.stack) - 1
	node, key := b.stack[n], b.keys[n]
	b.stack = b.stack[:n]
	b.keys = b.keys[:n]
	b.attach(*node, key)
}

func (b *treeBuilder) ObjectStart() {
	b.push(NewObject())
}

func (b *treeBuilder) ObjectEnd() {
	b.pop()
}

func (b *treeBuilder) ArrayStart() {
	b.push(NewValue(KindArray))
}

func (b *treeBuilder) ArrayEnd() {
	b.pop()
}

func (b *treeBuilder) Key(key string) {
	b.key = key
}

func (b *treeBuilder) String(s string) {
	b.attach(NewString(s), b.takeKey())
}

func (b *treeBuilder) Number(n Number) {
	b.attach(NewNumber(n), b.takeKey())
}

func (b *treeBuilder) Bool(v bool) {
	b.attach(NewBool(v), b.takeKey())
}

func (b *treeBuilder) Null() {
	b.attach(NewNull(), b.takeKey())
}
