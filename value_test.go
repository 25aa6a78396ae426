package jsondom_test

import (
	"errors"
	"testing"

	"jsondom"
)

// The public Kind constants index tables in both the library and caller
// code, so their numeric order is load-bearing.
func TestKindOrdering(t *testing.T) {
	kinds := []struct {
		kind jsondom.Kind
		want uint8
		name string
	}{
		{jsondom.KindNull, 0, "null"},
		{jsondom.KindBool, 1, "boolean"},
		{jsondom.KindNumber, 2, "number"},
		{jsondom.KindString, 3, "string"},
		{jsondom.KindObject, 4, "object"},
		{jsondom.KindArray, 5, "array"},
	}
	for _, k := range kinds {
		if uint8(k.kind) != k.want {
			t.Errorf("kind %s = %d, want %d", k.name, k.kind, k.want)
		}
		if k.kind.String() != k.name {
			t.Errorf("kind %d String() = %q, want %q", k.kind, k.kind.String(), k.name)
		}
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v jsondom.Value
	if v.Kind() != jsondom.KindNull || !v.IsNull() {
		t.Fatalf("zero Value kind = %v, want null", v.Kind())
	}
}

func TestNewValueDefaults(t *testing.T) {
	if v := jsondom.NewValue(jsondom.KindBool); !v.IsBool() {
		t.Errorf("NewValue(bool) kind = %v", v.Kind())
	} else if b, _ := v.AsBool(); b {
		t.Errorf("default boolean = true, want false")
	}

	v := jsondom.NewValue(jsondom.KindNumber)
	n, err := v.AsNumber()
	if err != nil {
		t.Fatal(err)
	}
	if n != "0" {
		t.Errorf("default number literal = %q, want \"0\"", n)
	}

	v = jsondom.NewValue(jsondom.KindString)
	if s, _ := v.AsString(); s != "" {
		t.Errorf("default string = %q, want empty", s)
	}

	v = jsondom.NewValue(jsondom.KindObject)
	o, err := v.AsObject()
	if err != nil {
		t.Fatal(err)
	}
	if o.Len() != 0 {
		t.Errorf("default object len = %d, want 0", o.Len())
	}

	v = jsondom.NewValue(jsondom.KindArray)
	if a, err := v.AsArray(); err != nil || len(*a) != 0 {
		t.Errorf("default array: err=%v", err)
	}
}

// Every accessor of a non-matching kind must fail with *WrongTypeError
// carrying both sides; the matching accessor must never fail.
func TestAccessorTotality(t *testing.T) {
	values := map[jsondom.Kind]jsondom.Value{
		jsondom.KindNull:   jsondom.NewNull(),
		jsondom.KindBool:   jsondom.NewBool(true),
		jsondom.KindNumber: jsondom.NewNumber("42"),
		jsondom.KindString: jsondom.NewString("hi"),
		jsondom.KindObject: jsondom.NewObject(),
		jsondom.KindArray:  jsondom.NewArray(),
	}

	accessors := map[jsondom.Kind]func(*jsondom.Value) error{
		jsondom.KindBool: func(v *jsondom.Value) error {
			_, err := v.AsBool()
			return err
		},
		jsondom.KindNumber: func(v *jsondom.Value) error {
			_, err := v.AsNumber()
			return err
		},
		jsondom.KindString: func(v *jsondom.Value) error {
			_, err := v.AsString()
			return err
		},
		jsondom.KindObject: func(v *jsondom.Value) error {
			_, err := v.AsObject()
			return err
		},
		jsondom.KindArray: func(v *jsondom.Value) error {
			_, err := v.AsArray()
			return err
		},
	}

	for have, value := range values {
		v := value
		for want, access := range accessors {
			err := access(&v)
			if have == want {
				if err != nil {
					t.Errorf("%v accessor on %v value failed: %v", want, have, err)
				}
				continue
			}
			var wte *jsondom.WrongTypeError
			if !errors.As(err, &wte) {
				t.Errorf("%v accessor on %v value: error = %v, want *WrongTypeError", want, have, err)
				continue
			}
			if wte.Requested != want || wte.Actual != have {
				t.Errorf("WrongTypeError = {%v %v}, want {%v %v}", wte.Requested, wte.Actual, want, have)
			}
		}
	}
}

func TestObjectSortedAndUnique(t *testing.T) {
	v := jsondom.NewObject()
	o, err := v.AsObject()
	if err != nil {
		t.Fatal(err)
	}

	o.Set("zebra", jsondom.NewNumber("1"))
	o.Set("apple", jsondom.NewNumber("2"))
	o.Set("mango", jsondom.NewNumber("3"))
	o.Set("apple", jsondom.NewNumber("4")) // replaces

	if o.Len() != 3 {
		t.Fatalf("Len = %d, want 3", o.Len())
	}
	want := []string{"apple", "mango", "zebra"}
	keys := o.Keys()
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}

	apple, ok := o.Get("apple")
	if !ok {
		t.Fatal("apple missing")
	}
	if n, _ := apple.AsNumber(); n != "4" {
		t.Errorf("apple = %v, want 4 (last write wins)", n)
	}

	if !o.Delete("mango") || o.Delete("mango") {
		t.Error("Delete mango: want true then false")
	}
	if _, ok := o.Get("mango"); ok {
		t.Error("mango still present after Delete")
	}
}

func TestSetters(t *testing.T) {
	var v jsondom.Value

	v.SetBool(true)
	if b, err := v.AsBool(); err != nil || !b {
		t.Errorf("SetBool: %v %v", b, err)
	}
	v.SetNumber("3.14")
	if n, err := v.AsNumber(); err != nil || n != "3.14" {
		t.Errorf("SetNumber: %v %v", n, err)
	}
	v.SetString("s")
	if s, err := v.AsString(); err != nil || s != "s" {
		t.Errorf("SetString: %v %v", s, err)
	}
	v.SetNull()
	if !v.IsNull() {
		t.Error("SetNull did not reset the value")
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := jsondom.NewObject()
	o, _ := root.AsObject()
	o.Set("list", jsondom.NewArray(jsondom.NewString("a"), jsondom.NewString("b")))

	clone := root.Clone()
	if !clone.Equal(&root) {
		t.Fatal("clone not equal to original")
	}

	co, _ := clone.AsObject()
	list, _ := co.Get("list")
	arr, _ := list.AsArray()
	(*arr)[0].SetString("mutated")

	if clone.Equal(&root) {
		t.Fatal("mutating the clone changed the original")
	}
	ol, _ := o.Get("list")
	oarr, _ := ol.AsArray()
	if s, _ := (*oarr)[0].AsString(); s != "a" {
		t.Fatalf("original element = %q, want \"a\"", s)
	}
}

func TestEqualNumbersByLiteral(t *testing.T) {
	a := jsondom.NewNumber("1")
	b := jsondom.NewNumber("1.0")
	if a.Equal(&b) {
		t.Error("\"1\" and \"1.0\" compare equal; literals must not be normalized")
	}
	c := jsondom.NewNumber("1")
	if !a.Equal(&c) {
		t.Error("identical literals compare unequal")
	}
}

func TestWrongTypeErrorMessage(t *testing.T) {
	v := jsondom.NewString("x")
	_, err := v.AsBool()
	want := "jsondom: could not access boolean value, stored value is of another type (string)"
	if err == nil || err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}
