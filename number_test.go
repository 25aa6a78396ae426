package jsondom_test

import (
	"errors"
	"testing"

	"jsondom"
)

func TestNumberInt64(t *testing.T) {
	tests := []struct {
		literal jsondom.Number
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"-1", -1, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"-9223372036854775808", -9223372036854775808, false},
		{"9223372036854775808", 0, true}, // one past MaxInt64
		{"1.5", 0, true},
		{"1e3", 0, true}, // exponent form is not an int literal
		{"3.1400", 0, true},
	}
	for _, tt := range tests {
		got, err := tt.literal.Int64()
		if tt.wantErr {
			var nfe *jsondom.NumberFormatError
			if !errors.As(err, &nfe) {
				t.Errorf("Int64(%q) error = %v, want *NumberFormatError", tt.literal, err)
			} else if nfe.Literal != string(tt.literal) || nfe.Target != "int64" {
				t.Errorf("Int64(%q) error fields = %q/%q", tt.literal, nfe.Literal, nfe.Target)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Int64(%q) = %d, %v; want %d", tt.literal, got, err, tt.want)
		}
	}
}

func TestNumberUint64(t *testing.T) {
	if u, err := jsondom.Number("18446744073709551615").Uint64(); err != nil || u != 18446744073709551615 {
		t.Errorf("Uint64 max = %d, %v", u, err)
	}
	if _, err := jsondom.Number("-1").Uint64(); err == nil {
		t.Error("Uint64(-1) succeeded")
	}
}

func TestNumberFloat64(t *testing.T) {
	tests := []struct {
		literal jsondom.Number
		want    float64
		wantErr bool
	}{
		{"3.1400", 3.14, false},
		{"-1.5e+10", -1.5e10, false},
		{"0", 0, false},
		{"1e999", 0, true}, // overflows float64
	}
	for _, tt := range tests {
		got, err := tt.literal.Float64()
		if tt.wantErr {
			var nfe *jsondom.NumberFormatError
			if !errors.As(err, &nfe) {
				t.Errorf("Float64(%q) error = %v, want *NumberFormatError", tt.literal, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Float64(%q) = %g, %v; want %g", tt.literal, got, err, tt.want)
		}
	}
}

// The stored text is the value; conversion never rewrites it.
func TestNumberTextPreserved(t *testing.T) {
	n := jsondom.Number("3.1400")
	if _, err := n.Float64(); err != nil {
		t.Fatal(err)
	}
	if n.String() != "3.1400" {
		t.Errorf("literal after conversion = %q, want \"3.1400\"", n)
	}
}

func TestNumberIsInt(t *testing.T) {
	if !jsondom.Number("42").IsInt() {
		t.Error("IsInt(42) = false")
	}
	if jsondom.Number("42.5").IsInt() {
		t.Error("IsInt(42.5) = true")
	}
}

func TestNumberMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustInt64 on \"1.5\" did not panic")
		}
	}()
	jsondom.Number("1.5").MustInt64()
}
