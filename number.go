package jsondom

import "strconv"

// Number holds the verbatim text of a JSON number literal. The text is never
// re-normalized, so serializing a parsed document reproduces numbers exactly
// as they appeared in the input ("3.1400" stays "3.1400", large integers keep
// every digit). Conversion to a binary numeric type happens only on demand.
//
// Numbers produced by the parser always match the JSON number grammar. A
// Number constructed directly from arbitrary text is not grammar-checked.
type Number string

// String returns the verbatim literal text.
// This method satisfies the fmt.Stringer interface.
func (n Number) String() string {
	return string(n)
}

// Int64 converts the literal to an int64.
// Uses base 10 for parsing. Fails with *NumberFormatError if the literal has
// a fraction or exponent, or does not fit.
func (n Number) Int64() (int64, error) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, &NumberFormatError{Literal: string(n), Target: "int64", Err: err}
	}
	return i, nil
}

// Uint64 converts the literal to a uint64.
// Fails with *NumberFormatError for negative, fractional, or out-of-range
// literals.
func (n Number) Uint64() (uint64, error) {
	u, err := strconv.ParseUint(string(n), 10, 64)
	if err != nil {
		return 0, &NumberFormatError{Literal: string(n), Target: "uint64", Err: err}
	}
	return u, nil
}

// Float64 converts the literal to a float64.
// Returns the 64-bit floating point representation. Fails with
// *NumberFormatError if the literal overflows the float64 range.
func (n Number) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, &NumberFormatError{Literal: string(n), Target: "float64", Err: err}
	}
	return f, nil
}

// MustInt64 returns the int64 value or panics if conversion fails.
// Useful for situations where you know the conversion will succeed.
func (n Number) MustInt64() int64 {
	i, err := n.Int64()
	if err != nil {
		panic(err)
	}
	return i
}

// MustFloat64 returns the float64 value or panics if conversion fails.
// Useful for situations where you know the conversion will succeed.
func (n Number) MustFloat64() float64 {
	f, err := n.Float64()
	if err != nil {
		panic(err)
	}
	return f
}

// IsInt reports whether the literal represents an integer that fits in int64.
func (n Number) IsInt() bool {
	_, err := strconv.ParseInt(string(n), 10, 64)
	return err == nil
}
