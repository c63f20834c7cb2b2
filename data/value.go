package data

import "strconv"

// Kind discriminates the two value types a data token can decode to.
type Kind int

const (
	// Text is a token kept verbatim as a string.
	Text Kind = iota

	// Number is a token coerced to a float64.
	Number
)

// Value is one cell of the data matrix: either a number or a piece of
// text. The raw token is retained either way so output round-trips the
// document bytes untouched.
type Value struct {
	kind Kind
	num  float64
	raw  string
}

// Num constructs a numeric value from a raw token.
func Num(f float64, raw string) Value {
	return Value{kind: Number, num: f, raw: raw}
}

// Txt constructs a text value.
func Txt(raw string) Value {
	return Value{raw: raw}
}

// Kind returns the value's type discriminator.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumber reports whether the value was coerced to a number.
func (v Value) IsNumber() bool {
	return v.kind == Number
}

// Float returns the numeric value, or 0 for text values.
func (v Value) Float() float64 {
	return v.num
}

// String returns the raw token text.
func (v Value) String() string {
	return v.raw
}

// EqualNumber reports whether the value is numerically equal to f.
// Text values never equal a number.
func (v Value) EqualNumber(f float64) bool {
	return v.kind == Number && v.num == f
}

// coerce turns one token into a Value. A token that parses as a float
// becomes a number; under the legacy policy a token whose numeric value is
// zero stays text, reproducing the historical truthiness-based conversion.
func coerce(token string, legacyZero bool) Value {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Txt(token)
	}
	if legacyZero && f == 0 {
		return Txt(token)
	}
	return Num(f, token)
}
