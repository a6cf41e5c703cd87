// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package decimal implements an exact decimal number model for values
// written as JSON number literals.
//
// A Decimal holds a sign, a sequence of significant decimal digits, and a
// decimal exponent. The value represented is
//
//	(-1)^negative × 0.d₁d₂…dₙ × 10^exponent
//
// Decimals are kept in a canonical form: the digit sequence has no leading
// or trailing zeroes, and the value zero has no digits and exponent zero.
// Parsing a literal never rounds, so any literal of finite length is
// represented exactly.
package decimal

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v2"
	"github.com/creachadair/jcomb"
)

// A Decimal is an exact decimal value. The zero value represents 0.
// A Decimal is immutable once constructed.
type Decimal struct {
	negative bool
	digits   []byte // values 0..9, most significant first
	exponent int
}

// New constructs a Decimal from a sign, a sequence of digit values in the
// range 0..9 (most significant first), and an exponent, so that the result
// denotes (-1)^negative × 0.digits × 10^exponent. The result is
// canonicalized; the input slice is not retained.
func New(negative bool, digits []byte, exponent int) (Decimal, error) {
	for i, d := range digits {
		if d > 9 {
			return Decimal{}, fmt.Errorf("invalid digit %d at index %d", d, i)
		}
	}
	d := normalize(negative, append([]byte(nil), digits...), exponent)
	if !d.inRange() {
		return Decimal{}, fmt.Errorf("exponent %d out of range", exponent)
	}
	return d, nil
}

// inRange reports whether the exponent of d, both as a fraction and as a
// scale on an integer coefficient, fits in an int32.
func (d Decimal) inRange() bool {
	return d.exponent <= math.MaxInt32 && d.exponent-len(d.digits) >= math.MinInt32
}

// normalize strips leading and trailing zero digits from digits, adjusting
// the exponent for the leading zeroes removed. It takes ownership of digits.
func normalize(negative bool, digits []byte, exponent int) Decimal {
	lead := 0
	for lead < len(digits) && digits[lead] == 0 {
		lead++
	}
	digits = digits[lead:]
	exponent -= lead

	end := len(digits)
	for end > 0 && digits[end-1] == 0 {
		end--
	}
	digits = digits[:end]

	if len(digits) == 0 {
		return Decimal{negative: negative}
	}
	return Decimal{negative: negative, digits: digits, exponent: exponent}
}

// Negative reports whether d carries a negative sign. A zero value may be
// negative if it was written as such.
func (d Decimal) Negative() bool { return d.negative }

// Digits returns a copy of the significant digits of d, most significant
// first. The result is empty if d is zero.
func (d Decimal) Digits() []byte { return append([]byte(nil), d.digits...) }

// Exponent returns the decimal exponent of d.
func (d Decimal) Exponent() int { return d.exponent }

// IsZero reports whether d represents zero.
func (d Decimal) IsZero() bool { return len(d.digits) == 0 }

// IsIntegral reports whether d is an integer, meaning all its significant
// digits fall at or above the decimal point.
func (d Decimal) IsIntegral() bool { return len(d.digits) <= d.exponent || d.IsZero() }

// Equal reports whether d and o have the same canonical representation.
func (d Decimal) Equal(o Decimal) bool {
	return d.negative == o.negative && d.exponent == o.exponent && string(d.digits) == string(o.digits)
}

// String renders d in canonical form.
//
// An integral value is written as plain decimal digits with no point or
// exponent, however large. Any other value is written as "0." followed by
// its significant digits, and an exponent suffix "e<n>" if the exponent is
// not zero. A negative value has a leading "-".
func (d Decimal) String() string {
	var sb strings.Builder
	if d.negative {
		sb.WriteByte('-')
	}
	if d.IsZero() {
		sb.WriteByte('0')
		return sb.String()
	}
	if d.IsIntegral() {
		writeDigits(&sb, d.digits)
		sb.WriteString(strings.Repeat("0", d.exponent-len(d.digits)))
		return sb.String()
	}
	sb.WriteString("0.")
	writeDigits(&sb, d.digits)
	if d.exponent != 0 {
		fmt.Fprintf(&sb, "e%d", d.exponent)
	}
	return sb.String()
}

func writeDigits(sb *strings.Builder, digits []byte) {
	for _, v := range digits {
		sb.WriteByte('0' + v)
	}
}

// Parse parses a decimal literal from the front of text, and returns the
// value and the unconsumed remainder of text. In case of error, the error
// has concrete type *jcomb.ParseError.
func Parse(text string) (Decimal, string, error) { return jcomb.Run(Parser, text) }

// MustParse parses text as a decimal literal, and panics if text is not
// entirely a valid literal. It is intended for use in variable
// initialization.
func MustParse(text string) Decimal {
	d, rest, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("decimal: invalid literal %q: %v", text, err))
	} else if rest != "" {
		panic(fmt.Sprintf("decimal: extra input %q after literal", rest))
	}
	return d
}

// Apd converts d to an arbitrary-precision apd.Decimal with the same value.
func (d Decimal) Apd() *apd.Decimal {
	var z apd.Decimal
	z.Negative = d.negative
	if d.IsZero() {
		return &z
	}
	var sb strings.Builder
	writeDigits(&sb, d.digits)
	z.Coeff.SetString(sb.String(), 10)

	// The exponent of an apd.Decimal scales an integer coefficient, whereas
	// ours scales a fraction 0.digits.
	z.Exponent = int32(d.exponent - len(d.digits))
	return &z
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() (float64, error) { return d.Apd().Float64() }

// Int64 returns the value of d as an int64. It reports an error if d is not
// integral or does not fit in an int64.
func (d Decimal) Int64() (int64, error) {
	if !d.IsIntegral() {
		return 0, fmt.Errorf("value %v is not an integer", d)
	}
	return d.Apd().Int64()
}

// Cmp compares the numeric values of d and o, and returns -1 if d < o, 0 if
// they are equal, and 1 if d > o. Zeroes compare equal regardless of sign.
func (d Decimal) Cmp(o Decimal) int { return d.Apd().Cmp(o.Apd()) }
