// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package decimal

import (
	"strconv"

	"github.com/creachadair/jcomb"
)

/*
Grammar:

  number   = ["-"] integer [fraction] [exponent]
  integer  = "0" | NZDIGIT {DIGIT}
  fraction = "." DIGIT {DIGIT}
  exponent = ("e" | "E") ["+" | "-"] DIGIT {DIGIT}

A "." that is not followed by a digit is not part of the number. An
exponent marker must be followed by digits.
*/

// Parser is a jcomb.Parser that matches a decimal literal.
var Parser jcomb.Parser[Decimal] = parseDecimal

var (
	minus = jcomb.Optional(jcomb.Byte('-'))

	integer = jcomb.Alternative(
		jcomb.Recognize(jcomb.Satisfy("digit", isZero)),
		jcomb.Recognize(jcomb.Preceded(jcomb.Satisfy("digit", isNonZero), jcomb.TakeWhile(isDigit))),
	)

	fraction = jcomb.Optional(jcomb.Preceded(jcomb.Byte('.'), jcomb.TakeWhile1("digit", isDigit)))

	exponent = jcomb.Preceded(
		jcomb.Satisfy("exponent", isExpMarker),
		jcomb.Recognize(jcomb.Preceded(
			jcomb.Optional(jcomb.Satisfy("sign or digit", isSign)),
			jcomb.TakeWhile1("digit", isDigit),
		)),
	)
)

func parseDecimal(c jcomb.Cursor) jcomb.Outcome[Decimal] {
	so := minus(c)
	if !so.OK() {
		return jcomb.Propagate[Decimal](so)
	}
	io := integer(so.Cursor)
	if !io.OK() {
		return jcomb.Propagate[Decimal](io)
	}

	// The decimal point sits immediately after the last integer digit.
	digits := make([]byte, 0, len(io.Value))
	for i := range len(io.Value) {
		digits = append(digits, io.Value[i]-'0')
	}
	exp := len(digits)

	fo := fraction(io.Cursor)
	if !fo.OK() {
		return jcomb.Propagate[Decimal](fo)
	} else if fo.Value.Present {
		// Trailing zeroes of the fraction are not significant.
		frac := fo.Value.Value
		end := len(frac)
		for end > 0 && frac[end-1] == '0' {
			end--
		}
		for i := range end {
			digits = append(digits, frac[i]-'0')
		}
	}

	next, errAt := fo.Cursor, c
	if b, ok := next.Peek(); ok && isExpMarker(b) {
		eo := exponent(next)
		if !eo.OK() {
			return jcomb.Propagate[Decimal](eo)
		}
		v, err := strconv.Atoi(eo.Value)
		if err != nil || v < -maxExponent || v > maxExponent {
			return jcomb.Fail[Decimal](next.Skip(1), "exponent in range")
		}
		exp += v
		next, errAt = eo.Cursor, next.Skip(1)
	}

	d := normalize(so.Value.Present, digits, exp)
	if !d.inRange() {
		return jcomb.Fail[Decimal](errAt, "exponent in range")
	}
	return jcomb.Match(next, d)
}

// maxExponent bounds the magnitude of a written exponent so that adding it
// to the length of the integer part cannot overflow.
const maxExponent = 1 << 40

func isDigit(b byte) bool     { return '0' <= b && b <= '9' }
func isZero(b byte) bool      { return b == '0' }
func isNonZero(b byte) bool   { return '1' <= b && b <= '9' }
func isSign(b byte) bool      { return b == '+' || b == '-' }
func isExpMarker(b byte) bool { return b == 'e' || b == 'E' }
