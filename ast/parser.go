// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/decimal"
	"github.com/creachadair/jcomb/internal/escape"
)

/*
Grammar:

  value   = ws (string | number | object | array | literal) ws
  string  = '"' {char | escape} '"'
  char    = printable ASCII other than '"' and '\'
  escape  = '\' ('n' | 'r' | 't' | '\' | '"')
  object  = "{" [member {"," member}] ws "}"
  member  = ws string ws ":" value
  array   = "[" [value {"," value}] ws "]"
  literal = ALPHA {ALNUM}   ; one of true, false, null
  ws      = {" " | LF | CR | TAB}

Once a string has opened, or an identifier has been found in value position,
any error in the rest of that construct is a failure of the whole parse.
*/

// Parse parses a single JSON value from the front of text, and returns the
// value and the unconsumed remainder of text. Whitespace following the value
// is consumed. In case of error, the error has concrete type
// *jcomb.ParseError.
//
// Parse does not require the input to be fully consumed; use ParseSingle for
// that.
func Parse(text string) (Value, string, error) { return jcomb.Run(ParseValue, text) }

// ParseSingle parses text as a single JSON value, and reports an error if
// any input remains after the value.
func ParseSingle(text string) (Value, error) {
	o := ParseValue(jcomb.NewCursor(text))
	if o.OK() && !o.Cursor.AtEnd() {
		o = jcomb.Miss[Value](o.Cursor, "end of input")
	}
	if err := o.Err(); err != nil {
		return nil, err
	}
	return o.Value, nil
}

// ParseValue is a jcomb.Parser that matches a JSON value, along with any
// whitespace that precedes or follows it.
func ParseValue(c jcomb.Cursor) jcomb.Outcome[Value] { return value(c) }

// value is assigned by init, since the grammar is recursive.
var value jcomb.Parser[Value]

func init() {
	value = jcomb.Delimited(whitespace, jcomb.Alternative(
		jcomb.Map(quoted, func(s string) Value { return String(s) }),
		jcomb.Map(decimal.Parser, func(d decimal.Decimal) Value { return Number{d} }),
		jcomb.Map(object, func(o Object) Value { return o }),
		jcomb.Map(array, func(a Array) Value { return a }),
		literal,
	), whitespace)
}

var whitespace = jcomb.TakeWhile(isSpace)

// closing matches the byte b after optional whitespace.
func closing(b byte) jcomb.Parser[byte] { return jcomb.Preceded(whitespace, jcomb.Byte(b)) }

var (
	escaped = jcomb.Map(jcomb.Satisfy("escape character", isEscape), unescape)

	quoted = jcomb.Preceded(jcomb.Byte('"'), jcomb.Commit(jcomb.Terminated(
		jcomb.Map(jcomb.Repeat(jcomb.Alternative(
			jcomb.Satisfy("printable character", escape.IsPrintable),
			jcomb.Preceded(jcomb.Byte('\\'), jcomb.Commit(escaped)),
		)), func(bs []byte) string { return string(bs) }),
		jcomb.Byte('"'),
	)))

	array = jcomb.Delimited(
		jcomb.Byte('['),
		jcomb.Map(jcomb.Separated(jcomb.Byte(','), jcomb.Parser[Value](ParseValue)), func(vs []Value) Array {
			return Array(vs)
		}),
		closing(']'),
	)

	object = jcomb.Delimited(
		jcomb.Byte('{'),
		jcomb.Map(jcomb.Separated(jcomb.Byte(','), objectMember), func(ms []member) Object {
			obj := make(Object, len(ms))
			for _, m := range ms {
				obj[m.key] = m.value // the last duplicate wins
			}
			return obj
		}),
		closing('}'),
	)

	memberKey = jcomb.Preceded(whitespace, jcomb.Terminated(quoted, closing(':')))
)

type member struct {
	key   string
	value Value
}

func objectMember(c jcomb.Cursor) jcomb.Outcome[member] {
	ko := memberKey(c)
	if !ko.OK() {
		return jcomb.Propagate[member](ko)
	}
	vo := ParseValue(ko.Cursor)
	if !vo.OK() {
		return jcomb.Propagate[member](vo)
	}
	return jcomb.Match(vo.Cursor, member{key: ko.Value, value: vo.Value})
}

var identifier = jcomb.Recognize(jcomb.Preceded(
	jcomb.Satisfy("identifier", isAlpha),
	jcomb.TakeWhile(isAlnum),
))

var literal jcomb.Parser[Value] = parseLiteral

func parseLiteral(c jcomb.Cursor) jcomb.Outcome[Value] {
	o := identifier(c)
	if !o.OK() {
		return jcomb.Propagate[Value](o)
	}
	switch o.Value {
	case "true":
		return jcomb.Match[Value](o.Cursor, Bool(true))
	case "false":
		return jcomb.Match[Value](o.Cursor, Bool(false))
	case "null":
		return jcomb.Match(o.Cursor, Null)
	}
	return jcomb.Fail[Value](c, "true, false or null")
}

func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\r' || b == '\t' }
func isAlpha(b byte) bool { return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') }
func isAlnum(b byte) bool { return isAlpha(b) || ('0' <= b && b <= '9') }

func isEscape(b byte) bool { _, ok := escape.Unescape(b); return ok }
func unescape(b byte) byte { v, _ := escape.Unescape(b); return v }
