// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree representation of JSON values, and a parser
// that constructs such trees from JSON source.
package ast

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/creachadair/jcomb/decimal"
	"github.com/creachadair/jcomb/internal/escape"

	"go4.org/mem"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // not a valid kind
	StringKind             // a String
	NumberKind             // a Number
	BoolKind               // a Bool
	NullKind               // the Null value
	ArrayKind              // an Array
	ObjectKind             // an Object
)

var kindStr = [...]string{
	Invalid:    "invalid",
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "bool",
	NullKind:   "null",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value. Values are not modified by the parser
// once constructed, and each container exclusively owns its elements.
//
// The String method of a Value renders it for debugging.
type Value interface {
	Kind() Kind
	String() string
}

// A String is a string value.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// String renders s as a quoted string.
func (s String) String() string { return string(escape.Quote(mem.S(string(s)))) }

// A Number is a numeric value. Numbers are exact decimals.
type Number struct{ decimal.Decimal }

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

type null struct{}

// Null is the null constant.
var Null Value = null{}

func (null) Kind() Kind     { return NullKind }
func (null) String() string { return "null" }

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string {
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = v.String()
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

// An Object is a collection of values indexed by unique string keys. The
// order of keys is not significant.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the value of o with the given key, and reports whether the key
// was found.
func (o Object) Find(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// String renders o with its members in key order.
func (o Object) String() string {
	ss := make([]string, 0, len(o))
	for _, key := range o.Keys() {
		ss = append(ss, fmt.Sprintf("%s: %s", String(key), o[key]))
	}
	return "{" + strings.Join(ss, ", ") + "}"
}
