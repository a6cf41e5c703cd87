// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "strconv"

// A Parser attempts to match input at a cursor.
type Parser[T any] func(Cursor) Outcome[T]

// Run applies p to the beginning of text. On success it returns the matched
// value and the unconsumed remainder of text. Otherwise the error has
// concrete type *ParseError.
func Run[T any](p Parser[T], text string) (T, string, error) {
	o := p(NewCursor(text))
	if err := o.Err(); err != nil {
		var zero T
		return zero, text, err
	}
	return o.Value, o.Cursor.Rest(), nil
}

// Alternative tries each of ps in order at the same cursor, and returns the
// first match. A Failure from any parser is returned at once.
//
// If every parser mismatches, the result is the mismatch that got furthest
// into the input; among equally-far mismatches the earliest one wins.
func Alternative[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		best := Miss[T](c, "alternative")
		for i, p := range ps {
			o := p(c)
			if o.status != Mismatch {
				return o
			}
			if i == 0 || o.Cursor.pos > best.Cursor.pos {
				best = o
			}
		}
		return best
	}
}

// Repeat applies p as many times as it matches, and returns the values in
// order. It stops at the first mismatch, without consuming the failed
// attempt, so it matches even if p never does. A Failure from p is returned.
//
// The caller must ensure p consumes input whenever it matches, or Repeat
// will not terminate.
func Repeat[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Outcome[[]T] {
		var vs []T
		for {
			o := p(c)
			switch o.status {
			case Mismatch:
				return Match(c, vs)
			case Failure:
				return Propagate[[]T](o)
			}
			vs = append(vs, o.Value)
			c = o.Cursor
		}
	}
}

// Repeat1 is as Repeat, but requires at least one match of p.
func Repeat1[T any](p Parser[T]) Parser[[]T] {
	rest := Repeat(p)
	return func(c Cursor) Outcome[[]T] {
		first := p(c)
		if !first.OK() {
			return Propagate[[]T](first)
		}
		o := rest(first.Cursor)
		if o.OK() {
			o.Value = append([]T{first.Value}, o.Value...)
		}
		return o
	}
}

// Delimited matches open, body, and close in sequence, and returns the value
// of body. The first stage that does not match determines the result.
func Delimited[L, T, R any](open Parser[L], body Parser[T], close Parser[R]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		lo := open(c)
		if !lo.OK() {
			return Propagate[T](lo)
		}
		bo := body(lo.Cursor)
		if !bo.OK() {
			return bo
		}
		ro := close(bo.Cursor)
		if !ro.OK() {
			return Propagate[T](ro)
		}
		return Match(ro.Cursor, bo.Value)
	}
}

// Separated matches zero or more instances of elem separated by sep, and
// returns the element values in order. If the first elem mismatches, the
// result is empty at the original cursor.
//
// Separated stops after the last element that matched: a separator that is
// not followed by an element is left unconsumed for the caller to handle.
// A Failure from either parser is returned.
func Separated[S, T any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return func(c Cursor) Outcome[[]T] {
		first := elem(c)
		switch first.status {
		case Mismatch:
			return Match[[]T](c, nil)
		case Failure:
			return Propagate[[]T](first)
		}
		vs := []T{first.Value}
		c = first.Cursor
		for {
			so := sep(c)
			if so.status == Mismatch {
				return Match(c, vs)
			} else if so.status == Failure {
				return Propagate[[]T](so)
			}
			eo := elem(so.Cursor)
			if eo.status == Mismatch {
				return Match(c, vs)
			} else if eo.status == Failure {
				return Propagate[[]T](eo)
			}
			vs = append(vs, eo.Value)
			c = eo.Cursor
		}
	}
}

// Optional matches p if possible. If p mismatches, Optional matches an
// empty input and reports false.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(c Cursor) Outcome[Maybe[T]] {
		o := p(c)
		switch o.status {
		case Mismatch:
			return Match(c, Maybe[T]{})
		case Failure:
			return Propagate[Maybe[T]](o)
		}
		return Match(o.Cursor, Maybe[T]{Value: o.Value, Present: true})
	}
}

// Maybe is the result of an Optional parser.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Map matches p and transforms its value with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) Outcome[U] {
		o := p(c)
		if !o.OK() {
			return Propagate[U](o)
		}
		return Match(o.Cursor, f(o.Value))
	}
}

// Preceded matches a then b, and returns the value of b.
func Preceded[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(c Cursor) Outcome[B] {
		ao := a(c)
		if !ao.OK() {
			return Propagate[B](ao)
		}
		return b(ao.Cursor)
	}
}

// Terminated matches a then b, and returns the value of a.
func Terminated[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(c Cursor) Outcome[A] {
		ao := a(c)
		if !ao.OK() {
			return ao
		}
		bo := b(ao.Cursor)
		if !bo.OK() {
			return Propagate[A](bo)
		}
		return Match(bo.Cursor, ao.Value)
	}
}

// Commit matches p, but reports a mismatch of p as a Failure. Use it once a
// grammar has seen an unambiguous prefix, so that a malformed construct is
// reported where it went wrong rather than as a mismatch of its siblings.
func Commit[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) Outcome[T] {
		o := p(c)
		if o.status == Mismatch {
			o.status = Failure
		}
		return o
	}
}

// Recognize matches p and returns the input text it consumed.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(c Cursor) Outcome[string] {
		o := p(c)
		if !o.OK() {
			return Propagate[string](o)
		}
		return Match(o.Cursor, c.text[c.pos:o.Cursor.pos])
	}
}

// Literal matches the exact text s.
func Literal(s string) Parser[string] {
	want := strconv.Quote(s)
	return func(c Cursor) Outcome[string] {
		if !c.HasPrefix(s) {
			return Miss[string](c, want)
		}
		return Match(c.Skip(len(s)), s)
	}
}

// Byte matches the single byte b.
func Byte(b byte) Parser[byte] {
	return Satisfy(strconv.Quote(string(b)), func(x byte) bool { return x == b })
}

// Satisfy matches a single byte for which ok reports true. The description
// reports what was expected if it does not match.
func Satisfy(desc string, ok func(byte) bool) Parser[byte] {
	return func(c Cursor) Outcome[byte] {
		if b, more := c.Peek(); more && ok(b) {
			return Match(c.Skip(1), b)
		}
		return Miss[byte](c, desc)
	}
}

// TakeWhile matches the longest, possibly empty, run of bytes for which ok
// reports true.
func TakeWhile(ok func(byte) bool) Parser[string] {
	return func(c Cursor) Outcome[string] {
		end := c.pos
		for end < len(c.text) && ok(c.text[end]) {
			end++
		}
		return Match(Cursor{text: c.text, pos: end}, c.text[c.pos:end])
	}
}

// TakeWhile1 is as TakeWhile, but requires at least one byte.
func TakeWhile1(desc string, ok func(byte) bool) Parser[string] {
	take := TakeWhile(ok)
	return func(c Cursor) Outcome[string] {
		o := take(c)
		if o.Value == "" {
			return Miss[string](c, desc)
		}
		return o
	}
}
