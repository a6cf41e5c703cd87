// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "fmt"

// Status is the disposition of a parse attempt.
type Status byte

// Constants defining the valid Status values.
const (
	Matched  Status = iota // the parser matched
	Mismatch               // the parser did not apply; another may be tried
	Failure                // the input is malformed; the parse is abandoned
)

var statusStr = [...]string{
	Matched:  "matched",
	Mismatch: "mismatch",
	Failure:  "failure",
}

func (s Status) String() string {
	if int(s) >= len(statusStr) {
		return fmt.Sprintf("Status(%d)", s)
	}
	return statusStr[s]
}

// An Outcome is the result of applying a parser at a cursor.
//
// When the status is Matched, Value holds the result and Cursor is the
// position following the matched input. Otherwise, Cursor is the position
// where matching stopped, which is never before the position where the
// attempt began, and Expected describes what was wanted there.
type Outcome[T any] struct {
	Value  T
	Cursor Cursor

	status   Status
	expected string
}

// Match returns a matched outcome with value v ending at c.
func Match[T any](c Cursor, v T) Outcome[T] { return Outcome[T]{Value: v, Cursor: c} }

// Miss returns a recoverable mismatch at c wanting expected.
func Miss[T any](c Cursor, expected string) Outcome[T] {
	return Outcome[T]{Cursor: c, status: Mismatch, expected: expected}
}

// Fail returns an unrecoverable failure at c wanting expected.
func Fail[T any](c Cursor, expected string) Outcome[T] {
	return Outcome[T]{Cursor: c, status: Failure, expected: expected}
}

// Propagate converts an unmatched outcome to a different value type,
// preserving its status, cursor, and description. It panics if o matched.
func Propagate[U, T any](o Outcome[T]) Outcome[U] {
	if o.status == Matched {
		panic("jcomb: propagate of a matched outcome")
	}
	return Outcome[U]{Cursor: o.Cursor, status: o.status, expected: o.expected}
}

// OK reports whether o matched.
func (o Outcome[T]) OK() bool { return o.status == Matched }

// Status reports the status of o.
func (o Outcome[T]) Status() Status { return o.status }

// Expected describes what was expected at the cursor of an unmatched
// outcome. It is empty if o matched.
func (o Outcome[T]) Expected() string { return o.expected }

// Err returns nil if o matched, otherwise a *ParseError describing where and
// why the match stopped.
func (o Outcome[T]) Err() error {
	if o.status == Matched {
		return nil
	}
	return &ParseError{
		Offset:   o.Cursor.Offset(),
		Location: o.Cursor.Location(),
		Expected: o.expected,
		Fatal:    o.status == Failure,
	}
}

// ParseError is the concrete type of errors reported by parsers.
type ParseError struct {
	Offset   int     // byte offset where matching stopped
	Location LineCol // the line and column of Offset
	Expected string  // a description of what was expected at Offset
	Fatal    bool    // the construct was entered but malformed
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s (offset %d): expected %s", e.Location, e.Offset, e.Expected)
}
