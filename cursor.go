// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "go4.org/mem"

// A Cursor is an immutable position in a source text. Advancing a cursor
// returns a new cursor; the underlying text is never copied or modified.
//
// Cursors are comparable: two cursors over the same text are equal if and
// only if their offsets are equal.
type Cursor struct {
	text string
	pos  int
}

// NewCursor returns a cursor at the beginning of text.
func NewCursor(text string) Cursor { return Cursor{text: text} }

// Offset reports the byte offset of c in its text.
func (c Cursor) Offset() int { return c.pos }

// Text returns the complete text c ranges over.
func (c Cursor) Text() string { return c.text }

// Rest returns the unconsumed text from c to the end of input.
func (c Cursor) Rest() string { return c.text[c.pos:] }

// AtEnd reports whether c is at the end of its input.
func (c Cursor) AtEnd() bool { return c.pos >= len(c.text) }

// Peek returns the byte at c, or false if c is at the end of input.
func (c Cursor) Peek() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.text[c.pos], true
}

// Skip returns a cursor n bytes past c. The result is clamped to the end of
// the input.
func (c Cursor) Skip(n int) Cursor {
	return Cursor{text: c.text, pos: clamp(c.pos+n, len(c.text))}
}

// HasPrefix reports whether the unconsumed input at c begins with s.
func (c Cursor) HasPrefix(s string) bool {
	return mem.HasPrefix(mem.S(c.text).SliceFrom(c.pos), mem.S(s))
}

// Span returns the span of text between c and end. If end precedes c, the
// span is empty.
func (c Cursor) Span(end Cursor) Span {
	return Span{Pos: c.pos, End: max(c.pos, end.pos)}
}

// Location returns the line and column position of c.
func (c Cursor) Location() LineCol { return lineColOf(c.text, c.pos) }
