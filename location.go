// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"strings"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// LocationOf computes the complete location of span in text. Offsets
// outside text are clamped to its bounds.
func LocationOf(text string, span Span) Location {
	pos := clamp(span.Pos, len(text))
	end := max(clamp(span.End, len(text)), pos)
	return Location{
		Span:  Span{Pos: pos, End: end},
		First: lineColOf(text, pos),
		Last:  lineColOf(text, end),
	}
}

func lineColOf(text string, pos int) LineCol {
	head := text[:pos]
	line := strings.Count(head, "\n")
	col := pos
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		col = pos - i - 1
	}
	return LineCol{Line: line + 1, Column: col}
}

func clamp(v, n int) int { return min(max(v, 0), n) }
