// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcomb implements backtracking parser combinators over strings.
//
// # Cursors and Outcomes
//
// A Cursor is an immutable position in an input string. A Parser is a
// function that attempts to match input at a cursor, and reports an Outcome:
//
//	o := p(jcomb.NewCursor(input))
//	if o.OK() {
//	   log.Printf("Got %v, remaining %q", o.Value, o.Cursor.Rest())
//	}
//
// An outcome that did not match has one of two statuses. A Mismatch means
// the parser does not apply at that position, and another parser may be
// tried in its place. A Failure means the parser recognized the start of a
// construct whose content is malformed; combinators do not backtrack past a
// failure, and it ends the parse.
//
// Either way, the cursor of an unmatched outcome records where matching
// stopped, and Expected describes what was wanted there. Call Err to obtain
// the same information as an error of concrete type *jcomb.ParseError:
//
//	if err := o.Err(); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Combinators
//
// Combinators build parsers from other parsers:
//
//	Combinator   | Matches
//	------------ | ------------------------------------------------------
//	Alternative  | the first of several parsers that matches
//	Repeat       | zero or more consecutive matches
//	Delimited    | open, body, close; keeping the body
//	Separated    | zero or more elements separated by a separator
//	Optional     | zero or one match
//	Commit       | like its argument, but a mismatch becomes a failure
//
// When every branch of an Alternative mismatches, it reports the mismatch
// that got furthest into the input.
package jcomb
