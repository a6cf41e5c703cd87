// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of quoted strings.
package escape

// unescape maps the byte following a backslash to the byte it denotes.
var unescape = [...]byte{
	'"':  '"',
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unescape reports the byte denoted by the escape sequence `\b`, or false if
// that sequence is not recognized. The recognized sequences are \n, \r, \t,
// \\, and \".
func Unescape(b byte) (byte, bool) {
	if int(b) < len(unescape) && unescape[b] != 0 {
		return unescape[b], true
	}
	return 0, false
}

// IsPrintable reports whether b may appear unescaped in a quoted string.
func IsPrintable(b byte) bool { return b >= 0x20 && b <= 0x7e && b != '"' && b != '\\' }
