// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a double-quoted string. Quotation marks, backslashes,
// newlines, carriage returns, and tabs are escaped with a backslash; other
// bytes outside the printable ASCII range are written as \xHH.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case IsPrintable(b):
			buf = append(buf, b)
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b < ' ' && controlEsc[b] != 0:
			buf = append(buf, '\\', controlEsc[b])
		default:
			buf = append(buf, '\\', 'x', hexDigit[b>>4], hexDigit[b&15])
		}
	}
	return append(buf, '"')
}
