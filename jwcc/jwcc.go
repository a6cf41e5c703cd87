// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc implements a parser for JSON With Commas and Comments (JWCC) as
// defined by https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// Input is first rewritten to standard JSON, replacing comments and trailing
// commas with spaces so that byte offsets and line numbers are unchanged, and
// then parsed with the ast package. Comments are not retained.
package jwcc

import (
	"fmt"

	"github.com/creachadair/jcomb/ast"
	"github.com/tailscale/hujson"
)

// Standardize returns a copy of text with JWCC comments and trailing commas
// replaced by whitespace. The result has the same length as text.
func Standardize(text string) (string, error) {
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		return "", fmt.Errorf("jwcc: %w", err)
	}
	return string(std), nil
}

// Parse parses text as a single JWCC value. If the standardized input is not
// accepted by the JSON grammar, the error has concrete type *jcomb.ParseError
// and its offset refers to text.
func Parse(text string) (ast.Value, error) {
	std, err := Standardize(text)
	if err != nil {
		return nil, err
	}
	return ast.ParseSingle(std)
}
