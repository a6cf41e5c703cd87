// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jwcc_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/internal/testutil"
	"github.com/creachadair/jcomb/jwcc"
	"github.com/google/go-cmp/cmp"
)

const basicInput = `// Leading comment.
{
  // The name of the thing.
  "name": "widget",  // trailing
  "sizes": [
    1,
    2.5,
    /* block */ 3,
  ],
  "enabled": true,
}
/* end of document */
`

func TestParse(t *testing.T) {
	got, err := jwcc.Parse(basicInput)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	want := testutil.MustParse(t, `{"name": "widget", "sizes": [1, 2.5, 3], "enabled": true}`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse (-want, +got):\n%s", diff)
	}
}

func TestStandardize(t *testing.T) {
	const input = "[1, /* two */ 2,] // end\n"
	got, err := jwcc.Standardize(input)
	if err != nil {
		t.Fatalf("Standardize: unexpected error: %v", err)
	}
	if len(got) != len(input) {
		t.Errorf("Standardize: length %d, want %d", len(got), len(input))
	}
	if v, err := ast.ParseSingle(got); err != nil {
		t.Errorf("ParseSingle %q: unexpected error: %v", got, err)
	} else if s := v.String(); s != "[1, 2]" {
		t.Errorf("ParseSingle %q: got %s, want [1, 2]", got, s)
	}
}

func TestErrors(t *testing.T) {
	// Not valid JWCC at all.
	if v, err := jwcc.Parse(`{"a": 1 /* unterminated`); err == nil {
		t.Errorf("Parse: got %v, want error", v)
	}

	// Valid JWCC, but rejected by the JSON grammar. The offset refers to the
	// original input.
	_, err := jwcc.Parse("// comment\n[\"\\u0041\"]")
	var perr *jcomb.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse: got error %v, want *ParseError", err)
	}
	if perr.Offset != 14 || perr.Location != (jcomb.LineCol{Line: 2, Column: 3}) {
		t.Errorf("Parse: error at %d (%v), want offset 14 at 2:3", perr.Offset, perr.Location)
	}
}
