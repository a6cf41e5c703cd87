// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/ast/cursor"
	"github.com/creachadair/jcomb/decimal"
	"github.com/creachadair/jcomb/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v := testutil.MustParse(t, testJSON)
	root := v.(ast.Object)
	list := root["list"].(ast.Array)
	xyz := root["xyz"].(ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NilElement", []any{nil, "y", nil}, root["y"], false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{"o", "hi"}, root["o"], true},
		{"BadElement", []any{1.5}, v, true},

		{"ArrayPos", []any{"list", 1}, list[1], false},
		{"ArrayNeg", []any{"list", -1}, list[1], false},
		{"ArrayRange", []any{"o", 25}, root["o"], true},
		{"ObjPath", []any{"xyz", "d"}, xyz["d"], false},
		{"ObjIndex", []any{"xyz", 2}, xyz["q"], false},
		{"ObjIndexNeg", []any{-2, "q"}, xyz["q"], false},
		{"Deep", []any{"list", 0, "x"}, number(1), false},

		{"FuncArray", []any{"o", testPathFunc}, number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, xyz["d"], true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			got := c.Value()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	v := testutil.MustParse(t, testJSON)
	c := cursor.New(v)
	if !c.AtOrigin() || c.Origin().Kind() != ast.ObjectKind {
		t.Fatal("New cursor is not at its origin")
	}
	c.Down("list", 0, "x")
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path: got %d values, want 4", got)
	}
	if got := c.Up().Up().Value(); got.Kind() != ast.ArrayKind {
		t.Errorf("Up: got %v, want the list", got)
	}
	c.Down("bogus")
	if c.Err() == nil {
		t.Error("Down bogus: got nil error")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, error %v", c.AtOrigin(), c.Err())
	}
}

func TestPath(t *testing.T) {
	v := testutil.MustParse(t, testJSON)

	s, err := cursor.Path[ast.String](v, "y", "hello")
	if err != nil {
		t.Errorf("Path: unexpected error: %v", err)
	} else if s != "there" {
		t.Errorf("Path: got %q, want there", s)
	}

	if b, err := cursor.Path[ast.Bool](v, "y", "hello"); err == nil {
		t.Errorf("Path: got %v, want type error", b)
	}
	if n, err := cursor.Path[ast.Number](v, "list", 5); err == nil {
		t.Errorf("Path: got %v, want range error", n)
	}
}

func number(n int) ast.Value {
	d, err := decimal.New(false, []byte{byte(n)}, 1)
	if err != nil {
		panic(err)
	}
	return ast.Number{Decimal: d}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return number(len(t)), nil
	case ast.Object:
		return number(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
