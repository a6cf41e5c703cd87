// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestKind(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
		name  string
	}{
		{`"a"`, ast.StringKind, "string"},
		{`-1.5`, ast.NumberKind, "number"},
		{`true`, ast.BoolKind, "bool"},
		{`null`, ast.NullKind, "null"},
		{`[1]`, ast.ArrayKind, "array"},
		{`{}`, ast.ObjectKind, "object"},
	}
	for _, tc := range tests {
		v := testutil.MustParse(t, tc.input)
		if got := v.Kind(); got != tc.kind {
			t.Errorf("Kind(%s): got %v, want %v", tc.input, got, tc.kind)
		}
		if got := v.Kind().String(); got != tc.name {
			t.Errorf("Kind(%s).String(): got %q, want %q", tc.input, got, tc.name)
		}
	}
	if got := ast.Kind(99).String(); got != "invalid" {
		t.Errorf("Kind(99): got %q, want invalid", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.String(""), `""`},
		{ast.String("a\tb"), `"a\tb"`},
		{ast.String(`say "hi"\`), `"say \"hi\"\\"`},
		{ast.String("\x01"), `"\x01"`},
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.Null, "null"},
		{ast.Array(nil), "[]"},
		{ast.Object(nil), "{}"},

		{testutil.MustParse(t, `-12.0e-5`), "-0.12e-3"},
		{testutil.MustParse(t, `[ 1, "two" , [null] ]`), `[1, "two", [null]]`},
		{testutil.MustParse(t, `{"b": {"y": 2, "x": 1}, "a": []}`), `{"a": [], "b": {"x": 1, "y": 2}}`},
	}
	for _, tc := range tests {
		if got := tc.input.String(); got != tc.want {
			t.Errorf("String: got %s, want %s", got, tc.want)
		}
	}
}

func TestObject(t *testing.T) {
	obj := testutil.MustParse(t, `{"c": 3, "a": 1, "b": 2}`).(ast.Object)
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if v, ok := obj.Find("b"); !ok || v.String() != "2" {
		t.Errorf("Find(b): got %v, %v; want 2, true", v, ok)
	}
	if v, ok := obj.Find("nonesuch"); ok {
		t.Errorf("Find(nonesuch): got %v, want not found", v)
	}
}

func TestArray(t *testing.T) {
	arr := testutil.MustParse(t, `[1, [], {}, "x"]`).(ast.Array)
	if arr.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", arr.Len())
	}
	var kinds []ast.Kind
	for _, v := range arr {
		kinds = append(kinds, v.Kind())
	}
	want := []ast.Kind{ast.NumberKind, ast.ArrayKind, ast.ObjectKind, ast.StringKind}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Kinds (-want, +got):\n%s", diff)
	}
}
