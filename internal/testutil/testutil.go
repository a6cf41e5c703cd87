// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/jcomb/ast"
)

// MustParse parses text as a single JSON value, and fails t if that is not
// possible.
func MustParse(t testing.TB, text string) ast.Value {
	t.Helper()
	v, err := ast.ParseSingle(text)
	if err != nil {
		t.Fatalf("Parse %q: %v", text, err)
	}
	return v
}

// Document is a JSON document using every kind of value, for tests.
const Document = `{
  "title": "The Wire",
  "network": "HBO",
  "seasons": 5,
  "rating": {"critics": 9.3, "audience": 0.94e1},
  "cancelled": false,
  "spinoff": null,
  "tags": ["drama", "crime", "Baltimore"],
  "episodes": [
    {
      "season": 1,
      "episode": 1,
      "title": "The Target",
      "summary": "A mistrial leads to a new detail.\n\tDirected by Clark Johnson.",
      "rating": 8.0,
      "hasDetail": true
    },
    {
      "season": 1,
      "episode": 2.0e0,
      "title": "The Detail",
      "summary": "The detail settles in with \"Hearts\" and a basement office\\desk.",
      "rating": 825e-2,
      "hasDetail": true,
      "notes": []
    }
  ],
  "empty": {}
}
`
