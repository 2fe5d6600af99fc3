// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jserd/ast"
	"github.com/creachadair/jserd/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "users": [
    {
      "id": 1,
      "name": "John"
    },
    {
      "id": 2,
      "name": "Mary"
    }
  ],
  "tags": [
    "alpha",
    "beta"
  ],
  "meta": {
    "active": true,
    "count": 2
  }
}`

func TestCursor(t *testing.T) {
	v, err := ast.ParseSingle(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},

		{"ArrayPos", []any{"users", 1},
			v.(ast.Object).Find("users").Value.(ast.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"users", -1},
			v.(ast.Object).Find("users").Value.(ast.Array)[1],
			false,
		},
		{"ArrayRange", []any{"tags", 25},
			v.(ast.Object).Find("tags").Value,
			true,
		},
		{"ObjPath", []any{"meta", "active"},
			v.(ast.Object).Find("meta").Value.(ast.Object).Find("active"),
			false,
		},

		{"FuncArray", []any{"tags", testPathFunc}, ast.ToValue(2), false},
		{"FuncObj", []any{"meta", testPathFunc}, ast.ToValue(2), false},
		{"FuncWrong", []any{"meta", "active", testPathFunc},
			v.(ast.Object).Find("meta").Value.(ast.Object).Find("active").Value,
			true,
		},
	}
	opt := cmp.AllowUnexported(ast.Quoted{}, ast.Number{})
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
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want, opt); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return ast.ToValue(len(t)), nil
	case ast.Object:
		return ast.ToValue(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}

func TestCursorErrors(t *testing.T) {
	v, err := ast.ParseSingle(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tests := []struct {
		path []any
		want error
	}{
		{[]any{"nonesuch"}, ast.ErrKeyNotFound},
		{[]any{"meta", "nonesuch"}, ast.ErrKeyNotFound},
		{[]any{"tags", 9}, ast.ErrIndexRange},
		{[]any{"tags", -3}, ast.ErrIndexRange},
		{[]any{0}, ast.ErrTypeMismatch},
		{[]any{"meta", "count", "deeper"}, ast.ErrTypeMismatch},
	}
	for _, tc := range tests {
		if err := cursor.New(v).Down(tc.path...).Err(); !errors.Is(err, tc.want) {
			t.Errorf("Down %+v: got error %v, want %v", tc.path, err, tc.want)
		}
	}
}

func TestCursorMoves(t *testing.T) {
	v, err := ast.ParseSingle(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at origin")
	}
	if got := c.Origin(); got != v {
		t.Errorf("Origin: got %v, want %v", got, v)
	}

	c.Down("users", 0, "name", nil)
	if c.Err() != nil {
		t.Fatalf("Down: unexpected error: %v", c.Err())
	}
	if got, want := c.Value().JSON(), `"John"`; got != want {
		t.Errorf("Value: got %s, want %s", got, want)
	}
	if got, want := len(c.Path()), 6; got != want {
		t.Errorf("Path: got %d values, want %d", got, want)
	}

	c.Up()
	if got, want := c.Value().(*ast.Member).Key, "name"; got != want {
		t.Errorf("Value after Up: got key %q, want %q", got, want)
	}

	c.Reset()
	if !c.AtOrigin() {
		t.Error("Reset cursor is not at origin")
	}
	if got := c.Value(); got != v {
		t.Errorf("Value after Reset: got %v, want %v", got, v)
	}
}

func TestPath(t *testing.T) {
	v, err := ast.ParseSingle(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	t.Run("OK", func(t *testing.T) {
		got, err := cursor.Path[ast.Number](v, "users", 1, "id", nil)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if got.Int64() != 2 {
			t.Errorf("Value: got %v, want 2", got)
		}
	})
	t.Run("WrongType", func(t *testing.T) {
		got, err := cursor.Path[ast.Bool](v, "users", 1, "id", nil)
		if !errors.Is(err, ast.ErrTypeMismatch) {
			t.Errorf("Path: got (%v, %v), want %v", got, err, ast.ErrTypeMismatch)
		}
	})
	t.Run("Missing", func(t *testing.T) {
		got, err := cursor.Path[ast.Value](v, "users", 2, "id")
		if !errors.Is(err, ast.ErrIndexRange) {
			t.Errorf("Path: got (%v, %v), want %v", got, err, ast.ErrIndexRange)
		}
	})
}
