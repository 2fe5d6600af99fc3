// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jserd_test

import (
	"testing"

	"github.com/creachadair/jserd"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"a b c", `"a b c"`},
		{"a\tb", `"a\tb"`},
		{"line 1\nline 2\r\n", `"line 1\nline 2\r\n"`},
		{`say "cheese"`, `"say \"cheese\""`},
		{`back\slash`, `"back\\slash"`},
		{"\x00\x01", `"\u0000\u0001"`},
		{"\b\f", `"\b\f"`},
		{"unicode   separators  ", `"unicode   separators  "`},
		{"kitty \U0001f63b", "\"kitty \U0001f63b\""},
	}
	for _, test := range tests {
		got := jserd.Quote(test.input)
		if got != test.want {
			t.Errorf("Quote %q: got %#q, want %#q", test.input, got, test.want)
		}

		// Unquoting must return the original input.
		back, err := jserd.Unquote(got)
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", got, err)
		} else if string(back) != test.input {
			t.Errorf("Unquote %#q: got %q, want %q", got, back, test.input)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
		fail        bool
	}{
		{`""`, "", false},
		{`"ok go"`, "ok go", false},
		{`"a b"`, "a b", false},
		{`"esc\"aped\/solidus"`, `esc"aped/solidus`, false},

		// Missing quotations.
		{``, "", true},
		{`"`, "", true},
		{`no quotes`, "", true},

		// Incomplete escapes.
		{`"\"`, "", true},
		{`"\u00"`, "", true},
	}
	for _, test := range tests {
		got, err := jserd.Unquote(test.input)
		if test.fail {
			if err == nil {
				t.Errorf("Unquote %#q: got %q, wanted error", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote %#q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestInterner(t *testing.T) {
	ic := make(jserd.Interner)
	a := ic.Intern([]byte("alpha"))
	b := ic.Intern([]byte("bravo"))
	c := ic.Intern([]byte("alpha"))
	if a != c {
		t.Errorf("Intern: got %q and %q, want equal", a, c)
	}
	if a == b {
		t.Errorf("Intern: %q and %q should differ", a, b)
	}
	if len(ic) != 2 {
		t.Errorf("Interner has %d entries, want 2", len(ic))
	}

	// A nil interner still works.
	var nic jserd.Interner
	if got := nic.Intern([]byte("free")); got != "free" {
		t.Errorf("Intern: got %q, want %q", got, "free")
	}
}
