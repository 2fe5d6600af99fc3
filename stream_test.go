// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jserd_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jserd"
	"github.com/google/go-cmp/cmp"
)

func TestStream(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "."},
		{"   ", "."},

		{"true false null", `
Value true <true>
Value false <false>
Value null <null>
.`},

		{`0 5 -6.32 0.1e-2`, `
Value integer <0>
Value integer <5>
Value number <-6.32>
Value number <0.1e-2>
.`},

		{`"" "a b c" "a\tb" "a b"`, `
Value string <"">
Value string <"a b c">
Value string <"a\tb">
Value string <"a b">
.`},

		{`{}`, "BeginObject\nEndObject\n."},

		{`{"a":15}`, `
BeginObject
BeginMember <"a">
Value integer <15>
EndMember "}"
EndObject
.`},

		{`{"x":null, "y":[true]}`, `
BeginObject
BeginMember <"x">
Value null <null>
EndMember ","
BeginMember <"y">
BeginArray
Value true <true>
EndArray
EndMember "}"
EndObject
.`},

		{`[]`, "BeginArray\nEndArray\n."},
	}

	for _, test := range tests {
		st := jserd.NewStream(strings.NewReader(test.input))
		th := new(testHandler)
		if err := st.Parse(th); err != nil {
			t.Errorf("Parse failed: %v", err)
		}

		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestStreamErrors(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		offset int
	}{
		// Various kinds of unbalanced object bits.
		{`{`, `BeginObject`, 1},
		{`}`, ``, 0},
		{`{false:1}`, `BeginObject`, 1},
		{`{"true":}`, `
BeginObject
BeginMember <"true">`, 8},
		{`{"true":1,`, `
BeginObject
BeginMember <"true">
Value integer <1>
EndMember ","`, 10},

		// Trailing commas are not part of the grammar.
		{`{"a":1,}`, `
BeginObject
BeginMember <"a">
Value integer <1>
EndMember ","`, 7},

		// Unbalanced array bits.
		{`[`, `BeginArray`, 1},
		{`]`, ``, 0},
		{`[15,`, `
BeginArray
Value integer <15>`, 4},
		{`[15,]`, `
BeginArray
Value integer <15>`, 4},
	}

	for _, test := range tests {
		st := jserd.NewStream(strings.NewReader(test.input))
		th := new(testHandler)
		err := st.Parse(th)
		if err == nil {
			t.Errorf("Input: %#q: Parse did not report an error", test.input)
			continue
		}

		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
		var serr *jserd.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input: %#q: error is %T, not *SyntaxError", test.input, err)
		} else if serr.Offset != test.offset {
			t.Errorf("Input: %#q: error offset is %d, want %d: %v",
				test.input, serr.Offset, test.offset, serr)
		}
	}
}

func TestHandlerError(t *testing.T) {
	errBad := errors.New("bad value")
	st := jserd.NewStream(strings.NewReader(`[1, 2, 3]`))
	err := st.Parse(&errHandler{testHandler: new(testHandler), bad: errBad})
	if !errors.Is(err, errBad) {
		t.Errorf("Parse: got %v, want %v", err, errBad)
	}
}

func TestParseOne(t *testing.T) {
	const input = `{ "love": true } [] "ok"`
	const want = `
BeginObject
BeginMember <"love">
Value true <true>
EndMember "}"
EndObject
---
BeginArray
EndArray
---
Value string <"ok">
---
.`
	th := new(testHandler)

	st := jserd.NewStream(strings.NewReader(input))
	for {
		err := st.ParseOne(th)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("ParseOne failed: %v", err)
		}
		th.pr("---")
	}

	if diff := diffStrings(want, th.output()); diff != "" {
		t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", input, diff)
	}
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

type testHandler struct {
	buf bytes.Buffer
}

func (t *testHandler) pr(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) BeginObject(loc jserd.Anchor) error { t.pr("BeginObject"); return nil }
func (t *testHandler) EndObject(loc jserd.Anchor) error   { t.pr("EndObject"); return nil }
func (t *testHandler) BeginArray(loc jserd.Anchor) error  { t.pr("BeginArray"); return nil }
func (t *testHandler) EndArray(loc jserd.Anchor) error    { t.pr("EndArray"); return nil }
func (t *testHandler) EndOfInput(loc jserd.Anchor)        { t.pr(".") }

func (t *testHandler) BeginMember(loc jserd.Anchor) error {
	t.pr("BeginMember <%s>", string(loc.Text()))
	return nil
}

func (t *testHandler) EndMember(loc jserd.Anchor) error {
	t.pr("EndMember %s", loc.Token())
	return nil
}

func (t *testHandler) Value(loc jserd.Anchor) error {
	t.pr(`Value %s <%s>`, loc.Token(), string(loc.Text()))
	return nil
}

// errHandler reports an error from the first Value event.
type errHandler struct {
	*testHandler
	bad error
}

func (e *errHandler) Value(loc jserd.Anchor) error { return e.bad }
