// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jserd"
)

// Parse parses and returns the JSON values from r. In case of error, any
// complete values already parsed are returned along with the error.
func Parse(r io.Reader) ([]Value, error) {
	h := newParseHandler()
	st := jserd.NewStream(r)
	var vs []Value
	for {
		if err := st.ParseOne(h); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		if len(h.stk) != 1 {
			return vs, errors.New("incomplete value")
		}
		vs = append(vs, h.stk[0])
		h.stk = h.stk[:0]
	}
}

// ParseSingle parses and returns the single JSON value from r. An input with
// no value reports [ErrEmptyInput]. If r contains data after the first value,
// ParseSingle returns the first value along with an [ErrExtraInput] error.
func ParseSingle(r io.Reader) (Value, error) {
	h := newParseHandler()
	st := jserd.NewStream(r)
	if err := st.ParseOne(h); err == io.EOF {
		return nil, ErrEmptyInput
	} else if err != nil {
		return nil, err
	} else if len(h.stk) != 1 {
		return nil, errors.New("incomplete value")
	}
	v := h.stk[0]
	h.stk = h.stk[:0]
	if err := st.ParseOne(h); err == nil {
		return v, ErrExtraInput
	} else if !errors.Is(err, io.EOF) {
		return v, errors.Join(ErrExtraInput, err)
	}
	return v, nil
}

// A parseHandler implements the jserd.Handler interface to construct syntax
// trees for JSON values.
type parseHandler struct {
	stk []Value
	ic  jserd.Interner
}

func newParseHandler() *parseHandler {
	return &parseHandler{ic: make(jserd.Interner)}
}

// objectStub is a stack placeholder for an incomplete object during parsing.
// This type does not appear in a completed tree.
type objectStub struct{ Value }

// arrayStub is a stack placeholder for an incomplete array during parsing.
// This type does not appear in a completed tree.
type arrayStub struct{ Value }

// memberStub is a stack placeholder for an object member whose value is not
// yet known. This type does not appear in a completed tree.
type memberStub struct {
	Value
	key string
}

func (h *parseHandler) top() Value { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() Value {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(v Value) { h.stk = append(h.stk, v) }

func (h *parseHandler) BeginObject(loc jserd.Anchor) error {
	h.push(&objectStub{})
	return nil
}

func (h *parseHandler) EndObject(loc jserd.Anchor) error {
	for i := len(h.stk) - 1; i >= 0; i-- {
		if _, ok := h.stk[i].(*objectStub); !ok {
			continue
		}
		ms := make(Object, 0, len(h.stk)-i-1)
		for j := i + 1; j < len(h.stk); j++ {
			ms = append(ms, h.stk[j].(*Member))
		}
		h.stk = h.stk[:i+1]
		h.stk[i] = ms
		return nil
	}
	panic("unbalanced EndObject")
}

func (h *parseHandler) BeginArray(loc jserd.Anchor) error {
	h.push(&arrayStub{})
	return nil
}

func (h *parseHandler) EndArray(loc jserd.Anchor) error {
	for i := len(h.stk) - 1; i >= 0; i-- {
		if _, ok := h.stk[i].(*arrayStub); !ok {
			continue
		}
		vs := make(Array, len(h.stk)-i-1)
		copy(vs, h.stk[i+1:])
		h.stk = h.stk[:i+1]
		h.stk[i] = vs
		return nil
	}
	panic("unbalanced EndArray")
}

func (h *parseHandler) BeginMember(loc jserd.Anchor) error {
	key, err := jserd.Unquote(string(loc.Text()))
	if err != nil {
		return fmt.Errorf("invalid member key: %w", err)
	}
	h.push(&memberStub{key: h.ic.Intern(key)})
	return nil
}

func (h *parseHandler) EndMember(loc jserd.Anchor) error {
	v := h.pop()
	m, ok := h.pop().(*memberStub)
	if !ok {
		panic("unbalanced EndMember")
	}
	h.push(&Member{Key: m.key, Value: v})
	return nil
}

func (h *parseHandler) Value(loc jserd.Anchor) error {
	switch loc.Token() {
	case jserd.String:
		h.push(Quoted{raw: string(loc.Text())})
	case jserd.Integer, jserd.Number:
		h.push(Number{text: string(loc.Text())})
	case jserd.True, jserd.False:
		h.push(Bool(loc.Token() == jserd.True))
	case jserd.Null:
		h.push(Null)
	default:
		return fmt.Errorf("unknown value %v", loc.Token())
	}
	return nil
}

func (h *parseHandler) EndOfInput(loc jserd.Anchor) {}
