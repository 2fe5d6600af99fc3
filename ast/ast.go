// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a parser that
// constructs syntax trees from JSON source.
//
// Values are constructed directly, or by parsing source text:
//
//	obj := ast.Object{
//	   ast.Field("name", ast.String("Dennis")),
//	   ast.Field("age", ast.Int(37)),
//	}
//
// The JSON method of a value renders it as compact JSON text. Object members
// retain their insertion order, so rendering is deterministic.
package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jserd"
)

// ErrExtraInput is reported by ParseSingle when extra data remains in the
// input after the first value.
var ErrExtraInput = errors.New("extra data after value")

// ErrEmptyInput is reported by ParseSingle when the input contains no value.
var ErrEmptyInput = errors.New("empty input")

// ErrKeyNotFound is reported by Path when an object key is absent.
var ErrKeyNotFound = errors.New("key not found")

// ErrIndexRange is reported by Path when an array index is out of bounds.
var ErrIndexRange = errors.New("index out of range")

// ErrTypeMismatch is reported by As when a value does not convert to the
// requested type.
var ErrTypeMismatch = errors.New("type mismatch")

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string

	// String renders a human-readable synopsis of the value.
	String() string
}

// An Object is a collection of key-value members.  The order of members is
// preserved, and is the order in which they are rendered by JSON.  Parsing
// mirrors the input exactly, so an object parsed from text with repeated
// keys retains every member; Find and Path resolve to the first match.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
// Keys are compared case-sensitively.
func (o Object) Find(key string) *Member {
	if i := o.IndexKey(key); i >= 0 {
		return o[i]
	}
	return nil
}

// IndexKey returns the index of the first member of o with the given key,
// or -1.
func (o Object) IndexKey(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Set replaces the value of the first member of o with the given key, or
// appends a new member, and returns the updated object. The input object is
// unchanged if a new member was added, as with append.
func (o Object) Set(key string, value Value) Object {
	if i := o.IndexKey(key); i >= 0 {
		o[i].Value = value
		return o
	}
	return append(o, &Member{Key: key, Value: value})
}

// Remove removes the first member of o with the given key, and returns the
// updated object. The input object is no longer valid if a member was
// removed.
func (o Object) Remove(key string) Object {
	if i := o.IndexKey(key); i >= 0 {
		return append(o[:i], o[i+1:]...)
	}
	return o
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// JSON renders o as compact JSON text.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, m := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or ast.Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// JSON renders m as compact JSON text.
func (m Member) JSON() string {
	k := jserd.Quote(m.Key)
	v := m.Value.JSON()
	buf := make([]byte, len(k)+len(v)+1)
	n := copy(buf, k)
	buf[n] = ':'
	copy(buf[n+1:], v)
	return string(buf)
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON renders a as compact JSON text.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, v := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A Quoted is a string value still in its quoted JSON source form.
// Parsing produces Quoted strings; use Unquote to decode the plain text.
type Quoted struct {
	raw string
}

// JSON renders q as compact JSON text.
func (q Quoted) JSON() string { return q.raw }

func (q Quoted) String() string { return q.raw }

// Unquote decodes the text of q into a plain String.
// It panics if q is not validly encoded; parsed input is always valid.
func (q Quoted) Unquote() String {
	dec, err := jserd.Unquote(q.raw)
	if err != nil {
		panic(err)
	}
	return String(dec)
}

// Len reports the length in bytes of the text of q after unquoting.
func (q Quoted) Len() int { return len(q.Unquote()) }

// A String is a plain (unquoted) string value.
type String string

// Quote converts s into its quoted JSON source form.
func (s String) Quote() Quoted { return Quoted{raw: jserd.Quote(string(s))} }

// JSON renders s as compact JSON text.
func (s String) JSON() string { return jserd.Quote(string(s)) }

func (s String) String() string { return string(s) }

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

// A Number is a numeric value, retained in its decimal text form.
type Number struct {
	text string
}

// Int constructs a Number with the given integer value.
func Int(z int64) Number { return Number{text: strconv.FormatInt(z, 10)} }

// Float constructs a Number with the given floating-point value.
// The text of the number is the shortest form that round-trips its value.
func Float(f float64) Number { return Number{text: strconv.FormatFloat(f, 'g', -1, 64)} }

// IsInt reports whether n is representable as an integer, meaning its text
// has no fractional or exponent part.
func (n Number) IsInt() bool { return !strings.ContainsAny(n.text, ".eE") }

// Int64 reports the value of n as an int64.
// It panics if the text of n does not encode an integer.
func (n Number) Int64() int64 {
	v, err := strconv.ParseInt(n.text, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 reports the value of n as a float64.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// JSON renders n as compact JSON text.
func (n Number) JSON() string { return n.text }

func (n Number) String() string { return n.text }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Value reports the truth value of b.
func (b Bool) Value() bool { return bool(b) }

// JSON renders b as compact JSON text.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string { return b.JSON() }

type nullValue struct{}

// Null represents the JSON null constant.
var Null Value = nullValue{}

// JSON renders the null constant as compact JSON text.
func (nullValue) JSON() string { return "null" }

func (nullValue) String() string { return "null" }

// ToValue converts a string, int, float, bool, nil, or Value into a Value.
// It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case bool:
		return Bool(t)
	case nil:
		return Null
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// Equal reports whether a and b are structurally equal: they have the same
// shape and corresponding leaves are equal. A Quoted string and a plain
// String with the same decoded text are equal; numbers compare by their
// literal text, so "1.0" and "1" are distinct.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case Object:
		u, ok := b.(Object)
		if !ok || len(t) != len(u) {
			return false
		}
		for i, m := range t {
			if m.Key != u[i].Key || !Equal(m.Value, u[i].Value) {
				return false
			}
		}
		return true
	case Array:
		u, ok := b.(Array)
		if !ok || len(t) != len(u) {
			return false
		}
		for i, v := range t {
			if !Equal(v, u[i]) {
				return false
			}
		}
		return true
	case Quoted:
		return equalText(t.Unquote(), b)
	case String:
		return equalText(t, b)
	default:
		return a == b
	}
}

func equalText(s String, b Value) bool {
	switch u := b.(type) {
	case Quoted:
		return s == u.Unquote()
	case String:
		return s == u
	}
	return false
}
