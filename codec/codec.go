// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package codec implements a reflection-free mapping between declared record
// shapes and JSON objects.
//
// A Codec is built once per record type from an explicit list of field
// descriptors and a fixed set of options. No runtime reflection is used: the
// field list is the single source of truth for what is serialized, in what
// order, and under which names.
//
//	type Person struct {
//	   Name    string
//	   Surname string
//	}
//
//	var personCodec = codec.New(codec.Options{FieldNames: codec.CamelCase},
//	   codec.String("Name",
//	      func(p *Person) string { return p.Name },
//	      func(p *Person, s string) { p.Name = s }),
//	   codec.String("Surname",
//	      func(p *Person) string { return p.Surname },
//	      func(p *Person, s string) { p.Surname = s }),
//	)
//
//	out, err := personCodec.Marshal(Person{Name: "John", Surname: "Doe"})
//	// out == `{"name":"John","surname":"Doe"}`
//
// Encoding is deterministic: fields are emitted in declaration order with
// names computed once from the options, so equal inputs produce byte
// identical output.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jserd/ast"
)

// ErrShapeMismatch is reported when the root of the input is not the kind of
// value the target requires (an object for records, an array for slices).
var ErrShapeMismatch = errors.New("root value has wrong shape")

// ErrMissingField is reported when a required field is absent from the
// input.
var ErrMissingField = errors.New("required field missing")

// ErrUnknownEnum is reported when an enum wire value does not correspond to
// any declared enumerator under the configured representation.
var ErrUnknownEnum = errors.New("unknown enum value")

// A FieldError reports a failure to encode or decode a specific field.
// It wraps the underlying cause, such as [ErrMissingField], [ErrUnknownEnum],
// or [ast.ErrTypeMismatch].
type FieldError struct {
	Field string // the declared (not wire) field name
	Err   error
}

// Error satisfies the error interface.
func (e *FieldError) Error() string { return fmt.Sprintf("field %q: %v", e.Field, e.Err) }

// Unwrap supports error wrapping.
func (e *FieldError) Unwrap() error { return e.Err }

// A Codec converts between records of type T and JSON text, governed by a
// fixed Options value. A Codec is immutable after construction and safe for
// concurrent use.
type Codec[T any] struct {
	opts   Options
	fields []*Field[T]
}

// New constructs a codec for T from the given options and field descriptors.
// Fields are encoded in the order given, which should match declaration
// order in the record type.
//
// New panics if a field name is empty or if two non-ignored fields resolve
// to the same wire name, since such a configuration cannot round-trip.
func New[T any](opts Options, fields ...*Field[T]) *Codec[T] {
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.name == "" {
			panic("empty field name")
		}
		if opts.Ignore.Has(f.name) {
			continue
		}
		wire := f.wireName(&opts)
		if prev, ok := seen[wire]; ok {
			panic(fmt.Sprintf("wire name %q assigned to both %q and %q", wire, prev, f.name))
		}
		seen[wire] = f.name
	}
	return &Codec[T]{opts: opts, fields: fields}
}

// Marshal encodes v as compact JSON text. The output is deterministic:
// equal values yield byte-identical text.
func (c *Codec[T]) Marshal(v T) (string, error) {
	obj, err := c.Encode(v)
	if err != nil {
		return "", err
	}
	return obj.JSON(), nil
}

// Encode converts v into an object value in declaration order, excluding
// ignored fields.
func (c *Codec[T]) Encode(v T) (ast.Object, error) {
	out := make(ast.Object, 0, len(c.fields))
	for _, f := range c.fields {
		if c.opts.Ignore.Has(f.name) {
			continue
		}
		w, err := f.enc(&v, &c.opts)
		if err != nil {
			return nil, &FieldError{Field: f.name, Err: err}
		}
		out = append(out, &ast.Member{Key: f.wireName(&c.opts), Value: w})
	}
	return out, nil
}

// Unmarshal decodes a record of type T from JSON text. Malformed JSON is
// reported as *jserd.SyntaxError; an input whose root is not an object is
// reported as an error wrapping [ErrShapeMismatch]; field failures are
// reported as [*FieldError].
func (c *Codec[T]) Unmarshal(text string) (T, error) {
	var zero T
	root, err := ast.ParseSingle(strings.NewReader(text))
	if err != nil {
		return zero, err
	}
	return c.Decode(root)
}

// Decode converts a parsed value into a record of type T. The value must be
// an object, or Decode reports an error wrapping [ErrShapeMismatch].
func (c *Codec[T]) Decode(root ast.Value) (T, error) {
	obj, ok := root.(ast.Object)
	if !ok {
		var zero T
		return zero, fmt.Errorf("got %T, want object: %w", root, ErrShapeMismatch)
	}
	return c.decodeObject(obj)
}

// decodeObject resolves each declared field of T against obj. A missing
// optional field keeps the type's default; a missing required field fails
// immediately with the first violation.
func (c *Codec[T]) decodeObject(obj ast.Object) (T, error) {
	var v T
	for _, f := range c.fields {
		if c.opts.Ignore.Has(f.name) {
			continue // never populated from input
		}
		m := obj.Find(f.wireName(&c.opts))
		if m == nil {
			if f.required {
				return v, &FieldError{Field: f.name, Err: ErrMissingField}
			}
			continue
		}
		if err := f.dec(&v, m.Value, &c.opts); err != nil {
			return v, &FieldError{Field: f.name, Err: err}
		}
	}
	return v, nil
}

// MarshalSlice encodes a sequence of records as a JSON array.
func (c *Codec[T]) MarshalSlice(vs []T) (string, error) {
	out := make(ast.Array, len(vs))
	for i, v := range vs {
		obj, err := c.Encode(v)
		if err != nil {
			return "", fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = obj
	}
	return out.JSON(), nil
}

// UnmarshalSlice decodes a sequence of records from a JSON array. An input
// whose root is not an array is reported as an error wrapping
// [ErrShapeMismatch].
func (c *Codec[T]) UnmarshalSlice(text string) ([]T, error) {
	root, err := ast.ParseSingle(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	arr, ok := root.(ast.Array)
	if !ok {
		return nil, fmt.Errorf("got %T, want array: %w", root, ErrShapeMismatch)
	}
	out := make([]T, len(arr))
	for i, elt := range arr {
		v, err := c.Decode(elt)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
