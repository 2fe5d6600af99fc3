// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jdoc implements a read-only document model over parsed JSON.
//
// A Document owns the tree parsed from its input for the lifetime of the
// document. Handles into the document are lightweight views, not owners:
// they remain valid only until the document is released. Accessing a handle
// after release fails with an error wrapping [ErrReleased], never with stale
// data. To keep data beyond the document's lifetime, copy it out with
// [Handle.Clone].
//
// A Document and its handles are safe for concurrent readers, but Release
// must not be called while another goroutine still uses a handle; that
// ordering is the caller's responsibility.
package jdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jserd/ast"
	"github.com/tailscale/hujson"
)

// ErrReleased is reported for any access through a handle of a document that
// has been released.
var ErrReleased = errors.New("document released")

// A Document is a single parsed JSON value with document-scoped lifetime.
type Document struct {
	root     ast.Value
	released bool
}

// Parse parses a single JSON value from r into a new document.  The input
// must contain exactly one value; parse failures are reported as
// *jserd.SyntaxError.
func Parse(r io.Reader) (*Document, error) {
	v, err := ast.ParseSingle(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: v}, nil
}

// ParseLenient is like Parse, but first standardizes human-edited JSON
// (comments and trailing commas) into plain JSON.
func ParseLenient(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardize: %w", err)
	}
	return Parse(bytes.NewReader(std))
}

// With parses a single JSON value from r, passes the root handle of the
// resulting document to f, and releases the document when f returns.
func With(r io.Reader, f func(Handle) error) error {
	d, err := Parse(r)
	if err != nil {
		return err
	}
	defer d.Release()
	return f(d.Root())
}

// Root returns a handle to the root value of d.
func (d *Document) Root() Handle { return Handle{doc: d, v: d.root} }

// Release invalidates d and all handles derived from it, and discards the
// parsed tree. Release is idempotent. It must not be called concurrently
// with readers of handles into d.
func (d *Document) Release() {
	d.released = true
	d.root = nil
}

// Released reports whether d has been released.
func (d *Document) Released() bool { return d.released }

// A Handle is a view of a value inside a document. The zero Handle is
// invalid. A handle is valid only until its document is released.
type Handle struct {
	doc *Document
	v   ast.Value
}

func (h Handle) check() error {
	if h.doc == nil {
		return errors.New("invalid handle")
	} else if h.doc.released {
		return ErrReleased
	}
	return nil
}

// Value returns the value under h. The value shares storage with the
// document; use Clone for an independent copy.
func (h Handle) Value() (ast.Value, error) {
	if err := h.check(); err != nil {
		return nil, err
	}
	return h.v, nil
}

// Key resolves the member of an object value with the given key,
// case-sensitively. It reports an error wrapping ast.ErrKeyNotFound if the
// key is absent, or ast.ErrTypeMismatch if the value is not an object.
func (h Handle) Key(key string) (Handle, error) {
	return h.Path(key)
}

// Index resolves the i'th element of an array value. Negative indices count
// backward from the end. It reports an error wrapping ast.ErrIndexRange if
// the index is out of bounds, or ast.ErrTypeMismatch if the value is not an
// array.
func (h Handle) Index(i int) (Handle, error) {
	return h.Path(i)
}

// Path traverses a sequential path from h, with path elements as documented
// for ast.Path.
func (h Handle) Path(path ...any) (Handle, error) {
	if err := h.check(); err != nil {
		return Handle{}, err
	}
	v, err := ast.Path(h.v, path...)
	if err != nil {
		return Handle{}, err
	}
	return Handle{doc: h.doc, v: v}, nil
}

// Len reports the length of the value under h, as defined by its Len method.
// It reports an error wrapping ast.ErrTypeMismatch for values without a
// length.
func (h Handle) Len() (int, error) {
	if err := h.check(); err != nil {
		return 0, err
	}
	if t, ok := h.v.(interface{ Len() int }); ok {
		return t.Len(), nil
	}
	return 0, fmt.Errorf("cannot take length of %T: %w", h.v, ast.ErrTypeMismatch)
}

// Text reports the value under h as a plain string.
func (h Handle) Text() (string, error) { return as[string](h) }

// Int64 reports the value under h as an int64.
func (h Handle) Int64() (int64, error) { return as[int64](h) }

// Float64 reports the value under h as a float64.
func (h Handle) Float64() (float64, error) { return as[float64](h) }

// Bool reports the value under h as a bool.
func (h Handle) Bool() (bool, error) { return as[bool](h) }

// IsNull reports whether the value under h is the null constant.
func (h Handle) IsNull() (bool, error) {
	if err := h.check(); err != nil {
		return false, err
	}
	return h.v == ast.Null, nil
}

// JSON renders the value under h as compact JSON text.
func (h Handle) JSON() (string, error) {
	if err := h.check(); err != nil {
		return "", err
	}
	return h.v.JSON(), nil
}

// Clone returns an independent deep copy of the value under h. The copy has
// its own lifetime and remains valid after the document is released.
func (h Handle) Clone() (ast.Value, error) {
	if err := h.check(); err != nil {
		return nil, err
	}
	return cloneValue(h.v), nil
}

func as[T any](h Handle) (T, error) {
	if err := h.check(); err != nil {
		var zero T
		return zero, err
	}
	return ast.As[T](h.v)
}

func cloneValue(v ast.Value) ast.Value {
	switch t := v.(type) {
	case ast.Object:
		out := make(ast.Object, len(t))
		for i, m := range t {
			out[i] = &ast.Member{Key: m.Key, Value: cloneValue(m.Value)}
		}
		return out
	case ast.Array:
		out := make(ast.Array, len(t))
		for i, v := range t {
			out[i] = cloneValue(v)
		}
		return out
	default:
		// Leaves are immutable value types; copying the interface suffices.
		return v
	}
}
