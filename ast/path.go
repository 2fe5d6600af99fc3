// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"strconv"
)

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays).  If the path is valid, the element
// reached is returned; otherwise Path reports an error and the input v.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves an object member with that name. Keys are matched
// case-sensitively; an absent key reports an error wrapping [ErrKeyNotFound].
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer resolves to an index in the array. Negative indices count
// backward from the end of the array (-1 is last, -2 second last, etc.).
// An index outside the bounds of the array reports an error wrapping
// [ErrIndexRange].
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		if m, ok := cur.(*Member); ok {
			cur = m.Value
		}
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q: %w", cur, t, ErrTypeMismatch)
			}
			m := obj.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q: %w", t, ErrKeyNotFound)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %v: %w", cur, t, ErrTypeMismatch)
			}
			i := t
			if i < 0 {
				i += len(arr)
			}
			if i < 0 || i >= len(arr) {
				return v, fmt.Errorf("index %d (n=%d): %w", t, len(arr), ErrIndexRange)
			}
			cur = arr[i]
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

// As converts v to the requested plain type T, which must be one of:
//
//	string             -- String or Quoted values
//	int64, int         -- Number values without fraction or exponent
//	float64            -- Number values
//
// A Number whose value does not fit the requested type does not convert.
//	bool               -- Bool values
//	Object, Array      -- structured values
//
// A concrete Value type is also permitted for T, asserting v itself. If the
// stored variant does not convert to T, As reports an error wrapping
// [ErrTypeMismatch].
func As[T any](v Value) (T, error) {
	for _, cand := range plainForms(v) {
		if t, ok := cand.(T); ok {
			return t, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("cannot convert %T to %T: %w", v, zero, ErrTypeMismatch)
}

// plainForms reports the plain Go values v may be read as, most specific
// first, ending with v itself.
func plainForms(v Value) []any {
	switch t := v.(type) {
	case Quoted:
		return []any{string(t.Unquote()), t}
	case String:
		return []any{string(t), t}
	case Number:
		// Convert without the panicking accessors: a numeric literal whose
		// value does not fit the requested type is a mismatch, not a fault.
		var forms []any
		if t.IsInt() {
			if z, err := strconv.ParseInt(t.text, 10, 64); err == nil {
				forms = append(forms, z, int(z))
			}
		}
		if f, err := strconv.ParseFloat(t.text, 64); err == nil {
			forms = append(forms, f)
		}
		return append(forms, t)
	case Bool:
		return []any{bool(t), t}
	default:
		return []any{v}
	}
}
