// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package codec

import (
	"fmt"
	"time"

	"github.com/creachadair/jserd/ast"
)

// A Field describes one serializable field of a record of type T: its
// declared name, how to read its value from a record, and how to store a
// decoded value back. Fields are constructed once per record shape by the
// typed constructors (String, Int, Enum, Struct, and so on) and shared by
// all calls through the codec.
//
// Derived values computed from other fields are by construction not Fields,
// and are never serialized; a record constructor recomputes them after
// decoding.
type Field[T any] struct {
	name     string
	wire     string // explicit override; "" means apply the naming policy
	required bool

	enc func(*T, *Options) (ast.Value, error)
	dec func(*T, ast.Value, *Options) error
}

// Wire sets an explicit wire name for f, taking precedence over the codec's
// naming policy. It returns f to permit chaining.
func (f *Field[T]) Wire(name string) *Field[T] { f.wire = name; return f }

// Required marks f as required: a missing key on decode is an error rather
// than the field's default. It returns f to permit chaining.
func (f *Field[T]) Required() *Field[T] { f.required = true; return f }

// wireName reports the wire form of the declared name of f under opts.
func (f *Field[T]) wireName(opts *Options) string {
	if f.wire != "" {
		return f.wire
	}
	return opts.FieldNames.apply(f.name)
}

// String declares a string field.
func String[T any](name string, get func(*T) string, set func(*T, string)) *Field[T] {
	return Conv(name, StringConv, get, set)
}

// Int declares an int field.
func Int[T any](name string, get func(*T) int, set func(*T, int)) *Field[T] {
	return Conv(name, IntConv, get, set)
}

// Int64 declares an int64 field.
func Int64[T any](name string, get func(*T) int64, set func(*T, int64)) *Field[T] {
	return Conv(name, Int64Conv, get, set)
}

// Float declares a float64 field.
func Float[T any](name string, get func(*T) float64, set func(*T, float64)) *Field[T] {
	return Conv(name, FloatConv, get, set)
}

// Bool declares a bool field.
func Bool[T any](name string, get func(*T) bool, set func(*T, bool)) *Field[T] {
	return Conv(name, BoolConv, get, set)
}

// Enum declares an enum field. Its wire form is governed by the codec's
// EnumCoding: either the zero-based declaration ordinal, or the declared
// identifier optionally transformed by the enum name policy. The decoded
// representation must match the configuration exactly; no auto-detection is
// performed.
func Enum[T any, E ~int](name string, enum EnumType[E], get func(*T) E, set func(*T, E)) *Field[T] {
	return &Field[T]{
		name: name,
		enc: func(v *T, opts *Options) (ast.Value, error) {
			e := get(v)
			ename, ok := enum.Name(e)
			if !ok {
				return nil, fmt.Errorf("enum value %d: %w", int(e), ErrUnknownEnum)
			}
			if opts.Enums.Rep == Name {
				return ast.String(opts.Enums.Names.apply(ename)), nil
			}
			return ast.Int(int64(e)), nil
		},
		dec: func(v *T, w ast.Value, opts *Options) error {
			if opts.Enums.Rep == Name {
				s, err := ast.As[string](w)
				if err != nil {
					return err
				}
				for i := 0; i < enum.Len(); i++ {
					ename, _ := enum.Name(E(i))
					if opts.Enums.Names.apply(ename) == s {
						set(v, E(i))
						return nil
					}
				}
				return fmt.Errorf("enum name %q: %w", s, ErrUnknownEnum)
			}
			z, err := ast.As[int64](w)
			if err != nil {
				return err
			}
			if z < 0 || z >= int64(enum.Len()) {
				return fmt.Errorf("enum ordinal %d: %w", z, ErrUnknownEnum)
			}
			set(v, E(z))
			return nil
		},
	}
}

// Struct declares a nested record field encoded through its own codec.
// The nested codec's options govern the nested object.
func Struct[T, S any](name string, sub *Codec[S], get func(*T) S, set func(*T, S)) *Field[T] {
	return &Field[T]{
		name: name,
		enc: func(v *T, _ *Options) (ast.Value, error) {
			return sub.Encode(get(v))
		},
		dec: func(v *T, w ast.Value, _ *Options) error {
			obj, ok := w.(ast.Object)
			if !ok {
				return fmt.Errorf("got %T, want object: %w", w, ast.ErrTypeMismatch)
			}
			sv, err := sub.decodeObject(obj)
			if err != nil {
				return err
			}
			set(v, sv)
			return nil
		},
	}
}

// Slice declares a field holding a sequence of values, each mapped through
// the given converter.
func Slice[T, E any](name string, elem Converter[E], get func(*T) []E, set func(*T, []E)) *Field[T] {
	return &Field[T]{
		name: name,
		enc: func(v *T, _ *Options) (ast.Value, error) {
			es := get(v)
			out := make(ast.Array, len(es))
			for i, e := range es {
				w, err := elem.Encode(e)
				if err != nil {
					return nil, fmt.Errorf("index %d: %w", i, err)
				}
				out[i] = w
			}
			return out, nil
		},
		dec: func(v *T, w ast.Value, _ *Options) error {
			arr, ok := w.(ast.Array)
			if !ok {
				return fmt.Errorf("got %T, want array: %w", w, ast.ErrTypeMismatch)
			}
			es := make([]E, len(arr))
			for i, elt := range arr {
				e, err := elem.Decode(elt)
				if err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
				es[i] = e
			}
			set(v, es)
			return nil
		},
	}
}

// Conv declares a field whose value is mapped through the given converter,
// overriding the default mapping for its type.
func Conv[T, F any](name string, conv Converter[F], get func(*T) F, set func(*T, F)) *Field[T] {
	return &Field[T]{
		name: name,
		enc: func(v *T, _ *Options) (ast.Value, error) {
			return conv.Encode(get(v))
		},
		dec: func(v *T, w ast.Value, _ *Options) error {
			f, err := conv.Decode(w)
			if err != nil {
				return err
			}
			set(v, f)
			return nil
		},
	}
}

// A Converter maps values of a Go type F to and from JSON values. It is the
// custom encode/decode hook for a type, used directly by Conv and Slice
// fields.
type Converter[F any] struct {
	Encode func(F) (ast.Value, error)
	Decode func(ast.Value) (F, error)
}

// Built-in converters for the primitive field types.
var (
	StringConv = Converter[string]{
		Encode: func(s string) (ast.Value, error) { return ast.String(s), nil },
		Decode: ast.As[string],
	}
	IntConv = Converter[int]{
		Encode: func(z int) (ast.Value, error) { return ast.Int(int64(z)), nil },
		Decode: ast.As[int],
	}
	Int64Conv = Converter[int64]{
		Encode: func(z int64) (ast.Value, error) { return ast.Int(z), nil },
		Decode: ast.As[int64],
	}
	FloatConv = Converter[float64]{
		Encode: func(f float64) (ast.Value, error) { return ast.Float(f), nil },
		Decode: ast.As[float64],
	}
	BoolConv = Converter[bool]{
		Encode: func(b bool) (ast.Value, error) { return ast.Bool(b), nil },
		Decode: ast.As[bool],
	}

	// TimeRFC3339 encodes a time.Time as an RFC 3339 string.
	TimeRFC3339 = Converter[time.Time]{
		Encode: func(t time.Time) (ast.Value, error) {
			return ast.String(t.Format(time.RFC3339)), nil
		},
		Decode: func(w ast.Value) (time.Time, error) {
			s, err := ast.As[string](w)
			if err != nil {
				return time.Time{}, err
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid timestamp: %w", err)
			}
			return t, nil
		},
	}
)

// StructConv adapts a codec for S into a Converter, for nesting records
// inside Slice fields.
func StructConv[S any](sub *Codec[S]) Converter[S] {
	return Converter[S]{
		Encode: func(s S) (ast.Value, error) { return sub.Encode(s) },
		Decode: func(w ast.Value) (S, error) {
			obj, ok := w.(ast.Object)
			if !ok {
				var zero S
				return zero, fmt.Errorf("got %T, want object: %w", w, ast.ErrTypeMismatch)
			}
			return sub.decodeObject(obj)
		},
	}
}
