// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package codec

// An EnumType records the declaration-order identifiers of an enumeration
// whose Go representation is an integer type with zero-based contiguous
// values, as produced by iota. The ordinal of an enumerator is its position
// in the declaration order.
type EnumType[E ~int] struct {
	names []string
}

// NewEnum constructs an EnumType for E from the enumerator identifiers in
// declaration order, so that names[i] names the enumerator with value i.
// It panics if no names are given or any name is duplicated.
func NewEnum[E ~int](names ...string) EnumType[E] {
	if len(names) == 0 {
		panic("no enumerator names")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			panic("duplicate enumerator name: " + name)
		}
		seen[name] = true
	}
	return EnumType[E]{names: names}
}

// Len reports the number of enumerators of e.
func (e EnumType[E]) Len() int { return len(e.names) }

// Name reports the declared identifier of v, and whether v is a valid
// enumerator of e.
func (e EnumType[E]) Name(v E) (string, bool) {
	if v < 0 || int(v) >= len(e.names) {
		return "", false
	}
	return e.names[v], true
}

// FromName reports the enumerator of e with the given declared identifier.
// The match is exact and case-sensitive.
func (e EnumType[E]) FromName(name string) (E, bool) {
	for i, n := range e.names {
		if n == name {
			return E(i), true
		}
	}
	return 0, false
}
