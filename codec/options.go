// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package codec

import (
	"strings"

	"github.com/creachadair/mds/mapset"
	"github.com/iancoleman/strcase"
)

// A NamePolicy transforms a declared field or enumerator name into its wire
// form. A nil NamePolicy leaves names unchanged. A NamePolicy must be
// deterministic: equal inputs yield equal outputs.
type NamePolicy func(string) string

// Predefined naming policies.
var (
	CamelCase     NamePolicy = strcase.ToLowerCamel     // "FirstName" to "firstName"
	PascalCase    NamePolicy = strcase.ToCamel          // "first_name" to "FirstName"
	SnakeCase     NamePolicy = strcase.ToSnake          // "FirstName" to "first_name"
	KebabCase     NamePolicy = strcase.ToKebab          // "FirstName" to "first-name"
	ScreamingCase NamePolicy = strcase.ToScreamingSnake // "FirstName" to "FIRST_NAME"
	LowerCase     NamePolicy = strings.ToLower          // "HUMAN" to "human"
	UpperCase     NamePolicy = strings.ToUpper          // "human" to "HUMAN"
)

func (p NamePolicy) apply(name string) string {
	if p == nil {
		return name
	}
	return p(name)
}

// An EnumRep selects the wire representation of enum values.
type EnumRep int

const (
	Ordinal EnumRep = iota // zero-based declaration-order integer
	Name                   // declared identifier string
)

// EnumCoding configures how enum values are encoded and decoded.  The Names
// policy applies only to the Name representation, and is independent of the
// field-name policy: the two are distinct configuration knobs.
type EnumCoding struct {
	Rep   EnumRep
	Names NamePolicy // optional transform of enumerator names
}

// Options configure a Codec. Options are fixed when the codec is
// constructed; a zero Options emits every declared field under its declared
// name and encodes enums by ordinal. A stored Options value is never
// modified by the codec and is safe to share read-only.
type Options struct {
	// FieldNames transforms declared field names into wire names.
	// An explicit per-field wire name takes precedence.
	FieldNames NamePolicy

	// Enums selects the enum representation.
	Enums EnumCoding

	// Ignore lists declared field names excluded from both directions:
	// never emitted, and never populated from input.
	Ignore mapset.Set[string]
}
